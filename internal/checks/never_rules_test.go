package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckNeverRules_NoRules(t *testing.T) {
	result := CheckNeverRules("any content at all", nil)
	assert.False(t, result.HasViolations)
	assert.Zero(t, result.Count)
	assert.Empty(t, result.Violated)
	assert.Empty(t, result.Passed)
}

func TestCheckNeverRules_Violations(t *testing.T) {
	content := "We promise GUARANTEED results and zero risk for everyone"
	result := CheckNeverRules(content, []string{"zero risk", "guaranteed results", "free money"})

	require.True(t, result.HasViolations)
	assert.Equal(t, 2, result.Count)
	// Output collection is sorted.
	assert.Equal(t, []string{"guaranteed results", "zero risk"}, result.Violated)
	assert.Equal(t, []string{"free money"}, result.Passed)
	// Declaration order survives for first-violation reporting.
	assert.Equal(t, []string{"zero risk", "guaranteed results"}, result.ViolatedInOrder)
}

func TestCheckNeverRules_SubstringMatch(t *testing.T) {
	// Phrase matching is substring based, not word-boundary based.
	result := CheckNeverRules("join our resale program", []string{"sale"})
	assert.True(t, result.HasViolations)
	assert.Equal(t, []string{"sale"}, result.Violated)
}

func TestCheckNeverRules_AllPass(t *testing.T) {
	result := CheckNeverRules("honest straightforward copy", []string{"synergy", "ninja"})
	assert.False(t, result.HasViolations)
	assert.Equal(t, []string{"ninja", "synergy"}, result.Passed)
}
