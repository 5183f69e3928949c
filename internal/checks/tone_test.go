package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckTone_BothLists(t *testing.T) {
	content := "A warm and friendly note, but also aggressive and pushy"
	result := CheckTone(content, []string{"friendly", "warm", "calm"}, []string{"pushy", "aggressive"})

	assert.Equal(t, []string{"friendly", "warm"}, result.AcceptableFound)
	assert.Equal(t, []string{"aggressive", "pushy"}, result.UnacceptableFound)
	assert.Equal(t, []string{"pushy", "aggressive"}, result.FoundInOrder)
	assert.True(t, result.HasViolations)
	assert.InDelta(t, 2.0/3.0, result.ToneScore, 1e-9)
}

func TestCheckTone_EmptyAcceptableScoresZero(t *testing.T) {
	result := CheckTone("anything", nil, nil)
	assert.False(t, result.HasViolations)
	assert.Equal(t, 0.0, result.ToneScore)
}

func TestCheckTone_NoMatches(t *testing.T) {
	result := CheckTone("plain text", []string{"playful"}, []string{"salesy"})
	assert.Empty(t, result.AcceptableFound)
	assert.Empty(t, result.UnacceptableFound)
	assert.False(t, result.HasViolations)
	assert.Equal(t, 0.0, result.ToneScore)
}
