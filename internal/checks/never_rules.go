// Package checks provides the independent rule evaluators that score content
// against a brand profile: never-rules, tone boundaries, example similarity,
// and value/voice alignment. Each check is a pure function over content and
// the relevant profile fields.
package checks

import (
	"sort"

	"github.com/jonathan/brand-checker/internal/textmatch"
)

// NeverRuleResult reports which never-rules a piece of content violates.
type NeverRuleResult struct {
	// Violated holds the violated rules sorted lexicographically.
	Violated []string `json:"violated"`
	// ViolatedInOrder holds the violated rules in profile declaration order.
	// The composer reports the first of these, so the order must survive.
	ViolatedInOrder []string `json:"-"`
	// Passed holds the non-violated rules sorted lexicographically.
	Passed        []string `json:"passed"`
	HasViolations bool     `json:"has_violations"`
	Count         int      `json:"violation_count"`
}

// CheckNeverRules tests content against each never-rule via phrase
// containment. Rules are checked in declaration order.
func CheckNeverRules(content string, neverRules []string) NeverRuleResult {
	var violated, passed []string
	for _, rule := range neverRules {
		if textmatch.ContainsPhrase(content, rule) {
			violated = append(violated, rule)
		} else {
			passed = append(passed, rule)
		}
	}

	result := NeverRuleResult{
		ViolatedInOrder: violated,
		HasViolations:   len(violated) > 0,
		Count:           len(violated),
	}
	result.Violated = sortedCopy(violated)
	result.Passed = sortedCopy(passed)
	return result
}

// sortedCopy returns a lexicographically sorted copy of items, leaving the
// input untouched.
func sortedCopy(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	sort.Strings(out)
	return out
}
