// Package engine composes the individual brand checks into a single verdict.
// The evaluation is deterministic local logic: same content and profile always
// yield the same status, confidence, and explanations.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/brand-checker/internal/checks"
	"github.com/jonathan/brand-checker/internal/types"
)

// EmptyContentError indicates the content to evaluate was empty.
type EmptyContentError struct{}

func (e *EmptyContentError) Error() string {
	return "content is empty"
}

// Evaluate runs the full brand consistency check of content against profile.
// The verdict timestamp is the current UTC time; everything else is a pure
// function of the inputs.
func Evaluate(content string, profile *types.BrandProfile) (*types.Verdict, error) {
	return EvaluateAt(content, profile, time.Now().UTC())
}

// EvaluateAt is Evaluate with an explicit evaluation timestamp.
//
// Stages run in fixed priority order and status only ever escalates
// (on-brand → borderline → off-brand), never back:
//  1. Never-rules: any violation forces off-brand.
//  2. Tone boundaries: any unacceptable tone forces off-brand.
//  3. Bad-example similarity: strong resemblance escalates.
//  4. Value/voice alignment: adjusts status and confidence only while the
//     content is still considered on-brand.
//
// Explanations are then filled, stable-sorted by severity, and capped.
func EvaluateAt(content string, profile *types.BrandProfile, now time.Time) (*types.Verdict, error) {
	if strings.TrimSpace(content) == "" {
		return nil, &EmptyContentError{}
	}

	t := defaultThresholds
	status := types.StatusOnBrand
	confidence := t.BaseConfidence
	var explanations []types.Explanation

	// Stage 1: never rules.
	neverResult := checks.CheckNeverRules(content, profile.NeverRules)
	if neverResult.HasViolations {
		status = types.StatusOffBrand
		confidence = t.NeverRuleConfidence
		if len(explanations) < t.MaxExplanations {
			explanations = append(explanations, types.Explanation{
				Text:     fmt.Sprintf("Contains prohibited content: %q", neverResult.ViolatedInOrder[0]),
				Aspect:   types.AspectNeverRule,
				Severity: types.SeverityCritical,
			})
		}
	}

	// Stage 2: tone boundaries.
	toneResult := checks.CheckTone(content, profile.ToneAcceptable, profile.ToneUnacceptable)
	if toneResult.HasViolations {
		status = types.StatusOffBrand
		confidence = max(confidence, t.ToneConfidenceFloor)
		if len(explanations) < t.MaxExplanations {
			explanations = append(explanations, types.Explanation{
				Text:     fmt.Sprintf("Uses unacceptable tone: %q", toneResult.FoundInOrder[0]),
				Aspect:   types.AspectTone,
				Severity: types.SeverityCritical,
			})
		}
	}

	// Stage 3: similarity to bad examples.
	exampleResult := checks.CheckExamples(content, profile.Examples)
	if exampleResult.BadSimilarity > t.BadExampleWarn {
		if status != types.StatusOffBrand {
			if exampleResult.BadSimilarity > t.BadExampleCritical {
				status = types.StatusOffBrand
			} else {
				status = types.StatusBorderline
			}
		}
		confidence = max(confidence, t.ExampleConfidenceFloor)
		severity := types.SeverityWarning
		if exampleResult.BadSimilarity > t.BadExampleCritical {
			severity = types.SeverityCritical
		}
		if len(explanations) < t.MaxExplanations {
			explanations = append(explanations, types.Explanation{
				Text:     "Content resembles known off-brand examples",
				Aspect:   types.AspectExampleMatch,
				Severity: severity,
			})
		}
	}

	// Stage 4: value and voice alignment. Runs its escalation only while no
	// earlier stage escalated.
	alignResult := checks.CheckAlignment(content, profile.Values, profile.VoiceDescriptors)
	if status == types.StatusOnBrand {
		switch {
		case alignResult.CombinedScore < t.AlignmentLow:
			status = types.StatusBorderline
			confidence = t.AlignmentLowConfidence
		case alignResult.CombinedScore < t.AlignmentMid:
			status = types.StatusBorderline
			confidence = t.AlignmentMidConfidence
		default:
			confidence = t.AlignmentScaleBase + int(alignResult.CombinedScore*t.AlignmentScaleFactor)
		}
	}

	// Positive fallback when no stage had anything to say.
	if len(explanations) == 0 {
		switch {
		case exampleResult.GoodSimilarity > t.GoodExampleNoteworthy:
			explanations = append(explanations, types.Explanation{
				Text:     "Content aligns well with established brand examples",
				Aspect:   types.AspectExampleMatch,
				Severity: types.SeverityInfo,
			})
		case alignResult.ValueScore > t.ValueScoreNoteworthy:
			explanations = append(explanations, types.Explanation{
				Text:     "Content reflects brand values: " + joinFirst(alignResult.ValuesAlignedInOrder, t.MaxNamedItems),
				Aspect:   types.AspectValue,
				Severity: types.SeverityInfo,
			})
		default:
			explanations = append(explanations, types.Explanation{
				Text:     "Content is acceptable but could better reflect brand values",
				Aspect:   types.AspectValue,
				Severity: types.SeverityInfo,
			})
		}
	}

	// Supplementary notes while slots remain.
	if len(explanations) < t.MaxExplanations &&
		alignResult.VoiceScore < t.AlignmentMid &&
		status != types.StatusOffBrand &&
		len(alignResult.VoiceMissingInOrder) > 0 {
		explanations = append(explanations, types.Explanation{
			Text:     "Voice could better emphasize: " + joinFirst(alignResult.VoiceMissingInOrder, t.MaxNamedItems),
			Aspect:   types.AspectVoice,
			Severity: types.SeverityInfo,
		})
	}
	if len(explanations) < t.MaxExplanations && len(toneResult.AcceptableInOrder) > 0 {
		explanations = append(explanations, types.Explanation{
			Text:     "Good use of brand tone: " + joinFirst(toneResult.AcceptableInOrder, t.MaxNamedItems),
			Aspect:   types.AspectTone,
			Severity: types.SeverityInfo,
		})
	}

	// Every verdict carries at least one explanation.
	if len(explanations) == 0 {
		text := "Content requires review for brand alignment"
		if status == types.StatusOnBrand {
			text = "Content aligns with brand guidelines"
		}
		explanations = append(explanations, types.Explanation{
			Text:     text,
			Severity: types.SeverityInfo,
		})
	}

	// Stable sort by severity rank so ties keep insertion order, then cap.
	sort.SliceStable(explanations, func(i, j int) bool {
		return explanations[i].Severity.Rank() < explanations[j].Severity.Rank()
	})
	if len(explanations) > t.MaxExplanations {
		explanations = explanations[:t.MaxExplanations]
	}

	return &types.Verdict{
		Status:         status,
		StatusDisplay:  status.Display(),
		Explanations:   explanations,
		Confidence:     confidence,
		ProfileVersion: profile.Version,
		CheckedAt:      now.UTC(),
		ContentHash:    ContentHash(content),
		Details: types.VerdictDetails{
			NeverRuleViolations: neverResult.Violated,
			UnacceptableTone:    toneResult.UnacceptableFound,
			ValueAlignmentScore: alignResult.ValueScore,
			VoiceAlignmentScore: alignResult.VoiceScore,
			ExampleSimilarity: types.ExampleSimilarity{
				Good: exampleResult.GoodSimilarity,
				Bad:  exampleResult.BadSimilarity,
			},
		},
	}, nil
}

// ContentHash returns the SHA-256 hex digest of the raw content.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// joinFirst joins up to n items with ", ".
func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
