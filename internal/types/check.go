// Package types provides type definitions for structured data used throughout the brand-checker system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// AlignmentStatus is the overall verdict for a piece of content.
type AlignmentStatus string

const (
	// StatusOnBrand means the content fits the brand profile.
	StatusOnBrand AlignmentStatus = "on-brand"
	// StatusBorderline means the content needs review before use.
	StatusBorderline AlignmentStatus = "borderline"
	// StatusOffBrand means the content violates the brand profile.
	StatusOffBrand AlignmentStatus = "off-brand"
)

// Display returns the fixed human-readable label for a status.
func (s AlignmentStatus) Display() string {
	switch s {
	case StatusOnBrand:
		return "On Brand ✅"
	case StatusBorderline:
		return "Borderline ⚠️"
	case StatusOffBrand:
		return "Off Brand ❌"
	default:
		return string(s)
	}
}

// ContentType is an optional hint about what kind of content is being checked.
// It is accepted and echoed but not consulted by any rule.
type ContentType string

// Known content types.
const (
	ContentAdCopy           ContentType = "ad-copy"
	ContentSocialPost       ContentType = "social-post"
	ContentInfluencerScript ContentType = "influencer-script"
	ContentPressRelease     ContentType = "press-release"
	ContentCampaignName     ContentType = "campaign-name"
	ContentAIGenerated      ContentType = "ai-generated"
	ContentEmail            ContentType = "email"
	ContentWebsite          ContentType = "website"
	ContentOther            ContentType = "other"
)

// CheckRequest is a piece of content to be evaluated for brand consistency.
type CheckRequest struct {
	Content     string            `json:"content" validate:"required,min=1"`
	ContentType ContentType       `json:"contentType,omitempty" validate:"omitempty,oneof=ad-copy social-post influencer-script press-release campaign-name ai-generated email website other"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Validate validates the CheckRequest using the validator.
func (r *CheckRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ExplanationSeverity ranks how serious an explanation is.
type ExplanationSeverity string

const (
	// SeverityInfo is an informational note.
	SeverityInfo ExplanationSeverity = "info"
	// SeverityWarning flags a borderline concern.
	SeverityWarning ExplanationSeverity = "warning"
	// SeverityCritical flags a violation that forces an off-brand verdict.
	SeverityCritical ExplanationSeverity = "critical"
)

// Rank returns the sort ordinal for a severity: critical=0, warning=1, info=2.
// Unknown severities sort after info.
func (s ExplanationSeverity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// ExplanationAspect names the brand aspect an explanation refers to.
type ExplanationAspect string

// Known aspects.
const (
	AspectValue        ExplanationAspect = "value"
	AspectVoice        ExplanationAspect = "voice"
	AspectTone         ExplanationAspect = "tone"
	AspectNeverRule    ExplanationAspect = "never-rule"
	AspectExampleMatch ExplanationAspect = "example-match"
)

// Explanation is one bounded, human-readable justification attached to a verdict.
type Explanation struct {
	Text     string              `json:"text"`
	Aspect   ExplanationAspect   `json:"aspect,omitempty"`
	Severity ExplanationSeverity `json:"severity"`
}

// ExampleSimilarity holds the best Jaccard match against good and bad examples.
type ExampleSimilarity struct {
	Good float64 `json:"good"`
	Bad  float64 `json:"bad"`
}

// VerdictDetails records the raw rule outputs behind a verdict, for audit and debugging.
type VerdictDetails struct {
	NeverRuleViolations []string          `json:"neverRuleViolations"`
	UnacceptableTone    []string          `json:"unacceptableToneFound"`
	ValueAlignmentScore float64           `json:"valueAlignmentScore"`
	VoiceAlignmentScore float64           `json:"voiceAlignmentScore"`
	ExampleSimilarity   ExampleSimilarity `json:"exampleSimilarity"`
}

// Verdict is the complete result of one brand consistency check.
// It is created fresh per evaluation and never mutated.
type Verdict struct {
	Status         AlignmentStatus `json:"status"`
	StatusDisplay  string          `json:"statusDisplay"`
	Explanations   []Explanation   `json:"explanations"`
	Confidence     int             `json:"confidence"`
	ProfileVersion string          `json:"profileVersion"`
	CheckedAt      time.Time       `json:"checkedAt"`
	ContentHash    string          `json:"contentHash"`
	Details        VerdictDetails  `json:"details"`
}
