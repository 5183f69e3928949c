// Package types provides type definitions for structured data used throughout the brand-checker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// versionPattern is the semver shape required of profile versions.
var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ExampleType classifies a canonical brand example.
type ExampleType string

const (
	// ExampleGood marks content the brand wants more of.
	ExampleGood ExampleType = "good"
	// ExampleBad marks content the brand must avoid.
	ExampleBad ExampleType = "bad"
)

// BrandExample is a canonical example of brand content, good or bad.
type BrandExample struct {
	Content string      `json:"content" validate:"required,min=1"`
	Type    ExampleType `json:"type" validate:"required,oneof=good bad"`
	Note    string      `json:"note,omitempty"`
}

// BrandProfile is the source of truth for brand consistency checks.
// Profiles are immutable once loaded; the engine never mutates one.
type BrandProfile struct {
	Name             string         `json:"name" validate:"required,min=1"`
	Version          string         `json:"version" validate:"required"`
	Values           []string       `json:"values" validate:"required,min=1,max=20,dive,min=1"`
	VoiceDescriptors []string       `json:"voiceDescriptors" validate:"required,min=1,max=10"`
	ToneAcceptable   []string       `json:"toneAcceptable,omitempty"`
	ToneUnacceptable []string       `json:"toneUnacceptable,omitempty"`
	NeverRules       []string       `json:"neverRules,omitempty"`
	Examples         []BrandExample `json:"examples,omitempty" validate:"dive"`
	Description      string         `json:"description,omitempty"`
	CreatedAt        *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time     `json:"updatedAt,omitempty"`
}

// Validate checks the profile's structural invariants: non-empty name and
// value/voice lists within bounds, semver-shaped version.
func (p *BrandProfile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if !versionPattern.MatchString(p.Version) {
		return fmt.Errorf("version must be in semver format (e.g. 1.0.0), got %q", p.Version)
	}
	return nil
}
