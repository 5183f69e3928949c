package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() *BrandProfile {
	return &BrandProfile{
		Name:             "acme",
		Version:          "1.0.0",
		Values:           []string{"innovative"},
		VoiceDescriptors: []string{"confident"},
	}
}

func TestBrandProfile_Validate(t *testing.T) {
	assert.NoError(t, validProfile().Validate())
}

func TestBrandProfile_Validate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BrandProfile)
	}{
		{"empty name", func(p *BrandProfile) { p.Name = "" }},
		{"non-semver version", func(p *BrandProfile) { p.Version = "1.0" }},
		{"version with suffix", func(p *BrandProfile) { p.Version = "1.0.0-beta" }},
		{"no values", func(p *BrandProfile) { p.Values = nil }},
		{"empty value string", func(p *BrandProfile) { p.Values = []string{""} }},
		{"no voice descriptors", func(p *BrandProfile) { p.VoiceDescriptors = nil }},
		{"bad example type", func(p *BrandProfile) {
			p.Examples = []BrandExample{{Content: "x", Type: "meh"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestBrandProfile_Validate_TooManyVoiceDescriptors(t *testing.T) {
	p := validProfile()
	for i := 0; i < 11; i++ {
		p.VoiceDescriptors = append(p.VoiceDescriptors, "extra")
	}
	assert.Error(t, p.Validate())
}
