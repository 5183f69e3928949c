package textmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Hello World", "hello world"},
		{"collapses whitespace", "a  b\t\tc\n\nd", "a b c d"},
		{"trims", "  padded  ", "padded"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("Hello, world! Hello... (again)")
	assert.Len(t, tokens, 3)
	assert.Contains(t, tokens, "hello")
	assert.Contains(t, tokens, "world")
	assert.Contains(t, tokens, "again")
}

func TestTokenize_PunctuationSeparators(t *testing.T) {
	tokens := Tokenize(`a.b,c!d?e;f:g'h"i(j)k[l]m{n}o`)
	assert.Len(t, tokens, 15)
	assert.Contains(t, tokens, "a")
	assert.Contains(t, tokens, "o")
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("... !!! ???"))
}

func TestContainsPhrase(t *testing.T) {
	tests := []struct {
		name    string
		content string
		phrase  string
		want    bool
	}{
		{"exact", "we deliver guaranteed results fast", "guaranteed results", true},
		{"case insensitive", "GUARANTEED Results here", "guaranteed results", true},
		{"whitespace collapsed", "guaranteed   results", "guaranteed results", true},
		{"absent", "honest outcomes only", "guaranteed results", false},
		{"substring inside longer word", "our resale program", "sale", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsPhrase(tt.content, tt.phrase))
		})
	}
}

func TestJaccard_Symmetric(t *testing.T) {
	a := "bold innovative design for everyone"
	b := "innovative design that works"
	assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
}

func TestJaccard_Identity(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard("same words here", "same words here"))
	// Word order and duplicates do not matter for set similarity.
	assert.Equal(t, 1.0, Jaccard("alpha beta", "beta alpha alpha"))
}

func TestJaccard_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard("", "something"))
	assert.Equal(t, 0.0, Jaccard("something", ""))
	assert.Equal(t, 0.0, Jaccard("", ""))
}

func TestJaccard_PartialOverlap(t *testing.T) {
	// {a b c} vs {b c d}: intersection 2, union 4.
	assert.InDelta(t, 0.5, Jaccard("a b c", "b c d"), 1e-9)
}
