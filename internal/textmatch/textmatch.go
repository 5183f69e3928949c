// Package textmatch provides the text normalization and similarity primitives
// used by every brand check: case folding, tokenization, phrase containment,
// and Jaccard set similarity. Everything here is a pure function.
package textmatch

import "strings"

// punctuation is the fixed set of characters treated as token separators in
// addition to whitespace.
const punctuation = ".,!?;:'\"()[]{}"

// Normalize lower-cases text, collapses runs of whitespace to a single space,
// and trims the ends. Byte/codepoint case folding only, no locale rules.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Tokenize normalizes text and splits it into a set of words. Runs of
// whitespace and punctuation separate tokens; empty tokens are dropped and
// duplicates collapse.
func Tokenize(text string) map[string]struct{} {
	normalized := Normalize(text)
	words := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || strings.ContainsRune(punctuation, r)
	})

	tokens := make(map[string]struct{}, len(words))
	for _, w := range words {
		tokens[w] = struct{}{}
	}
	return tokens
}

// ContainsPhrase reports whether the normalized phrase occurs as a substring
// of the normalized content. Matching is substring-based, not word-boundary
// based: the phrase "sale" matches inside "resale".
func ContainsPhrase(content, phrase string) bool {
	return strings.Contains(Normalize(content), Normalize(phrase))
}

// Jaccard returns the Jaccard similarity of the token sets of two texts:
// |A ∩ B| / |A ∪ B|. Returns 0.0 if either token set is empty. Symmetric,
// in [0, 1].
func Jaccard(textA, textB string) float64 {
	a := Tokenize(textA)
	b := Tokenize(textB)
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
