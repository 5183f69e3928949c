package checks

import (
	"github.com/jonathan/brand-checker/internal/textmatch"
	"github.com/jonathan/brand-checker/internal/types"
)

// ExampleResult holds the best similarity against canonical examples.
// Maximum over examples, not average: one close bad example is enough to flag.
type ExampleResult struct {
	// GoodSimilarity is the highest Jaccard score against any good example,
	// 0.0 when there are none. BadSimilarity is the same for bad examples.
	GoodSimilarity float64 `json:"good_similarity"`
	BadSimilarity  float64 `json:"bad_similarity"`
}

// CheckExamples compares content against every profile example and keeps the
// running maximum per example type.
func CheckExamples(content string, examples []types.BrandExample) ExampleResult {
	var result ExampleResult
	for _, example := range examples {
		sim := textmatch.Jaccard(content, example.Content)
		if example.Type == types.ExampleGood {
			result.GoodSimilarity = maxFloat(result.GoodSimilarity, sim)
		} else {
			result.BadSimilarity = maxFloat(result.BadSimilarity, sim)
		}
	}
	return result
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
