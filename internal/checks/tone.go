package checks

import "github.com/jonathan/brand-checker/internal/textmatch"

// ToneResult reports which tone characteristics were found in content.
type ToneResult struct {
	// AcceptableFound and UnacceptableFound are sorted lexicographically.
	AcceptableFound   []string `json:"acceptable_found"`
	UnacceptableFound []string `json:"unacceptable_found"`
	// FoundInOrder preserves the declaration order of matched unacceptable
	// tones; the composer names the first one. AcceptableInOrder does the
	// same for matched acceptable tones.
	FoundInOrder      []string `json:"-"`
	AcceptableInOrder []string `json:"-"`
	HasViolations     bool     `json:"has_violations"`
	// ToneScore is |acceptable found| / max(|acceptable|, 1). With an empty
	// acceptable list the score is 0, never a division error; this
	// zero-denominator policy applies to every score in this package.
	ToneScore float64 `json:"tone_score"`
}

// CheckTone tests content against the acceptable and unacceptable tone lists
// independently.
func CheckTone(content string, acceptable, unacceptable []string) ToneResult {
	var acceptableFound, unacceptableFound []string
	for _, tone := range acceptable {
		if textmatch.ContainsPhrase(content, tone) {
			acceptableFound = append(acceptableFound, tone)
		}
	}
	for _, tone := range unacceptable {
		if textmatch.ContainsPhrase(content, tone) {
			unacceptableFound = append(unacceptableFound, tone)
		}
	}

	return ToneResult{
		AcceptableFound:   sortedCopy(acceptableFound),
		UnacceptableFound: sortedCopy(unacceptableFound),
		FoundInOrder:      unacceptableFound,
		AcceptableInOrder: acceptableFound,
		HasViolations:     len(unacceptableFound) > 0,
		ToneScore:         float64(len(acceptableFound)) / float64(max(len(acceptable), 1)),
	}
}
