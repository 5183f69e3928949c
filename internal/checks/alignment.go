package checks

import "github.com/jonathan/brand-checker/internal/textmatch"

// AlignmentResult reports how well content reflects brand values and voice.
// Presence-based: one mention of a value counts the same as many.
type AlignmentResult struct {
	// Aligned/missing lists are sorted lexicographically.
	ValuesAligned []string `json:"values_aligned"`
	ValuesMissing []string `json:"values_missing"`
	VoiceAligned  []string `json:"voice_aligned"`
	VoiceMissing  []string `json:"voice_missing"`
	// VoiceMissingInOrder keeps declaration order for the composer's
	// "could better emphasize" note.
	VoiceMissingInOrder []string `json:"-"`
	// ValuesAlignedInOrder keeps declaration order for the composer's
	// "reflects brand values" note.
	ValuesAlignedInOrder []string `json:"-"`
	ValueScore           float64  `json:"value_score"`
	VoiceScore           float64  `json:"voice_score"`
	CombinedScore        float64  `json:"combined_score"`
}

// CheckAlignment partitions values and voice descriptors into aligned and
// missing via phrase containment, then scores each list against its length.
// Empty lists score 0 under the shared zero-denominator policy.
func CheckAlignment(content string, values, voiceDescriptors []string) AlignmentResult {
	var valuesAligned, valuesMissing []string
	for _, v := range values {
		if textmatch.ContainsPhrase(content, v) {
			valuesAligned = append(valuesAligned, v)
		} else {
			valuesMissing = append(valuesMissing, v)
		}
	}

	var voiceAligned, voiceMissing []string
	for _, d := range voiceDescriptors {
		if textmatch.ContainsPhrase(content, d) {
			voiceAligned = append(voiceAligned, d)
		} else {
			voiceMissing = append(voiceMissing, d)
		}
	}

	valueScore := float64(len(valuesAligned)) / float64(max(len(values), 1))
	voiceScore := float64(len(voiceAligned)) / float64(max(len(voiceDescriptors), 1))

	return AlignmentResult{
		ValuesAligned:        sortedCopy(valuesAligned),
		ValuesMissing:        sortedCopy(valuesMissing),
		VoiceAligned:         sortedCopy(voiceAligned),
		VoiceMissing:         sortedCopy(voiceMissing),
		VoiceMissingInOrder:  voiceMissing,
		ValuesAlignedInOrder: valuesAligned,
		ValueScore:           valueScore,
		VoiceScore:           voiceScore,
		CombinedScore:        (valueScore + voiceScore) / 2,
	}
}
