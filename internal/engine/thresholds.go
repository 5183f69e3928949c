package engine

// thresholds gathers every constant the decision protocol uses, so each stage
// reads as data against a single table instead of scattered magic numbers.
type thresholds struct {
	// Base confidence before any stage runs.
	BaseConfidence int
	// Never-rule violations force this confidence.
	NeverRuleConfidence int
	// Unacceptable tone raises confidence to at least this floor.
	ToneConfidenceFloor int
	// Bad-example similarity above Critical forces off-brand; above Warn it
	// escalates to borderline. Either raises confidence to the example floor.
	BadExampleCritical     float64
	BadExampleWarn         float64
	ExampleConfidenceFloor int
	// Good-example similarity above this earns the positive fallback note.
	GoodExampleNoteworthy float64
	// Alignment bands: combined score below Low is weak borderline (low
	// confidence), below Mid is borderline, otherwise confidence scales from
	// the base by the score.
	AlignmentLow           float64
	AlignmentMid           float64
	AlignmentLowConfidence int
	AlignmentMidConfidence int
	AlignmentScaleBase     int
	AlignmentScaleFactor   float64
	// Value score above this earns the "reflects brand values" note; voice
	// score below Mid earns the missing-voice note.
	ValueScoreNoteworthy float64
	// MaxExplanations caps the explanation list.
	MaxExplanations int
	// MaxNamedItems caps how many values/descriptors/tones a note names.
	MaxNamedItems int
}

// defaultThresholds is the table the composer runs with.
var defaultThresholds = thresholds{
	BaseConfidence:         85,
	NeverRuleConfidence:    95,
	ToneConfidenceFloor:    90,
	BadExampleCritical:     0.5,
	BadExampleWarn:         0.3,
	ExampleConfidenceFloor: 80,
	GoodExampleNoteworthy:  0.3,
	AlignmentLow:           0.3,
	AlignmentMid:           0.5,
	AlignmentLowConfidence: 70,
	AlignmentMidConfidence: 75,
	AlignmentScaleBase:     80,
	AlignmentScaleFactor:   15,
	ValueScoreNoteworthy:   0.5,
	MaxExplanations:        3,
	MaxNamedItems:          2,
}
