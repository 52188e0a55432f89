package core

import (
	"go.uber.org/zap"
)

// Detection method labels, recording which scorers actually ran.
const (
	MethodLengthCheck        = "length_check"
	MethodPatternStats       = "pattern+statistical"
	MethodPatternStatsSyntax = "pattern+statistical+syntax"
)

// Provisional confidence band in which the grammar check is worth running.
// Outside of it, pattern and statistical evidence is already decisive.
const (
	grammarBandLow  = 0.3
	grammarBandHigh = 0.8
)

// CodeDetector decides whether a piece of OCR text is source code. It combines
// the pattern and statistical scorers unconditionally and consults the
// optional grammar checker only when its result could change the decision.
// Detectors hold no mutable state and are safe for concurrent use.
type CodeDetector struct {
	patterns *PatternScorer
	stats    *StatisticalScorer
	grammar  GrammarChecker
	logger   *zap.Logger
}

// NewCodeDetector creates a code detector. grammar may be nil when no syntax
// checking capability is present; detection then runs on two signals only.
func NewCodeDetector(library *PatternLibrary, grammar GrammarChecker, logger *zap.Logger) *CodeDetector {
	return &CodeDetector{
		patterns: NewPatternScorer(library),
		stats:    NewStatisticalScorer(),
		grammar:  grammar,
		logger:   logger,
	}
}

// Detect classifies a single text string. Any input is valid; OCR garbage
// simply scores low. The result is owned by the caller.
func (d *CodeDetector) Detect(text string, opts DetectOptions) *CodeDetectionResult {
	if len(text) < opts.MinTextLength {
		return &CodeDetectionResult{Method: MethodLengthCheck}
	}

	patternScore, language := d.patterns.Score(text)
	statScore := d.stats.Score(text)

	confidence := 0.5*patternScore + 0.3*statScore
	method := MethodPatternStats
	grammarScore := 0.0

	if opts.EnableGrammarCheck && d.shouldCheckGrammar(language, confidence) {
		if d.grammar.Validate(text) {
			grammarScore = 1.0
		}
		confidence = 0.4*patternScore + 0.3*statScore + 0.3*grammarScore
		method = MethodPatternStatsSyntax
	}

	result := &CodeDetectionResult{
		IsCode:     confidence >= opts.MinConfidence,
		Confidence: confidence,
		Language:   language,
		Method:     method,
		Scores: ScoreBundle{
			Pattern:     patternScore,
			Statistical: statScore,
			Grammar:     grammarScore,
			Language:    language,
		},
	}

	d.logger.Debug("Code detection complete",
		zap.Bool("is_code", result.IsCode),
		zap.Float64("confidence", result.Confidence),
		zap.String("language", language),
		zap.String("method", method))

	return result
}

// DetectBatch classifies each text independently. There is no cross-text
// state; the i-th result equals Detect(texts[i], opts).
func (d *CodeDetector) DetectBatch(texts []string, opts DetectOptions) []*CodeDetectionResult {
	results := make([]*CodeDetectionResult, len(texts))
	for i, text := range texts {
		results[i] = d.Detect(text, opts)
	}
	return results
}

// SupportedLanguages returns the language families the detector can identify,
// in stable order.
func (d *CodeDetector) SupportedLanguages() []string {
	return d.patterns.library.AllFamilies()
}

// IsGrammarCheckAvailable reports whether the optional grammar checker is
// present and ready.
func (d *CodeDetector) IsGrammarCheckAvailable() bool {
	return d.grammar != nil && d.grammar.Available()
}

func (d *CodeDetector) shouldCheckGrammar(language string, provisional float64) bool {
	if !d.IsGrammarCheckAvailable() {
		return false
	}
	if !isJavaScriptFamily(language) {
		return false
	}
	return provisional > grammarBandLow && provisional < grammarBandHigh
}

func isJavaScriptFamily(language string) bool {
	return language == "javascript" || language == "typescript"
}
