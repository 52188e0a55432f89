package core

import (
	"regexp"
	"time"
)

// Category is one of the seven semantic content categories a screen region
// can resolve to. Every input classifies as something; regular text is the
// fallback, there is no unknown category.
type Category string

const (
	CategoryProjectStructure Category = "project_structure"
	CategoryFilePath         Category = "file_path"
	CategoryCode             Category = "code"
	CategoryTerminal         Category = "terminal"
	CategoryDocumentation    Category = "documentation"
	CategoryUIElement        Category = "ui_element"
	CategoryRegularText      Category = "regular_text"
)

// Signature is one regular-expression pattern evidencing a language family.
// Signatures are compiled once at startup and never mutated.
type Signature struct {
	Family  string
	Pattern *regexp.Regexp
}

// LanguagePatternSet groups the signatures for one language family together
// with the family weight. The weight discounts families whose signatures are
// weak evidence of code (markup shows up in prose quoting markup).
type LanguagePatternSet struct {
	Name       string
	Weight     float64
	Signatures []Signature
}

// ScoreBundle holds the three independent scorer outputs for one text,
// each in [0,1], plus the language the pattern scorer identified.
type ScoreBundle struct {
	Pattern     float64 `json:"pattern"`
	Statistical float64 `json:"statistical"`
	Grammar     float64 `json:"grammar"`
	Language    string  `json:"language,omitempty"`
}

// CodeDetectionResult is the binary code/not-code decision for one text.
// Method records which scorers actually contributed.
type CodeDetectionResult struct {
	IsCode     bool        `json:"is_code"`
	Confidence float64     `json:"confidence"`
	Language   string      `json:"language,omitempty"`
	Method     string      `json:"method"`
	Scores     ScoreBundle `json:"scores"`
}

// ContentFeatures records which structural cues fired during classification.
type ContentFeatures struct {
	HasTreeChars    bool `json:"has_tree_chars"`
	HasFilePattern  bool `json:"has_file_pattern"`
	HasCodeKeywords bool `json:"has_code_keywords"`
	HasShellPrompt  bool `json:"has_shell_prompt"`
	HasMarkdown     bool `json:"has_markdown"`
	HasUIPattern    bool `json:"has_ui_pattern"`
}

// ContentClassificationResult is the seven-way semantic category decision
// for one text.
type ContentClassificationResult struct {
	Category   Category        `json:"category"`
	Confidence float64         `json:"confidence"`
	Subtype    string          `json:"subtype,omitempty"`
	Features   ContentFeatures `json:"features"`
}

// DetectOptions control a single code detection call.
type DetectOptions struct {
	EnableGrammarCheck bool
	MinConfidence      float64
	MinTextLength      int
}

// DefaultDetectOptions returns the standard detection thresholds.
func DefaultDetectOptions() DetectOptions {
	return DetectOptions{
		EnableGrammarCheck: true,
		MinConfidence:      0.6,
		MinTextLength:      10,
	}
}

// Region is an OCR-processed rectangle of screen content. The OCR collaborator
// owns its lifecycle, bounding box and pixel data; the analysis service only
// reads Text and writes the enrichment fields back.
type Region struct {
	ID            string   `json:"id,omitempty"`
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	Text          string   `json:"text"`
	OCRConfidence float64  `json:"ocr_confidence"`
	IsCode        bool     `json:"is_code"`
	Language      string   `json:"language,omitempty"`
	ContentType   Category `json:"content_type,omitempty"`
	Confidence    float64  `json:"confidence"`
}

// CacheEntry is a cached classification outcome keyed by the hash of the
// normalized region text. Caching OCR-derived results is the region
// pipeline's concern; the classifiers themselves are stateless.
type CacheEntry struct {
	TextHash   string
	IsCode     bool
	Language   string
	Category   Category
	Confidence float64
	LastSeen   time.Time
	ExpiresAt  time.Time
}
