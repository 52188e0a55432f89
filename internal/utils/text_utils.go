package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TextProcessor prepares OCR-extracted text for classification. OCR output
// carries fullwidth forms, stray control characters and broken UTF-8; the
// scorers expect none of those.
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor.
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{logger: logger}
}

// stripControl removes control characters except newlines and tabs.
var stripControl = runes.Remove(runes.Predicate(func(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t'
}))

// NormalizeOCRText applies NFKC normalization, strips control characters
// (keeping newlines and tabs) and trims surrounding whitespace. On transform
// failure the sanitized input is returned unchanged.
func (tp *TextProcessor) NormalizeOCRText(text string) string {
	sanitized := tp.SanitizeUTF8(text)
	// Transformers carry per-run state, so the chain is built per call
	// rather than shared across goroutines.
	normalized, _, err := transform.String(transform.Chain(norm.NFKC, stripControl), sanitized)
	if err != nil {
		tp.logger.Debug("Text normalization failed", zap.Error(err))
		return strings.TrimSpace(sanitized)
	}
	return strings.TrimSpace(normalized)
}

// SanitizeUTF8 ensures the string contains only valid UTF-8 characters.
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	// Drop invalid UTF-8 sequences rather than keeping replacement runes;
	// they would skew the character-statistics features.
	result := make([]rune, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(text[i:])
			if size == 1 {
				continue
			}
		}
		result = append(result, r)
	}

	return string(result)
}

// TruncateText safely truncates text to the specified maximum byte size,
// keeping the result valid UTF-8. Oversized OCR dumps gain nothing past the
// first few kilobytes of signal.
func (tp *TextProcessor) TruncateText(text string, maxSize int) string {
	if maxSize <= 0 || len(text) <= maxSize {
		return text
	}

	truncated := text[:maxSize]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	tp.logger.Debug("Text truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", maxSize))

	return truncated
}

// ProcessText truncates and normalizes text in one operation.
func (tp *TextProcessor) ProcessText(text string, maxSize int) string {
	return tp.NormalizeOCRText(tp.TruncateText(text, maxSize))
}
