package noise

import (
	"strings"

	"go.uber.org/zap"
)

// Checker recognizes window-chrome phrases that recur in every OCR pass
// (menu bars, dialog buttons). Regions matching one are labeled UI chrome
// directly, bypassing the scorers.
type Checker struct {
	phrases map[string]struct{}
	logger  *zap.Logger
}

// NewChecker creates a new chrome-phrase checker.
func NewChecker(phrases []string, logger *zap.Logger) *Checker {
	normalized := make(map[string]struct{}, len(phrases))
	for _, phrase := range phrases {
		key := normalize(phrase)
		if key == "" {
			continue
		}
		normalized[key] = struct{}{}
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized chrome-phrase checker", zap.Int("phrases", len(normalized)))
	}

	return &Checker{
		phrases: normalized,
		logger:  logger,
	}
}

// IsChrome reports whether the text is a known window-chrome phrase.
func (c *Checker) IsChrome(text string) bool {
	if len(c.phrases) == 0 {
		return false
	}

	key := normalize(text)
	if _, ok := c.phrases[key]; ok {
		if c.logger != nil {
			c.logger.Debug("Region matched chrome phrase", zap.String("text", key))
		}
		return true
	}
	return false
}

func normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
