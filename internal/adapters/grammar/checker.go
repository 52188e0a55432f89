package grammar

import (
	"sync/atomic"

	"github.com/dop251/goja/parser"
	"go.uber.org/zap"
)

// Checker validates text as JavaScript using the goja parser. Initialization
// is fire-and-forget: construction returns immediately and a background probe
// flips the checker available once the parser is warm. Detection calls that
// arrive before then simply run without the grammar signal.
type Checker struct {
	logger *zap.Logger
	ready  atomic.Bool
}

// NewChecker creates a grammar checker and starts its background warm-up.
func NewChecker(logger *zap.Logger) *Checker {
	c := &Checker{logger: logger}
	go c.warmUp()
	return c
}

func (c *Checker) warmUp() {
	// One trivial parse so the first real validation does not pay the
	// parser's lazy table initialization.
	if _, err := parser.ParseFile(nil, "probe.js", "var probe = 1;", 0); err != nil {
		c.logger.Warn("Grammar checker probe failed, syntax scoring disabled", zap.Error(err))
		return
	}
	c.ready.Store(true)
	c.logger.Debug("Grammar checker ready")
}

// Available reports whether the warm-up probe has completed. Never blocks.
func (c *Checker) Available() bool {
	return c.ready.Load()
}

// Validate reports whether the text parses as JavaScript. The text is tried
// as-is first, then wrapped in a function body so the loose fragments OCR
// produces (top-level return, bare statement runs) still parse.
func (c *Checker) Validate(text string) bool {
	if _, err := parser.ParseFile(nil, "region.js", text, 0); err == nil {
		return true
	}

	wrapped := "(function() {\n" + text + "\n})"
	_, err := parser.ParseFile(nil, "region.js", wrapped, 0)
	return err == nil
}
