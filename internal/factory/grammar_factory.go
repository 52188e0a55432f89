package factory

import (
	"github.com/navgurukul/region-detection/internal/adapters/grammar"
	"github.com/navgurukul/region-detection/internal/config"
	"github.com/navgurukul/region-detection/internal/core"
	"go.uber.org/zap"
)

// GrammarFactory creates the optional grammar checker
type GrammarFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewGrammarFactory creates a new grammar factory
func NewGrammarFactory(cfg *config.Config, logger *zap.Logger) *GrammarFactory {
	return &GrammarFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateGrammarChecker creates the grammar checker, or nil when syntax
// checking is disabled in the configuration.
func (f *GrammarFactory) CreateGrammarChecker() core.GrammarChecker {
	if !f.cfg.GetBool("grammar.enabled") {
		f.logger.Info("Grammar checking disabled by configuration")
		return nil
	}
	return grammar.NewChecker(f.logger)
}
