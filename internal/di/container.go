package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/navgurukul/region-detection/internal/config"
	"github.com/navgurukul/region-detection/internal/core"
	"github.com/navgurukul/region-detection/internal/factory"
	"github.com/navgurukul/region-detection/internal/logging"
	"github.com/navgurukul/region-detection/internal/noise"
	"github.com/navgurukul/region-detection/internal/ports"
	"github.com/navgurukul/region-detection/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewGrammarFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFilterFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	// Register pattern library
	if err := container.Provide(core.NewPatternLibrary); err != nil {
		return nil, err
	}

	// Register grammar checker
	if err := container.Provide(func(f *factory.GrammarFactory) core.GrammarChecker {
		return f.CreateGrammarChecker()
	}); err != nil {
		return nil, err
	}

	// Register detector and classifier
	if err := container.Provide(core.NewCodeDetector); err != nil {
		return nil, err
	}
	if err := container.Provide(core.NewContentClassifier); err != nil {
		return nil, err
	}

	// Register cache repository
	if err := container.Provide(func(f *factory.CacheFactory) (core.CacheRepository, error) {
		return f.CreateCacheRepository()
	}); err != nil {
		return nil, err
	}

	// Register chrome-phrase checker
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *noise.Checker {
		return noise.NewChecker(cfg.GetAnalysis().ChromePhrases, logger)
	}); err != nil {
		return nil, err
	}

	// Register analysis options
	if err := container.Provide(func(cfg *config.Config, f *factory.CacheFactory) (core.AnalysisOptions, error) {
		cacheTTL, err := f.GetCacheTTL()
		if err != nil {
			return core.AnalysisOptions{}, err
		}
		detectorCfg := cfg.GetDetector()
		return core.AnalysisOptions{
			CacheEnabled:     f.IsCacheEnabled(),
			CacheTTL:         cacheTTL,
			MinOCRConfidence: cfg.GetAnalysis().MinOCRConfidence,
			Detect: core.DetectOptions{
				EnableGrammarCheck: detectorCfg.EnableGrammarCheck,
				MinConfidence:      detectorCfg.MinConfidence,
				MinTextLength:      detectorCfg.MinTextLength,
			},
		}, nil
	}); err != nil {
		return nil, err
	}

	// Register region analysis service
	if err := container.Provide(core.NewRegionAnalysisService); err != nil {
		return nil, err
	}

	// Register region filter
	if err := container.Provide(func(f *factory.FilterFactory) (ports.RegionFilter, error) {
		return f.CreateRegionFilter()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
