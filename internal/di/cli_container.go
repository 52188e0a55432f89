package di

import (
	"flag"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/navgurukul/region-detection/internal/config"
	"github.com/navgurukul/region-detection/internal/core"
	"github.com/navgurukul/region-detection/internal/factory"
	"github.com/navgurukul/region-detection/internal/logging"
	"github.com/navgurukul/region-detection/internal/noise"
	"github.com/navgurukul/region-detection/internal/utils"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Detector flags
	MinConfidence float64
	MinTextLength int
	GrammarCheck  bool

	// Input flags
	InputFile  string
	Batch      bool
	Verbose    bool
	JSONLog    bool
	ConfigFile string
}

// ParseFlags parses command line flags and returns a CLIFlags struct
func ParseFlags() *CLIFlags {
	flags := &CLIFlags{}

	flag.Float64Var(&flags.MinConfidence, "min-confidence", 0.6, "Confidence threshold for marking text as code")
	flag.IntVar(&flags.MinTextLength, "min-text-length", 10, "Minimum text length before any scorer runs")
	flag.BoolVar(&flags.GrammarCheck, "grammar-check", true, "Enable JavaScript grammar checking for uncertain cases")

	flag.StringVar(&flags.InputFile, "file", "", "Input text file (use stdin if not specified)")
	flag.BoolVar(&flags.Batch, "batch", false, "Treat input as a JSON array of OCR regions")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	flag.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	flag.StringVar(&flags.ConfigFile, "config", "", "Path to config file (overrides command line flags)")

	flag.Parse()
	return flags
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		if flags.ConfigFile != "" {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
			return cfg, nil
		}

		// Create config from command line flags
		return createConfigFromFlags(flags), nil
	}); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewGrammarFactory); err != nil {
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

	// Register region analysis service with no cache
	if err := container.Provide(func(
		detector *core.CodeDetector,
		classifier *core.ContentClassifier,
		textProcessor *utils.TextProcessor,
		logger *zap.Logger,
		cfg *config.Config,
	) *core.RegionAnalysisService {
		detectorCfg := cfg.GetDetector()
		return core.NewRegionAnalysisService(
			detector,
			classifier,
			nil, // No cache for one-shot CLI runs
			noise.NewChecker(cfg.GetAnalysis().ChromePhrases, logger),
			textProcessor,
			logger,
			core.AnalysisOptions{
				MinOCRConfidence: cfg.GetAnalysis().MinOCRConfidence,
				Detect: core.DetectOptions{
					EnableGrammarCheck: detectorCfg.EnableGrammarCheck,
					MinConfidence:      detectorCfg.MinConfidence,
					MinTextLength:      detectorCfg.MinTextLength,
				},
			},
		)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags(flags *CLIFlags) *config.Config {
	v := config.NewEmptyViper()

	v.Set("server.filter_type", "cli")
	v.Set("cli.verbose", flags.Verbose)

	v.Set("detector.min_confidence", flags.MinConfidence)
	v.Set("detector.min_text_length", flags.MinTextLength)
	v.Set("detector.enable_grammar_check", flags.GrammarCheck)
	v.Set("grammar.enabled", flags.GrammarCheck)

	v.Set("cache.type", "none")
	v.Set("cache.enabled", false)

	return config.NewFromViper(v)
}
