package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/navgurukul/region-detection/internal/adapters/filter"
	"github.com/navgurukul/region-detection/internal/core"
	"github.com/navgurukul/region-detection/internal/di"
	"go.uber.org/zap"
)

func main() {
	flags := di.ParseFlags()

	container, err := di.BuildCLIContainer(flags)
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	if err := container.Invoke(func(service *core.RegionAnalysisService, logger *zap.Logger) error {
		defer logger.Sync()
		return classify(flags, service, logger)
	}); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

func classify(flags *di.CLIFlags, service *core.RegionAnalysisService, logger *zap.Logger) error {
	// Read text from file or stdin
	var reader io.Reader
	if flags.InputFile != "" {
		file, err := os.Open(flags.InputFile)
		if err != nil {
			return fmt.Errorf("failed to open input file %s: %w", flags.InputFile, err)
		}
		defer file.Close()
		reader = file
		logger.Info("Reading input from file", zap.String("file", flags.InputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading input from stdin")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	cliFilter, err := filter.NewCliFilter(service, logger, flags.Verbose)
	if err != nil {
		return err
	}

	if flags.Batch {
		var regions []*core.Region
		if err := json.Unmarshal(data, &regions); err != nil {
			return fmt.Errorf("failed to parse region batch: %w", err)
		}
		enriched, err := cliFilter.ProcessRegions(context.Background(), regions)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(enriched, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode enriched regions: %w", err)
		}
		fmt.Printf("\n%s\n", out)
		return nil
	}

	cliFilter.ProcessText(context.Background(), string(data))
	return nil
}
