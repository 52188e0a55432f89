package filter

import (
	"context"
	"fmt"
	"time"

	"github.com/navgurukul/region-detection/internal/core"
	"go.uber.org/zap"
)

// CliFilter implements a command-line interface for region classification
type CliFilter struct {
	service *core.RegionAnalysisService
	logger  *zap.Logger
	verbose bool
}

// NewCliFilter creates a new CLI filter
func NewCliFilter(service *core.RegionAnalysisService, logger *zap.Logger, verbose bool) (*CliFilter, error) {
	return &CliFilter{
		service: service,
		logger:  logger,
		verbose: verbose,
	}, nil
}

// ProcessRegions classifies a batch of regions and prints a per-region report
func (f *CliFilter) ProcessRegions(ctx context.Context, regions []*core.Region) ([]*core.Region, error) {
	startTime := time.Now()
	enriched := f.service.AnalyzeRegions(ctx, regions)

	fmt.Printf("\n=== Regions ===\n")
	for _, region := range enriched {
		fmt.Printf("[%s] %dx%d @ (%d,%d)  category=%s  is_code=%t  confidence=%.2f\n",
			region.ID, region.Width, region.Height, region.X, region.Y,
			region.ContentType, region.IsCode, region.Confidence)
		if f.verbose {
			preview := region.Text
			if len(preview) > 120 {
				preview = preview[:120] + "..."
			}
			fmt.Printf("    text: %q\n", preview)
		}
	}
	fmt.Printf("\nProcessed %d regions in %v\n", len(enriched), time.Since(startTime))

	return enriched, nil
}

// ProcessText classifies a single text and prints the full report
func (f *CliFilter) ProcessText(ctx context.Context, text string) {
	fmt.Printf("=== Input ===\n")
	fmt.Printf("Text length: %d bytes\n", len(text))
	if f.verbose {
		preview := text
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		fmt.Printf("\nPreview:\n%s\n", preview)
	}

	startTime := time.Now()
	detection, classification := f.service.AnalyzeText(text)
	duration := time.Since(startTime)

	fmt.Printf("\n=== Code Detection ===\n")
	fmt.Printf("Is code: %t\n", detection.IsCode)
	fmt.Printf("Confidence: %.4f\n", detection.Confidence)
	if detection.Language != "" {
		fmt.Printf("Language: %s\n", detection.Language)
	}
	fmt.Printf("Method: %s\n", detection.Method)
	fmt.Printf("Scores: pattern=%.4f statistical=%.4f grammar=%.4f\n",
		detection.Scores.Pattern, detection.Scores.Statistical, detection.Scores.Grammar)

	fmt.Printf("\n=== Content Classification ===\n")
	fmt.Printf("Category: %s\n", classification.Category)
	fmt.Printf("Confidence: %.4f\n", classification.Confidence)
	if classification.Subtype != "" {
		fmt.Printf("Subtype: %s\n", classification.Subtype)
	}
	fmt.Printf("Processing time: %v\n", duration)
}

// Start is a no-op for the CLI filter
func (f *CliFilter) Start() error {
	return nil
}

// Stop is a no-op for the CLI filter
func (f *CliFilter) Stop() error {
	return nil
}
