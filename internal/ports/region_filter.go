package ports

import (
	"context"

	"github.com/navgurukul/region-detection/internal/core"
)

// RegionFilter is the surface the external capture/OCR pipeline plugs into.
type RegionFilter interface {
	// ProcessRegions classifies a batch of OCR regions and returns them enriched
	ProcessRegions(ctx context.Context, regions []*core.Region) ([]*core.Region, error)

	// Start starts the filter service
	Start() error

	// Stop stops the filter service
	Stop() error
}
