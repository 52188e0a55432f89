package factory

import (
	"fmt"
	"time"

	"github.com/navgurukul/region-detection/internal/adapters/filter"
	"github.com/navgurukul/region-detection/internal/config"
	"github.com/navgurukul/region-detection/internal/core"
	"github.com/navgurukul/region-detection/internal/ports"
	"go.uber.org/zap"
)

// FilterFactory creates region filters based on configuration
type FilterFactory struct {
	cfg     *config.Config
	logger  *zap.Logger
	service *core.RegionAnalysisService
}

// NewFilterFactory creates a new filter factory
func NewFilterFactory(cfg *config.Config, logger *zap.Logger, service *core.RegionAnalysisService) *FilterFactory {
	return &FilterFactory{
		cfg:     cfg,
		logger:  logger,
		service: service,
	}
}

// CreateRegionFilter creates a region filter based on the configuration
func (f *FilterFactory) CreateRegionFilter() (ports.RegionFilter, error) {
	serverCfg := f.cfg.GetServer()

	switch serverCfg.FilterType {
	case "stream":
		readTimeout, err := time.ParseDuration(serverCfg.ReadTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid server read timeout: %w", err)
		}
		return filter.NewStreamFilter(
			f.service,
			f.logger,
			serverCfg.ListenAddress,
			readTimeout,
			serverCfg.MaxBatchBytes,
		), nil
	case "cli":
		return filter.NewCliFilter(f.service, f.logger, f.cfg.GetBool("cli.verbose"))
	default:
		return nil, fmt.Errorf("unsupported filter type: %s", serverCfg.FilterType)
	}
}
