package factory

import (
	"fmt"
	"time"

	"github.com/navgurukul/region-detection/internal/adapters/cache"
	"github.com/navgurukul/region-detection/internal/config"
	"github.com/navgurukul/region-detection/internal/core"
	"go.uber.org/zap"
)

// CacheFactory creates cache repositories based on configuration
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCacheRepository creates a cache repository based on the configuration.
// Returns nil for the "none" type; classification results then live only for
// the duration of a single call.
func (f *CacheFactory) CreateCacheRepository() (core.CacheRepository, error) {
	cacheType := f.cfg.GetString("cache.type")

	switch cacheType {
	case "memory":
		cleanupFreq, err := f.cfg.GetDuration("cache.cleanup_frequency")
		if err != nil {
			return nil, fmt.Errorf("invalid cache cleanup frequency: %w", err)
		}
		return cache.NewMemoryCache(f.logger, cleanupFreq, nil), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cacheType)
	}
}

// GetCacheTTL returns the configured cache TTL
func (f *CacheFactory) GetCacheTTL() (time.Duration, error) {
	return f.cfg.GetDuration("cache.ttl")
}

// IsCacheEnabled returns whether caching is enabled
func (f *CacheFactory) IsCacheEnabled() bool {
	return f.cfg.GetBool("cache.enabled") && f.cfg.GetString("cache.type") != "none"
}
