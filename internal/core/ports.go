package core

import (
	"context"
)

// GrammarChecker is the optional syntax-validation capability. Implementations
// may initialize lazily in the background; Available must never block, and a
// false return simply drops the grammar signal from scoring.
type GrammarChecker interface {
	// Available reports whether the underlying parser is ready for use.
	Available() bool

	// Validate reports whether the text parses as valid JavaScript.
	Validate(text string) bool
}

// CacheRepository defines the interface for caching region classification
// results by text hash.
type CacheRepository interface {
	// Get retrieves a cached entry for a text hash
	Get(ctx context.Context, textHash string) (*CacheEntry, error)

	// Set stores a cache entry
	Set(ctx context.Context, entry *CacheEntry) error

	// Delete removes a cache entry
	Delete(ctx context.Context, textHash string) error

	// Cleanup removes expired entries
	Cleanup(ctx context.Context) error
}
