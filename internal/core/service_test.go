package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/navgurukul/region-detection/internal/noise"
	"github.com/navgurukul/region-detection/internal/utils"
)

type fakeCache struct {
	entries map[string]*CacheEntry
	gets    int
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*CacheEntry)}
}

func (c *fakeCache) Get(_ context.Context, textHash string) (*CacheEntry, error) {
	c.gets++
	entry, ok := c.entries[textHash]
	if !ok {
		return nil, errors.New("not found")
	}
	return entry, nil
}

func (c *fakeCache) Set(_ context.Context, entry *CacheEntry) error {
	c.sets++
	c.entries[entry.TextHash] = entry
	return nil
}

func (c *fakeCache) Delete(_ context.Context, textHash string) error {
	delete(c.entries, textHash)
	return nil
}

func (c *fakeCache) Cleanup(_ context.Context) error { return nil }

func newTestService(cache CacheRepository, chromePhrases []string) *RegionAnalysisService {
	logger := zap.NewNop()
	library := NewPatternLibrary()
	return NewRegionAnalysisService(
		NewCodeDetector(library, nil, logger),
		NewContentClassifier(library, logger),
		cache,
		noise.NewChecker(chromePhrases, logger),
		utils.NewTextProcessor(logger),
		logger,
		AnalysisOptions{
			CacheEnabled:     cache != nil,
			CacheTTL:         time.Minute,
			MinOCRConfidence: 0.5,
			Detect:           DefaultDetectOptions(),
		},
	)
}

func TestAnalyzeRegionsEnriches(t *testing.T) {
	service := newTestService(nil, nil)

	regions := []*Region{
		{ID: "r1", Text: "const total = items.reduce((a, b) => a + b, 0);", OCRConfidence: 0.9},
		{ID: "r2", Text: "The sprint review went well and everyone agreed on scope.", OCRConfidence: 0.9},
	}

	service.AnalyzeRegions(context.Background(), regions)

	if regions[0].ContentType != CategoryCode {
		t.Errorf("r1 ContentType = %s, want %s", regions[0].ContentType, CategoryCode)
	}
	if regions[1].ContentType != CategoryRegularText {
		t.Errorf("r2 ContentType = %s, want %s", regions[1].ContentType, CategoryRegularText)
	}
	if regions[1].IsCode {
		t.Error("r2 IsCode = true, want false")
	}
}

func TestAnalyzeRegionsSkipsLowOCRConfidence(t *testing.T) {
	service := newTestService(nil, nil)

	region := &Region{ID: "r1", Text: "function hello() { console.log('hi'); }", OCRConfidence: 0.2}
	service.AnalyzeRegions(context.Background(), []*Region{region})

	if region.ContentType != "" {
		t.Errorf("ContentType = %s, want empty for skipped region", region.ContentType)
	}
	if region.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0 for skipped region", region.Confidence)
	}
}

func TestAnalyzeRegionsUsesCache(t *testing.T) {
	cache := newFakeCache()
	service := newTestService(cache, nil)
	text := "$ npm install\n$ npm run build"

	first := &Region{ID: "r1", Text: text, OCRConfidence: 0.9}
	service.AnalyzeRegions(context.Background(), []*Region{first})
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second := &Region{ID: "r2", Text: text, OCRConfidence: 0.9}
	service.AnalyzeRegions(context.Background(), []*Region{second})
	if cache.sets != 1 {
		t.Errorf("cache sets = %d after second pass, want 1", cache.sets)
	}
	if second.ContentType != first.ContentType || second.Confidence != first.Confidence {
		t.Errorf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestAnalyzeRegionsChromeBypass(t *testing.T) {
	cache := newFakeCache()
	service := newTestService(cache, []string{"File Edit View Window Help"})

	region := &Region{ID: "r1", Text: "File  Edit View Window  Help", OCRConfidence: 0.9}
	service.AnalyzeRegions(context.Background(), []*Region{region})

	if region.ContentType != CategoryUIElement {
		t.Errorf("ContentType = %s, want %s", region.ContentType, CategoryUIElement)
	}
	if region.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", region.Confidence)
	}
	if cache.gets != 0 || cache.sets != 0 {
		t.Errorf("chrome bypass touched cache: gets=%d sets=%d", cache.gets, cache.sets)
	}
}

func TestAnalyzeText(t *testing.T) {
	service := newTestService(nil, nil)

	detection, classification := service.AnalyzeText("├── src/\n│   └── utils/\n└── package.json")
	if detection == nil || classification == nil {
		t.Fatal("nil result")
	}
	if classification.Category != CategoryProjectStructure {
		t.Errorf("Category = %s, want %s", classification.Category, CategoryProjectStructure)
	}
}
