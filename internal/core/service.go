package core

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"go.uber.org/zap"

	"github.com/navgurukul/region-detection/internal/noise"
	"github.com/navgurukul/region-detection/internal/utils"
)

// maxRegionTextBytes bounds how much of a region's OCR text is scored.
const maxRegionTextBytes = 16 * 1024

// AnalysisOptions configure a RegionAnalysisService.
type AnalysisOptions struct {
	CacheEnabled     bool
	CacheTTL         time.Duration
	MinOCRConfidence float64
	Detect           DetectOptions
}

// RegionAnalysisService enriches OCR regions with code detection and content
// classification results. It owns the pipeline-level concerns the stateless
// classifiers must not carry: OCR-confidence gating, text normalization,
// chrome-phrase bypass and result caching by text hash.
type RegionAnalysisService struct {
	detector      *CodeDetector
	classifier    *ContentClassifier
	cache         CacheRepository
	chromeChecker *noise.Checker
	textProcessor *utils.TextProcessor
	logger        *zap.Logger
	opts          AnalysisOptions
}

// NewRegionAnalysisService creates a new region analysis service. cache may
// be nil when caching is disabled.
func NewRegionAnalysisService(
	detector *CodeDetector,
	classifier *ContentClassifier,
	cache CacheRepository,
	chromeChecker *noise.Checker,
	textProcessor *utils.TextProcessor,
	logger *zap.Logger,
	opts AnalysisOptions,
) *RegionAnalysisService {
	return &RegionAnalysisService{
		detector:      detector,
		classifier:    classifier,
		cache:         cache,
		chromeChecker: chromeChecker,
		textProcessor: textProcessor,
		logger:        logger,
		opts:          opts,
	}
}

// AnalyzeRegions enriches every region in place and returns the same slice.
// Regions below the OCR confidence floor or the detector's text length floor
// are left untouched. Items are independent; evaluation is sequential.
func (s *RegionAnalysisService) AnalyzeRegions(ctx context.Context, regions []*Region) []*Region {
	for _, region := range regions {
		s.analyzeRegion(ctx, region)
	}
	return regions
}

// AnalyzeText runs both classifiers over a single text string.
func (s *RegionAnalysisService) AnalyzeText(text string) (*CodeDetectionResult, *ContentClassificationResult) {
	normalized := s.textProcessor.ProcessText(text, maxRegionTextBytes)
	return s.detector.Detect(normalized, s.opts.Detect), s.classifier.Classify(normalized)
}

func (s *RegionAnalysisService) analyzeRegion(ctx context.Context, region *Region) {
	if region.OCRConfidence < s.opts.MinOCRConfidence {
		s.logger.Debug("Skipping low-confidence region",
			zap.String("region", region.ID),
			zap.Float64("ocr_confidence", region.OCRConfidence))
		return
	}

	text := s.textProcessor.ProcessText(region.Text, maxRegionTextBytes)
	if len(text) < s.opts.Detect.MinTextLength {
		return
	}

	if s.chromeChecker != nil && s.chromeChecker.IsChrome(text) {
		region.IsCode = false
		region.ContentType = CategoryUIElement
		region.Confidence = 1.0
		return
	}

	hash := textHash(text)
	if s.opts.CacheEnabled && s.cache != nil {
		if entry, err := s.cache.Get(ctx, hash); err == nil {
			s.logger.Debug("Cache hit for region text", zap.String("region", region.ID))
			region.IsCode = entry.IsCode
			region.Language = entry.Language
			region.ContentType = entry.Category
			region.Confidence = entry.Confidence
			return
		}
	}

	detection := s.detector.Detect(text, s.opts.Detect)
	classification := s.classifier.Classify(text)

	region.IsCode = detection.IsCode
	region.Language = detection.Language
	region.ContentType = classification.Category
	region.Confidence = classification.Confidence

	if s.opts.CacheEnabled && s.cache != nil {
		entry := &CacheEntry{
			TextHash:   hash,
			IsCode:     region.IsCode,
			Language:   region.Language,
			Category:   region.ContentType,
			Confidence: region.Confidence,
			LastSeen:   time.Now(),
			ExpiresAt:  time.Now().Add(s.opts.CacheTTL),
		}
		if err := s.cache.Set(ctx, entry); err != nil {
			s.logger.Error("Failed to update cache", zap.Error(err))
		}
	}
}

func textHash(text string) string {
	sum := sha1.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
