package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mariuschr/vinlookup-open/internal/common"
	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/metrics"
	"github.com/mariuschr/vinlookup-open/internal/models/entities"
)

const referenceCacheTTL = 10 * time.Minute

// ReferenceStore is the lookup contract for the reference tables.
type ReferenceStore interface {
	YearForCode(ctx context.Context, kode string) (int, error)
	ModelForIdentifier(ctx context.Context, identifikator string) (*entities.ModelCode, error)
	ColorForGerman(ctx context.Context, fargeTysk string) (string, error)
	AllColors(ctx context.Context) ([]entities.Color, error)
}

// ReferenceService wraps the reference repository with a cache. Reference
// tables are externally maintained and change rarely, so every hit saves a
// round trip on the hottest lookups (year codes during vehicle views).
type ReferenceService struct {
	repo    ReferenceStore
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

var _ ReferenceStore = (*ReferenceService)(nil)

func NewReferenceService(repo ReferenceStore, cache common.CacheInterface, metricsReg *metrics.MetricsRegistry) *ReferenceService {
	return &ReferenceService{repo: repo, cache: cache, metrics: metricsReg}
}

func (s *ReferenceService) recordCacheHit(prefix constants.CachePrefix) {
	if s.metrics != nil {
		s.metrics.CacheHitsTotal.WithLabelValues(string(prefix)).Inc()
	}
}

func (s *ReferenceService) recordCacheMiss(prefix constants.CachePrefix) {
	if s.metrics != nil {
		s.metrics.CacheMissesTotal.WithLabelValues(string(prefix)).Inc()
	}
}

// YearForCode resolves a model-year code, exact match. Absence is a
// resolution failure, never a default.
func (s *ReferenceService) YearForCode(ctx context.Context, kode string) (int, error) {
	key := string(constants.CachePrefixYearCode) + kode
	if val, found := s.cache.Get(key); found {
		switch year := val.(type) {
		case int:
			s.recordCacheHit(constants.CachePrefixYearCode)
			return year, nil
		case float64:
			// Redis round-trips numbers as float64
			s.recordCacheHit(constants.CachePrefixYearCode)
			return int(year), nil
		}
	}
	s.recordCacheMiss(constants.CachePrefixYearCode)

	year, err := s.repo.YearForCode(ctx, kode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrYearNotFound
		}
		return 0, err
	}

	s.cache.Set(key, year, referenceCacheTTL)
	return year, nil
}

// ModelForIdentifier resolves a model-identifier code to its brand and model
// base, first-match-wins on ambiguity (logged by the repository).
func (s *ReferenceService) ModelForIdentifier(ctx context.Context, identifikator string) (*entities.ModelCode, error) {
	key := string(constants.CachePrefixModelCode) + identifikator
	if val, found := s.cache.Get(key); found {
		if model, ok := val.(entities.ModelCode); ok {
			s.recordCacheHit(constants.CachePrefixModelCode)
			return &model, nil
		}
	}
	s.recordCacheMiss(constants.CachePrefixModelCode)

	model, err := s.repo.ModelForIdentifier(ctx, identifikator)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrModelNotFound
		}
		return nil, err
	}

	s.cache.Set(key, *model, referenceCacheTTL)
	return model, nil
}

func (s *ReferenceService) ColorForGerman(ctx context.Context, fargeTysk string) (string, error) {
	key := string(constants.CachePrefixColor) + fargeTysk
	if val, found := s.cache.Get(key); found {
		if norwegian, ok := val.(string); ok {
			s.recordCacheHit(constants.CachePrefixColor)
			return norwegian, nil
		}
	}
	s.recordCacheMiss(constants.CachePrefixColor)

	norwegian, err := s.repo.ColorForGerman(ctx, fargeTysk)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrColorNotFound
		}
		return "", err
	}

	s.cache.Set(key, norwegian, referenceCacheTTL)
	return norwegian, nil
}

func (s *ReferenceService) AllColors(ctx context.Context) ([]entities.Color, error) {
	key := string(constants.CachePrefixColorTable)
	if val, found := s.cache.Get(key); found {
		if colors, ok := val.([]entities.Color); ok {
			s.recordCacheHit(constants.CachePrefixColorTable)
			return colors, nil
		}
	}
	s.recordCacheMiss(constants.CachePrefixColorTable)

	colors, err := s.repo.AllColors(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, colors, referenceCacheTTL)
	return colors, nil
}
