// Package service wires storage and the detection engine together for
// the API and CLI entrypoints.
package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"

	"github.com/spendlens/spendlens-backend/internal/domain/detector"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/storage"
)

// cacheTTL bounds how stale a served detection result can be after a
// ledger import.
const cacheTTL = time.Minute

// DetectionService runs recurring-charge detection over the stored
// ledger, records run history, and caches results for repeated calls
// over an unchanged ledger.
type DetectionService struct {
	repo   storage.Repository
	cache  *ristretto.Cache
	logger *slog.Logger
}

// NewDetectionService creates a detection service.
func NewDetectionService(repo storage.Repository, logger *slog.Logger) (*DetectionService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 12,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	return &DetectionService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}, nil
}

// Detect runs detection as of the given date with the given config.
// Identical calls within the cache TTL are served from cache without
// re-reading the ledger or recording a new run.
func (s *DetectionService) Detect(cfg detector.Config, asOf time.Time) (*detector.Result, error) {
	d := detector.NewDetector(cfg)
	key := cacheKey(d.Config(), asOf)

	if cached, ok := s.cache.Get(key); ok {
		if result, ok := cached.(*detector.Result); ok {
			s.logger.Debug("serving cached detection result", "key", key)
			return result, nil
		}
	}

	txs, err := s.repo.AllTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	start := time.Now()
	result := d.Detect(txs, asOf)
	duration := time.Since(start)

	s.logger.Info("detection run complete",
		"transactions", len(txs),
		"candidates", result.Count,
		"total_annualized", result.TotalAnnualized,
		"duration", duration,
	)

	if err := s.recordRun(d.Config(), asOf, result, duration); err != nil {
		// Run history is best-effort; the result is still valid
		s.logger.Warn("failed to record detection run", "error", err)
	}

	s.cache.SetWithTTL(key, result, 1, cacheTTL)
	s.cache.Wait()

	return result, nil
}

// InvalidateCache drops all cached results, e.g. after an import.
func (s *DetectionService) InvalidateCache() {
	s.cache.Clear()
}

func (s *DetectionService) recordRun(cfg detector.Config, asOf time.Time, result *detector.Result, duration time.Duration) error {
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	return s.repo.SaveRun(&storage.DetectionRun{
		ID:              uuid.NewString(),
		AsOf:            asOf,
		CandidateCount:  result.Count,
		TotalAnnualized: result.TotalAnnualized,
		ConfigJSON:      string(cfgJSON),
		DurationMS:      duration.Milliseconds(),
	})
}

// cacheKey identifies a result by run day and effective config. Runs
// on the same day with the same config see the same ledger window.
func cacheKey(cfg detector.Config, asOf time.Time) string {
	return fmt.Sprintf("%s|%.4f|%d|%d|%.2f",
		asOf.Format("2006-01-02"),
		cfg.AmountTolerance,
		cfg.MinOccurrences,
		cfg.MonthsToAnalyze,
		cfg.MinAmount,
	)
}
