package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens-backend/internal/domain/detector"
	"github.com/spendlens/spendlens-backend/internal/domain/ledger"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/storage"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	txs       []ledger.Transaction
	runs      []storage.DetectionRun
	loadCount int
}

func (f *fakeRepo) SaveTransactions(txs []ledger.Transaction) (int, error) {
	f.txs = append(f.txs, txs...)
	return len(txs), nil
}

func (f *fakeRepo) ListTransactions(limit, offset int) ([]ledger.Transaction, error) {
	return f.txs, nil
}

func (f *fakeRepo) AllTransactions() ([]ledger.Transaction, error) {
	f.loadCount++
	return f.txs, nil
}

func (f *fakeRepo) SaveRun(run *storage.DetectionRun) error {
	f.runs = append(f.runs, *run)
	return nil
}

func (f *fakeRepo) RecentRuns(limit int) ([]storage.DetectionRun, error) {
	return f.runs, nil
}

func (f *fakeRepo) Stats() (*storage.Stats, error) {
	return &storage.Stats{TransactionCount: len(f.txs), RunCount: len(f.runs)}, nil
}

func (f *fakeRepo) Close() error { return nil }

var serviceAsOf = time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

func monthlyCharges(merchant string, amount float64) []ledger.Transaction {
	var txs []ledger.Transaction
	for _, daysAgo := range []int{60, 30, 0} {
		txs = append(txs, ledger.Transaction{
			Date:     serviceAsOf.AddDate(0, 0, -daysAgo),
			Amount:   amount,
			Merchant: merchant,
			Account:  "Checking",
		})
	}
	return txs
}

func TestDetectionService_DetectAndRecordRun(t *testing.T) {
	// Arrange
	repo := &fakeRepo{txs: monthlyCharges("NETFLIX.COM 123456", 15.49)}
	svc, err := NewDetectionService(repo, nil)
	require.NoError(t, err)

	// Act
	result, err := svc.Detect(detector.DefaultConfig(), serviceAsOf)

	// Assert
	require.NoError(t, err)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, detector.FrequencyMonthly, result.Candidates[0].Frequency)

	require.Len(t, repo.runs, 1)
	run := repo.runs[0]
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 1, run.CandidateCount)
	assert.InDelta(t, result.TotalAnnualized, run.TotalAnnualized, 0.001)
	assert.Contains(t, run.ConfigJSON, "amount_tolerance")
}

func TestDetectionService_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeRepo{txs: monthlyCharges("NETFLIX.COM 123456", 15.49)}
	svc, err := NewDetectionService(repo, nil)
	require.NoError(t, err)

	first, err := svc.Detect(detector.DefaultConfig(), serviceAsOf)
	require.NoError(t, err)
	second, err := svc.Detect(detector.DefaultConfig(), serviceAsOf)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.loadCount)
	assert.Len(t, repo.runs, 1)
}

func TestDetectionService_DifferentConfigBypassesCache(t *testing.T) {
	repo := &fakeRepo{txs: monthlyCharges("NETFLIX.COM 123456", 15.49)}
	svc, err := NewDetectionService(repo, nil)
	require.NoError(t, err)

	_, err = svc.Detect(detector.DefaultConfig(), serviceAsOf)
	require.NoError(t, err)

	looser := detector.DefaultConfig()
	looser.MinOccurrences = 2
	_, err = svc.Detect(looser, serviceAsOf)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.loadCount)
}

func TestDetectionService_InvalidateCache(t *testing.T) {
	repo := &fakeRepo{txs: monthlyCharges("NETFLIX.COM 123456", 15.49)}
	svc, err := NewDetectionService(repo, nil)
	require.NoError(t, err)

	_, err = svc.Detect(detector.DefaultConfig(), serviceAsOf)
	require.NoError(t, err)

	svc.InvalidateCache()

	_, err = svc.Detect(detector.DefaultConfig(), serviceAsOf)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.loadCount)
}

func TestDetectionService_EmptyLedger(t *testing.T) {
	repo := &fakeRepo{}
	svc, err := NewDetectionService(repo, nil)
	require.NoError(t, err)

	result, err := svc.Detect(detector.DefaultConfig(), serviceAsOf)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, 0.0, result.TotalAnnualized)
	assert.Empty(t, result.Candidates)
}
