package dto

import (
	"github.com/spendlens/spendlens-backend/internal/domain/detector"
	"github.com/spendlens/spendlens-backend/internal/domain/ledger"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/storage"
)

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// RecurringCandidateResponse is one detected recurring charge.
type RecurringCandidateResponse struct {
	Merchant        string             `json:"merchant"`
	Account         string             `json:"account"`
	Category        string             `json:"category"`
	AnnualizedSpend float64            `json:"annualized_spend"`
	AvgAmount       float64            `json:"avg_amount"`
	Frequency       string             `json:"frequency"`
	OccurrenceCount int                `json:"occurrence_count"`
	Confidence      int                `json:"confidence"`
	MonthlySpend    map[string]float64 `json:"monthly_spend"`
}

// RecurringResponse is returned by the recurring-charges endpoint.
type RecurringResponse struct {
	Candidates      []RecurringCandidateResponse `json:"candidates"`
	Count           int                          `json:"count"`
	TotalAnnualized float64                      `json:"total_annualized"`
}

// FromDetectorResult converts an engine result into the API response.
func FromDetectorResult(result *detector.Result) RecurringResponse {
	candidates := make([]RecurringCandidateResponse, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		candidates = append(candidates, RecurringCandidateResponse{
			Merchant:        c.Merchant,
			Account:         c.Account,
			Category:        c.Category,
			AnnualizedSpend: c.AnnualizedSpend,
			AvgAmount:       c.AvgAmount,
			Frequency:       string(c.Frequency),
			OccurrenceCount: c.OccurrenceCount,
			Confidence:      c.Confidence,
			MonthlySpend:    c.MonthlySpend,
		})
	}
	return RecurringResponse{
		Candidates:      candidates,
		Count:           result.Count,
		TotalAnnualized: result.TotalAnnualized,
	}
}

// TransactionResponse represents one ledger transaction.
type TransactionResponse struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Merchant string  `json:"merchant"`
	Category string  `json:"category"`
	Account  string  `json:"account"`
	Pending  bool    `json:"pending"`
}

// TransactionListResponse is returned when listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// FromTransactions converts ledger transactions into API responses.
func FromTransactions(txs []ledger.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionResponse{
			Date:     tx.Date.Format("2006-01-02"),
			Amount:   tx.Amount,
			Merchant: tx.Merchant,
			Category: tx.Category,
			Account:  tx.Account,
			Pending:  tx.Pending,
		})
	}
	return out
}

// RunResponse represents one historical detection run.
type RunResponse struct {
	ID              string  `json:"id"`
	AsOf            string  `json:"as_of"`
	CandidateCount  int     `json:"candidate_count"`
	TotalAnnualized float64 `json:"total_annualized"`
	DurationMS      int64   `json:"duration_ms"`
	CreatedAt       string  `json:"created_at"`
}

// RunListResponse is returned when listing detection runs.
type RunListResponse struct {
	Runs []RunResponse `json:"runs"`
}

// FromRuns converts stored runs into API responses.
func FromRuns(runs []storage.DetectionRun) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, RunResponse{
			ID:              run.ID,
			AsOf:            run.AsOf.Format("2006-01-02"),
			CandidateCount:  run.CandidateCount,
			TotalAnnualized: run.TotalAnnualized,
			DurationMS:      run.DurationMS,
			CreatedAt:       run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}

// StatsResponse is returned by the stats endpoint.
type StatsResponse struct {
	TransactionCount int    `json:"transaction_count"`
	AccountCount     int    `json:"account_count"`
	RunCount         int    `json:"run_count"`
	LastRunAt        string `json:"last_run_at,omitempty"`
}
