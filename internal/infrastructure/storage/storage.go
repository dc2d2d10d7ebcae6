// Package storage provides SQLite persistence for the transaction
// ledger and detection-run history. The detection engine itself never
// touches the database; callers load transactions and pass them in.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spendlens/spendlens-backend/internal/domain/ledger"
)

// Repository is the storage surface consumed by the service and API
// layers.
type Repository interface {
	SaveTransactions(txs []ledger.Transaction) (int, error)
	ListTransactions(limit, offset int) ([]ledger.Transaction, error)
	AllTransactions() ([]ledger.Transaction, error)
	SaveRun(run *DetectionRun) error
	RecentRuns(limit int) ([]DetectionRun, error)
	Stats() (*Stats, error)
	Close() error
}

// Storage provides SQLite database access.
// It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// DetectionRun is one persisted detection run.
type DetectionRun struct {
	ID              string    `json:"id"`
	AsOf            time.Time `json:"as_of"`
	CandidateCount  int       `json:"candidate_count"`
	TotalAnnualized float64   `json:"total_annualized"`
	ConfigJSON      string    `json:"config_json"`
	DurationMS      int64     `json:"duration_ms"`
	CreatedAt       time.Time `json:"created_at"`
}

// Stats summarizes the ledger and run history.
type Stats struct {
	TransactionCount int        `json:"transaction_count"`
	AccountCount     int        `json:"account_count"`
	RunCount         int        `json:"run_count"`
	LastRunAt        *time.Time `json:"last_run_at,omitempty"`
}

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	// Run all pending migrations
	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}
