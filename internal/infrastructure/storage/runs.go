package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// SaveRun persists one detection run to history.
func (s *Storage) SaveRun(run *DetectionRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
	INSERT INTO detection_runs (id, as_of, candidate_count, total_annualized, config_json, duration_ms, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.AsOf,
		run.CandidateCount,
		run.TotalAnnualized,
		run.ConfigJSON,
		run.DurationMS,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save detection run %s: %w", run.ID, err)
	}
	return nil
}

// RecentRuns returns the most recent detection runs, newest first.
func (s *Storage) RecentRuns(limit int) ([]DetectionRun, error) {
	rows, err := s.db.Query(`
	SELECT id, as_of, candidate_count, total_annualized, config_json, duration_ms, created_at
	FROM detection_runs
	ORDER BY created_at DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []DetectionRun
	for rows.Next() {
		var run DetectionRun
		if err := rows.Scan(
			&run.ID,
			&run.AsOf,
			&run.CandidateCount,
			&run.TotalAnnualized,
			&run.ConfigJSON,
			&run.DurationMS,
			&run.CreatedAt,
		); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Stats returns aggregate counts over the ledger and run history.
func (s *Storage) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(`
	SELECT COUNT(*), COUNT(DISTINCT account) FROM transactions`).
		Scan(&stats.TransactionCount, &stats.AccountCount)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRow(`SELECT COUNT(*) FROM detection_runs`).Scan(&stats.RunCount)
	if err != nil {
		return nil, err
	}

	var lastRun time.Time
	err = s.db.QueryRow(`
	SELECT created_at FROM detection_runs
	ORDER BY created_at DESC
	LIMIT 1`).Scan(&lastRun)
	switch {
	case err == sql.ErrNoRows:
		// No runs yet
	case err != nil:
		return nil, err
	default:
		stats.LastRunAt = &lastRun
	}

	return stats, nil
}
