package storage

import (
	"database/sql"
	"fmt"

	"github.com/spendlens/spendlens-backend/internal/domain/ledger"
)

// SaveTransactions inserts ledger transactions. Re-importing the same
// export is idempotent: rows matching an existing (date, amount,
// merchant, account) tuple are skipped. Returns the number of rows
// actually inserted.
func (s *Storage) SaveTransactions(txs []ledger.Transaction) (int, error) {
	dbTx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := dbTx.Prepare(`
	INSERT OR IGNORE INTO transactions (date, amount, merchant, category, account, pending)
	VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = dbTx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, tx := range txs {
		res, err := stmt.Exec(tx.Date, tx.Amount, tx.Merchant, tx.Category, tx.Account, tx.Pending)
		if err != nil {
			_ = dbTx.Rollback()
			return 0, fmt.Errorf("failed to insert transaction for %q: %w", tx.Merchant, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// ListTransactions returns a page of transactions, newest first.
func (s *Storage) ListTransactions(limit, offset int) ([]ledger.Transaction, error) {
	rows, err := s.db.Query(`
	SELECT date, amount, merchant, category, account, pending
	FROM transactions
	ORDER BY date DESC, id DESC
	LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// AllTransactions returns the whole ledger in date order, the form the
// detection engine consumes.
func (s *Storage) AllTransactions() ([]ledger.Transaction, error) {
	rows, err := s.db.Query(`
	SELECT date, amount, merchant, category, account, pending
	FROM transactions
	ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]ledger.Transaction, error) {
	var txs []ledger.Transaction
	for rows.Next() {
		var tx ledger.Transaction
		if err := rows.Scan(&tx.Date, &tx.Amount, &tx.Merchant, &tx.Category, &tx.Account, &tx.Pending); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
