// Package ledger defines the transaction record shared by storage,
// import, and analysis. The ledger itself is append-only: records are
// produced by an import and never mutated afterwards.
package ledger

import "time"

// Transaction is one bank transaction. Amounts follow the bank export
// convention: positive = expense, negative = income/refund.
type Transaction struct {
	Date     time.Time `json:"date"`
	Amount   float64   `json:"amount"`
	Merchant string    `json:"merchant"`
	Category string    `json:"category"`
	Account  string    `json:"account"`
	Pending  bool      `json:"pending"`
}

// Month returns the calendar month of the transaction as "YYYY-MM".
func (t Transaction) Month() string {
	return t.Date.Format("2006-01")
}

// FilterFunc is a predicate over transactions.
type FilterFunc func(Transaction) bool

// Filter returns the transactions satisfying all given predicates,
// preserving input order.
func Filter(txs []Transaction, preds ...FilterFunc) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		keep := true
		for _, p := range preds {
			if !p(tx) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, tx)
		}
	}
	return out
}

// Posted keeps only settled (non-pending) transactions.
func Posted() FilterFunc {
	return func(t Transaction) bool { return !t.Pending }
}

// Since keeps transactions on or after the cutoff date.
func Since(cutoff time.Time) FilterFunc {
	return func(t Transaction) bool { return !t.Date.Before(cutoff) }
}

// ByAccount keeps transactions for the named account.
func ByAccount(account string) FilterFunc {
	return func(t Transaction) bool { return t.Account == account }
}

// Expenses keeps positive-amount (spend) transactions.
func Expenses() FilterFunc {
	return func(t Transaction) bool { return t.Amount > 0 }
}
