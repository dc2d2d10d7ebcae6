package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilter_CombinesPredicatesAndKeepsOrder(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	txs := []Transaction{
		{Date: day(1), Amount: 10, Merchant: "A", Account: "Checking"},
		{Date: day(2), Amount: -5, Merchant: "B", Account: "Checking"},
		{Date: day(3), Amount: 20, Merchant: "C", Account: "Savings"},
		{Date: day(4), Amount: 30, Merchant: "D", Account: "Checking", Pending: true},
		{Date: day(5), Amount: 40, Merchant: "E", Account: "Checking"},
	}

	got := Filter(txs, Posted(), Expenses(), ByAccount("Checking"))

	assert.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Merchant)
	assert.Equal(t, "E", got[1].Merchant)
}

func TestFilter_Since(t *testing.T) {
	cutoff := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{Date: cutoff.AddDate(0, 0, -1), Merchant: "old"},
		{Date: cutoff, Merchant: "boundary"},
		{Date: cutoff.AddDate(0, 0, 1), Merchant: "new"},
	}

	got := Filter(txs, Since(cutoff))

	// Cutoff date itself is included
	assert.Len(t, got, 2)
	assert.Equal(t, "boundary", got[0].Merchant)
}

func TestMonth(t *testing.T) {
	tx := Transaction{Date: time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)}
	assert.Equal(t, "2025-03", tx.Month())
}
