package detector

import (
	"math"
	"time"

	"github.com/spendlens/spendlens-backend/internal/domain/ledger"
)

// charge is one observed charge within a merchant group. Amounts are
// stored absolute; the sign convention is the filter's concern.
type charge struct {
	date   time.Time
	amount float64
}

// merchantGroup is the transient per-merchant bucket built fresh each
// run. Representative metadata comes from the first transaction seen
// for the key, in input order.
type merchantGroup struct {
	key      string
	merchant string
	category string
	account  string
	charges  []charge
}

// groupByMerchant partitions transactions by normalized merchant key.
// Groups come back in first-appearance order so output is reproducible
// for a fixed input.
func groupByMerchant(txs []ledger.Transaction) []*merchantGroup {
	byKey := make(map[string]*merchantGroup)
	var groups []*merchantGroup

	for _, tx := range txs {
		key := NormalizeMerchant(tx.Merchant)
		if key == "" {
			continue
		}

		g, ok := byKey[key]
		if !ok {
			g = &merchantGroup{
				key:      key,
				merchant: tx.Merchant,
				category: tx.Category,
				account:  tx.Account,
			}
			byKey[key] = g
			groups = append(groups, g)
		}

		g.charges = append(g.charges, charge{
			date:   tx.Date,
			amount: math.Abs(tx.Amount),
		})
	}

	return groups
}
