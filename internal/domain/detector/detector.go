// Package detector finds recurring charges (subscriptions, rent,
// utilities) in a ledger of bank transactions.
//
// The pipeline filters the ledger to the analysis window, groups
// charges by normalized merchant key, checks each group for amount
// consistency and cadence, scores confidence, and annualizes the
// result. One call processes the whole set synchronously; output is
// deterministic for a fixed input and configuration.
//
// Example usage:
//
//	d := detector.NewDetector(detector.DefaultConfig())
//	result := d.Detect(transactions, time.Now())
//	for _, c := range result.Candidates {
//		fmt.Println(c.Merchant, c.Frequency, c.AnnualizedSpend)
//	}
package detector

import (
	"math"
	"sort"
	"time"

	"github.com/spendlens/spendlens-backend/internal/domain/ledger"
)

// Detector runs recurring-charge detection over a transaction set.
type Detector struct {
	config Config
}

// NewDetector creates a detector with the given config. Invalid config
// values are individually replaced with defaults.
func NewDetector(config Config) *Detector {
	return &Detector{config: config.sanitized()}
}

// Config returns the effective (sanitized) configuration.
func (d *Detector) Config() Config {
	return d.config
}

// Detect analyzes the transactions as of the given run date and
// returns ranked recurring-charge candidates. An empty ledger or a
// window with no qualifying charges yields an empty result, not an
// error.
func (d *Detector) Detect(txs []ledger.Transaction, asOf time.Time) *Result {
	filtered := d.filterWindow(txs, asOf)
	groups := groupByMerchant(filtered)

	candidates := make([]Candidate, 0, len(groups))
	for _, g := range groups {
		a, ok := d.analyzeGroup(g)
		if !ok {
			continue
		}

		monthly := make(map[string]float64, len(g.charges))
		for _, c := range g.charges {
			monthly[c.date.Format("2006-01")] += c.amount
		}

		candidates = append(candidates, Candidate{
			Merchant:        g.merchant,
			Account:         g.account,
			Category:        g.category,
			AnnualizedSpend: annualize(a.frequency, a.avgAmount, g.charges),
			AvgAmount:       roundCents(a.avgAmount),
			Frequency:       a.frequency,
			OccurrenceCount: len(g.charges),
			Confidence:      confidenceScore(len(g.charges), a.variancePercent, a.avgDays),
			MonthlySpend:    monthly,
		})
	}

	// Highest confidence first, bigger charges breaking ties. Equal
	// confidence and amount keeps input order under the stable sort.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].AvgAmount > candidates[j].AvgAmount
	})

	var total float64
	for _, c := range candidates {
		total += c.AnnualizedSpend
	}

	return &Result{
		Candidates:      candidates,
		Count:           len(candidates),
		TotalAnnualized: roundCents(total),
	}
}

// filterWindow keeps settled transactions inside the lookback window
// that clear the minimum amount, preserving input order.
func (d *Detector) filterWindow(txs []ledger.Transaction, asOf time.Time) []ledger.Transaction {
	cutoff := asOf.AddDate(0, -d.config.MonthsToAnalyze, 0)
	return ledger.Filter(txs,
		ledger.Posted(),
		ledger.Since(cutoff),
		func(t ledger.Transaction) bool { return math.Abs(t.Amount) >= d.config.MinAmount },
	)
}
