package detector

import (
	"math"
	"sort"
)

// analysis is the pattern summary for a merchant group that passed
// every recurrence check.
type analysis struct {
	avgAmount       float64
	avgDays         float64
	variancePercent float64
	frequency       Frequency
}

// analyzeGroup decides whether a merchant group looks like a recurring
// charge. Returns ok=false for groups with too few occurrences, any
// amount outside tolerance, or a degenerate mean.
//
// A single out-of-tolerance charge disqualifies the whole group. That
// trades recall for simplicity; there is no outlier trimming.
func (d *Detector) analyzeGroup(g *merchantGroup) (analysis, bool) {
	if len(g.charges) < d.config.MinOccurrences {
		return analysis{}, false
	}

	// Stable sort keeps input order for same-day charges.
	sort.SliceStable(g.charges, func(i, j int) bool {
		return g.charges[i].date.Before(g.charges[j].date)
	})

	var total float64
	for _, c := range g.charges {
		total += c.amount
	}
	avgAmount := total / float64(len(g.charges))
	if avgAmount <= 0 || math.IsNaN(avgAmount) {
		return analysis{}, false
	}

	minAmount, maxAmount := g.charges[0].amount, g.charges[0].amount
	for _, c := range g.charges {
		if math.Abs(c.amount-avgAmount)/avgAmount > d.config.AmountTolerance {
			return analysis{}, false
		}
		if c.amount < minAmount {
			minAmount = c.amount
		}
		if c.amount > maxAmount {
			maxAmount = c.amount
		}
	}

	var gapTotal float64
	for i := 1; i < len(g.charges); i++ {
		gapTotal += g.charges[i].date.Sub(g.charges[i-1].date).Hours() / 24
	}
	avgDays := gapTotal / float64(len(g.charges)-1)

	return analysis{
		avgAmount:       avgAmount,
		avgDays:         avgDays,
		variancePercent: (maxAmount - minAmount) / avgAmount,
		frequency:       classifyFrequency(avgDays),
	}, true
}

// classifyFrequency buckets a mean gap into a cadence label. Bins are
// half-open with exclusive upper bounds: exactly 10 days is Bi-Weekly,
// not Weekly.
func classifyFrequency(avgDays float64) Frequency {
	switch {
	case avgDays < 10:
		return FrequencyWeekly
	case avgDays < 20:
		return FrequencyBiWeekly
	case avgDays < 35:
		return FrequencyMonthly
	case avgDays < 100:
		return FrequencyQuarterly
	case avgDays < 200:
		return FrequencySemiAnnual
	default:
		return FrequencyAnnual
	}
}
