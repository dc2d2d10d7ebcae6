package detector

import "math"

// annualOccurrences maps each cadence to its charges per year. The
// table is authoritative: annualized spend always comes from the
// assigned frequency label, never recomputed from raw day gaps, so the
// displayed cadence and the yearly number stay consistent.
var annualOccurrences = map[Frequency]float64{
	FrequencyWeekly:     52,
	FrequencyBiWeekly:   26,
	FrequencyMonthly:    12,
	FrequencyQuarterly:  4,
	FrequencySemiAnnual: 2,
	FrequencyAnnual:     1,
}

// annualize projects the per-charge average to a yearly cost estimate.
// If the frequency is ever unrecognized it extrapolates from observed
// spend per active month instead; classifyFrequency always assigns a
// known label, so that path is a safety net only.
func annualize(frequency Frequency, avgAmount float64, charges []charge) float64 {
	if mult, ok := annualOccurrences[frequency]; ok {
		return roundCents(avgAmount * mult)
	}

	months := make(map[string]bool)
	var total float64
	for _, c := range charges {
		months[c.date.Format("2006-01")] = true
		total += c.amount
	}
	if len(months) == 0 {
		return 0
	}
	return roundCents(total / float64(len(months)) * 12)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
