package detector

import "math"

// confidenceScore produces the 0-100 quality score for a candidate.
//
// Base 50 plus capped bonuses for occurrence count and amount
// consistency. The monthly/weekly cadence bonuses check raw avgDays
// and are independent of the buckets in classifyFrequency (see
// DESIGN.md).
func confidenceScore(occurrences int, variancePercent, avgDays float64) int {
	score := 50.0

	score += math.Min(float64(occurrences)*10, 30)
	score += (1 - math.Min(variancePercent, 1)) * 10

	if avgDays >= 25 && avgDays <= 35 {
		score += 10
	}
	if avgDays >= 6 && avgDays <= 8 {
		score += 10
	}

	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
