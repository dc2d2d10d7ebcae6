package detector

// Frequency is the inferred repeat cadence of a recurring charge.
type Frequency string

const (
	FrequencyWeekly     Frequency = "Weekly"
	FrequencyBiWeekly   Frequency = "Bi-Weekly"
	FrequencyMonthly    Frequency = "Monthly"
	FrequencyQuarterly  Frequency = "Quarterly"
	FrequencySemiAnnual Frequency = "Semi-Annual"
	FrequencyAnnual     Frequency = "Annual"
)

// Config holds detection configuration.
type Config struct {
	AmountTolerance float64 `json:"amount_tolerance"`  // Max fractional deviation from the group mean (default: 0.05)
	MinOccurrences  int     `json:"min_occurrences"`   // Minimum charges to call a merchant recurring (default: 3)
	MonthsToAnalyze int     `json:"months_to_analyze"` // Lookback window in months (default: 12)
	MinAmount       float64 `json:"min_amount"`        // Charges below this absolute amount are ignored (default: 5)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		AmountTolerance: 0.05,
		MinOccurrences:  3,
		MonthsToAnalyze: 12,
		MinAmount:       5,
	}
}

// sanitized replaces invalid values with defaults, field by field.
// Detection never fails on bad configuration.
func (c Config) sanitized() Config {
	defaults := DefaultConfig()
	if c.AmountTolerance <= 0 || c.AmountTolerance >= 1 {
		c.AmountTolerance = defaults.AmountTolerance
	}
	if c.MinOccurrences < 1 {
		c.MinOccurrences = defaults.MinOccurrences
	}
	if c.MonthsToAnalyze < 1 {
		c.MonthsToAnalyze = defaults.MonthsToAnalyze
	}
	if c.MinAmount < 0 {
		c.MinAmount = defaults.MinAmount
	}
	return c
}

// Candidate is one detected recurring charge.
type Candidate struct {
	Merchant        string             `json:"merchant"`
	Account         string             `json:"account"`
	Category        string             `json:"category"`
	AnnualizedSpend float64            `json:"annualized_spend"`
	AvgAmount       float64            `json:"avg_amount"`
	Frequency       Frequency          `json:"frequency"`
	OccurrenceCount int                `json:"occurrence_count"`
	Confidence      int                `json:"confidence"`
	MonthlySpend    map[string]float64 `json:"monthly_spend"` // "YYYY-MM" -> summed absolute amount
}

// Result is the full output of one detection run.
type Result struct {
	Candidates      []Candidate `json:"candidates"`
	Count           int         `json:"count"`
	TotalAnnualized float64     `json:"total_annualized"`
}
