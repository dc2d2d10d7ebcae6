package cli

import (
	"flag"

	"github.com/spendlens/spendlens-backend/internal/domain/detector"
)

// DetectFlags are the flags for the one-shot detect command
type DetectFlags struct {
	ConfigPath     string
	CSVPath        string
	Tolerance      float64
	MinOccurrences int
	Months         int
	MinAmount      float64
	Verbose        bool
}

// ParseDetectFlags parses detect command flags from the command line
func ParseDetectFlags() DetectFlags {
	var flags DetectFlags
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&flags.CSVPath, "csv", "", "Detect over a CSV export instead of the stored ledger")
	flag.Float64Var(&flags.Tolerance, "tolerance", 0.05, "Max fractional amount deviation within a group")
	flag.IntVar(&flags.MinOccurrences, "min-occurrences", 3, "Minimum charges to call a merchant recurring")
	flag.IntVar(&flags.Months, "months", 12, "Lookback window in months")
	flag.Float64Var(&flags.MinAmount, "min-amount", 5, "Ignore charges below this absolute amount")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// ToDetectorConfig converts DetectFlags to the engine config
func (f DetectFlags) ToDetectorConfig() detector.Config {
	return detector.Config{
		AmountTolerance: f.Tolerance,
		MinOccurrences:  f.MinOccurrences,
		MonthsToAnalyze: f.Months,
		MinAmount:       f.MinAmount,
	}
}
