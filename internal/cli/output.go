package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spendlens/spendlens-backend/internal/domain/detector"
)

// PrintHeader prints the application header
func PrintHeader(source string) {
	fmt.Printf("spendlens: recurring charges (%s)\n\n", source)
}

// PrintResult prints the detection result as a ranked table
func PrintResult(result *detector.Result, verbose bool) {
	if result.Count == 0 {
		fmt.Println("No recurring charges detected.")
		return
	}

	fmt.Printf("%-30s %-11s %10s %12s %6s %6s\n",
		"MERCHANT", "FREQUENCY", "AVG", "ANNUALIZED", "COUNT", "CONF")
	fmt.Println(strings.Repeat("-", 80))

	for _, c := range result.Candidates {
		fmt.Printf("%-30s %-11s %10.2f %12.2f %6d %5d%%\n",
			truncate(c.Merchant, 30),
			c.Frequency,
			c.AvgAmount,
			c.AnnualizedSpend,
			c.OccurrenceCount,
			c.Confidence)

		if verbose {
			printMonthly(c.MonthlySpend)
		}
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Total: %d recurring charge(s), $%.2f/year\n", result.Count, result.TotalAnnualized)
}

// printMonthly prints the month-by-month breakdown, oldest first
func printMonthly(monthly map[string]float64) {
	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)

	for _, m := range months {
		fmt.Printf("    %s  %10.2f\n", m, monthly[m])
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
