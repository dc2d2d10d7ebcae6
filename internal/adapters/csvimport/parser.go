// Package csvimport parses bank-export CSV files into ledger
// transactions. Exports differ in header naming and date format, so
// the parser maps headers case-insensitively and tries a few common
// date layouts. Rows that cannot be parsed are skipped and counted,
// not fatal.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spendlens/spendlens-backend/internal/domain/ledger"
)

// Result holds the outcome of one import.
type Result struct {
	Transactions []ledger.Transaction
	SkippedRows  int
}

// header aliases seen across bank exports
var columnAliases = map[string]string{
	"date":             "date",
	"transaction date": "date",
	"posted date":      "date",
	"amount":           "amount",
	"merchant":         "merchant",
	"description":      "merchant",
	"payee":            "merchant",
	"name":             "merchant",
	"category":         "category",
	"account":          "account",
	"account name":     "account",
	"pending":          "pending",
	"status":           "pending",
}

var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
}

// Parse reads a CSV export and returns the transactions it contains.
// The first row must be a header naming at least date, amount, and a
// merchant/description column.
func Parse(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := mapColumns(header)
	for _, required := range []string{"date", "amount", "merchant"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing a %s column", required)
		}
	}

	result := &Result{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.SkippedRows++
			continue
		}

		tx, ok := parseRow(row, columns)
		if !ok {
			result.SkippedRows++
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	return result, nil
}

func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for i, name := range header {
		canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, taken := columns[canonical]; !taken {
			columns[canonical] = i
		}
	}
	return columns
}

func parseRow(row []string, columns map[string]int) (ledger.Transaction, bool) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date, ok := parseDate(field("date"))
	if !ok {
		return ledger.Transaction{}, false
	}

	// Missing or malformed amounts become zero; the detection filter
	// drops them via its minimum-amount check
	amount, _ := parseAmount(field("amount"))

	return ledger.Transaction{
		Date:     date,
		Amount:   amount,
		Merchant: field("merchant"),
		Category: field("category"),
		Account:  field("account"),
		Pending:  parsePending(field("pending")),
	}, true
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseAmount(s string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if cleaned == "" {
		return 0, false
	}
	// Accounting exports write negatives as (12.34)
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		cleaned = "-" + strings.Trim(cleaned, "()")
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

func parsePending(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "pending":
		return true
	default:
		return false
	}
}
