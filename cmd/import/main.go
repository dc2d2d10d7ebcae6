package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spendlens/spendlens-backend/internal/adapters/csvimport"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/config"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/logging"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/storage"
)

func main() {
	var (
		configFile = flag.String("config", "config.yaml", "Configuration file path")
		csvPath    = flag.String("csv", "", "CSV export to import (required)")
	)
	flag.Parse()

	cfg := config.LoadOrEnv(*configFile)
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "import")

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "usage: import -csv <file> [-config <file>]")
		os.Exit(2)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		logger.Error("failed to open CSV file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	parsed, err := csvimport.Parse(f)
	if err != nil {
		logger.Error("failed to parse CSV file", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open ledger database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	inserted, err := store.SaveTransactions(parsed.Transactions)
	if err != nil {
		logger.Error("failed to save transactions", "error", err)
		os.Exit(1)
	}

	logger.Info("import complete",
		"file", *csvPath,
		"parsed", len(parsed.Transactions),
		"inserted", inserted,
		"duplicates", len(parsed.Transactions)-inserted,
		"skipped_rows", parsed.SkippedRows,
	)
}
