package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spendlens/spendlens-backend/internal/adapters/csvimport"
	"github.com/spendlens/spendlens-backend/internal/application/service"
	"github.com/spendlens/spendlens-backend/internal/cli"
	"github.com/spendlens/spendlens-backend/internal/domain/detector"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/config"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/logging"
	"github.com/spendlens/spendlens-backend/internal/infrastructure/storage"
)

func main() {
	flags := cli.ParseDetectFlags()

	cfg := config.LoadOrEnv(flags.ConfigPath)
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "detect")

	if flags.CSVPath != "" {
		runOverCSV(flags, logger)
		return
	}

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open ledger database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	detection, err := service.NewDetectionService(store, logger)
	if err != nil {
		logger.Error("failed to initialize detection service", "error", err)
		os.Exit(1)
	}

	result, err := detection.Detect(flags.ToDetectorConfig(), time.Now().UTC())
	if err != nil {
		logger.Error("detection failed", "error", err)
		os.Exit(1)
	}

	cli.PrintHeader(cfg.Storage.DatabasePath)
	cli.PrintResult(result, flags.Verbose)
}

// runOverCSV detects directly over a CSV export without touching the
// stored ledger.
func runOverCSV(flags cli.DetectFlags, logger *slog.Logger) {
	f, err := os.Open(flags.CSVPath)
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
	if parsed.SkippedRows > 0 {
		logger.Info("skipped unparseable rows", "count", parsed.SkippedRows)
	}

	d := detector.NewDetector(flags.ToDetectorConfig())
	result := d.Detect(parsed.Transactions, time.Now().UTC())

	cli.PrintHeader(flags.CSVPath)
	cli.PrintResult(result, flags.Verbose)
}
