package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ParsesYAML(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
storage:
  database_path: /tmp/test.db
server:
  port: 9090
detection:
  amount_tolerance: 0.1
  min_occurrences: 2
  months_to_analyze: 6
  min_amount: 10
observability:
  logging:
    level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	// Act
	cfg, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 0.1, cfg.Detection.AmountTolerance)
	assert.Equal(t, 2, cfg.Detection.MinOccurrences)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	t.Setenv("SPENDLENS_TEST_DB", "/data/ledger.db")
	content := "storage:\n  database_path: ${SPENDLENS_TEST_DB}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/data/ledger.db", cfg.Storage.DatabasePath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, "spendlens.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.05, cfg.Detection.AmountTolerance)
	assert.Equal(t, 3, cfg.Detection.MinOccurrences)
	assert.Equal(t, 12, cfg.Detection.MonthsToAnalyze)
	assert.Equal(t, 5.0, cfg.Detection.MinAmount)
}

func TestLoadFromEnv_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SPENDLENS_MIN_OCCURRENCES", "not-a-number")
	t.Setenv("SPENDLENS_AMOUNT_TOLERANCE", "garbage")

	cfg := LoadFromEnv()

	assert.Equal(t, 3, cfg.Detection.MinOccurrences)
	assert.Equal(t, 0.05, cfg.Detection.AmountTolerance)
}

func TestLoadOrEnv_FallsBackWhenFileMissing(t *testing.T) {
	cfg := LoadOrEnv(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, cfg)
	assert.Equal(t, 3, cfg.Detection.MinOccurrences)
}
