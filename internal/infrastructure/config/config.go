// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv("config.yaml")
//	dbPath := cfg.Storage.DatabasePath
//	detectorCfg := cfg.Detection.ToDetectorConfig()
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/spendlens/spendlens-backend/internal/domain/detector"
)

// Config represents the entire application configuration
type Config struct {
	Storage       StorageConfig       `yaml:"storage"`
	Server        ServerConfig        `yaml:"server"`
	Detection     DetectionConfig     `yaml:"detection"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// StorageConfig holds database configuration
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// ServerConfig holds HTTP API settings
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DetectionConfig holds recurring-charge detection settings.
// Out-of-range values are not an error; the engine falls back to its
// defaults field by field.
type DetectionConfig struct {
	AmountTolerance float64 `yaml:"amount_tolerance"`
	MinOccurrences  int     `yaml:"min_occurrences"`
	MonthsToAnalyze int     `yaml:"months_to_analyze"`
	MinAmount       float64 `yaml:"min_amount"`
}

// ToDetectorConfig converts detection settings into the engine config.
func (d DetectionConfig) ToDetectorConfig() detector.Config {
	return detector.Config{
		AmountTolerance: d.AmountTolerance,
		MinOccurrences:  d.MinOccurrences,
		MonthsToAnalyze: d.MonthsToAnalyze,
		MinAmount:       d.MinAmount,
	}
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${SPENDLENS_DB_PATH})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	return &Config{
		Storage: StorageConfig{
			DatabasePath: getEnv("SPENDLENS_DB_PATH", "spendlens.db"),
		},
		Server: ServerConfig{
			Port:           getEnvInt("SPENDLENS_PORT", 8080),
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Detection: DetectionConfig{
			AmountTolerance: getEnvFloat("SPENDLENS_AMOUNT_TOLERANCE", 0.05),
			MinOccurrences:  getEnvInt("SPENDLENS_MIN_OCCURRENCES", 3),
			MonthsToAnalyze: getEnvInt("SPENDLENS_MONTHS_TO_ANALYZE", 12),
			MinAmount:       getEnvFloat("SPENDLENS_MIN_AMOUNT", 5),
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
}

// LoadOrEnv tries the config file first and falls back to environment
// variables if it does not exist.
func LoadOrEnv(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return parsed
}
