package config

import (
	"fmt"
	"os"
	"strconv"

	"randomcheck/domain/core"
)

// Config represents the complete application configuration
type Config struct {
	Server Server
	Runs   Runs
	Engine Engine
}

// Server holds HTTP server settings
type Server struct {
	Port string
}

// Runs holds run history and report output settings
type Runs struct {
	LogPath     string // JSONL/CSV run history file
	LogFormat   string // "jsonl" or "csv"
	Retention   int    // keep at most this many history records
	ReportDir   string
	PostgresURL string // optional; enables the database-backed ledger
}

// Engine holds evaluation defaults that apply when the suite file leaves
// them unset
type Engine struct {
	Backend     string // "vector" or "scalar"
	MaxParallel int64
	MaxEntries  int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: Server{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Runs: Runs{
			LogPath:     getEnvOrDefault("RUN_LOG_PATH", "logs/run_log.jsonl"),
			LogFormat:   getEnvOrDefault("RUN_LOG_FORMAT", "jsonl"),
			Retention:   getEnvIntOrDefault("RUN_LOG_RETENTION", 100),
			ReportDir:   getEnvOrDefault("REPORT_DIR", "reports"),
			PostgresURL: os.Getenv("DATABASE_URL"),
		},
		Engine: Engine{
			Backend:     getEnvOrDefault("STAT_BACKEND", "vector"),
			MaxParallel: int64(getEnvIntOrDefault("MAX_PARALLEL_TESTS", 4)),
			MaxEntries:  getEnvIntOrDefault("MAX_ENTRIES", 100000),
		},
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Runs.LogFormat != "jsonl" && cfg.Runs.LogFormat != "csv" {
		return fmt.Errorf("%w: RUN_LOG_FORMAT must be jsonl or csv, got %q", core.ErrConfiguration, cfg.Runs.LogFormat)
	}
	if cfg.Runs.Retention < 0 {
		return fmt.Errorf("%w: RUN_LOG_RETENTION must not be negative", core.ErrConfiguration)
	}
	if cfg.Engine.Backend != "vector" && cfg.Engine.Backend != "scalar" {
		return fmt.Errorf("%w: STAT_BACKEND must be vector or scalar, got %q", core.ErrConfiguration, cfg.Engine.Backend)
	}
	if cfg.Engine.MaxEntries <= 0 {
		return fmt.Errorf("%w: MAX_ENTRIES must be positive", core.ErrConfiguration)
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return fallback
}
