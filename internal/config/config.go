// Package config loads Intercede settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration.
type Config struct {
	// APIBase is the backend address; /api/prayers is appended to it.
	APIBase string `env:"INTERCEDE_API_BASE" envDefault:"http://localhost:8000"`

	// DataDir holds the database and logs. Defaults to ~/.intercede.
	DataDir string `env:"INTERCEDE_DATA_DIR"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"INTERCEDE_LOG_LEVEL" envDefault:"info"`
}

// DBPath returns the SQLite file inside DataDir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "intercede.db")
}

// Load reads .env files (if present) and then the process environment.
// Variables already set in the environment win over .env entries.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".intercede")
	}

	return cfg, nil
}

// EnsureDataDir creates DataDir if it does not exist.
func (c Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
