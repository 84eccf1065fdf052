// Package config loads LevelUp settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

// Config is the root configuration struct. All values have working defaults;
// environment variables use the LEVELUP_ prefix.
type Config struct {
	DBPath      string        `envconfig:"DB_PATH"`
	SessionFile string        `envconfig:"SESSION_FILE"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"168h"`
}

// Load reads a .env file if one exists in the working directory, then fills
// the config from the environment. Unset paths default under the home dir.
func Load() (*Config, error) {
	// Missing .env is fine; only a malformed one is an error.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("levelup", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}
	if cfg.SessionFile == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(homeDir, ".levelup-session")
	}
	return &cfg, nil
}
