package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	appDir           = ".quant"
	defaultNamespace = "quantified-life"
)

// Config holds paths and settings for a quant run
type Config struct {
	Home      string // QUANT_HOME
	DBPath    string // QUANT_DB_PATH
	Namespace string // QUANT_NAMESPACE
	ExportDir string // QUANT_EXPORT_DIR
	LogFile   string // QUANT_LOG_FILE
	LogLevel  slog.Level
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	// A missing .env is fine, a broken one is not
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from QUANT_* variables, defaulting under ~/.quant
func FromEnv() (*Config, error) {
	home := os.Getenv("QUANT_HOME")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		home = filepath.Join(userHome, appDir)
	}

	level, err := parseLevel(os.Getenv("QUANT_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Home:      home,
		DBPath:    getenv("QUANT_DB_PATH", filepath.Join(home, "quant.db")),
		Namespace: getenv("QUANT_NAMESPACE", defaultNamespace),
		ExportDir: getenv("QUANT_EXPORT_DIR", filepath.Join(home, "exports")),
		LogFile:   getenv("QUANT_LOG_FILE", filepath.Join(home, "quant.log")),
		LogLevel:  level,
	}, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseLevel accepts debug|info|warn|error, empty means info
func parseLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid QUANT_LOG_LEVEL %q. Use: debug, info, warn or error", s)
	}
	return level, nil
}
