package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config is everything the process needs before serving traffic. Values
// come from an optional YAML file with environment variables layered on
// top, so deploys can override a checked-in file without editing it.
type Config struct {
	DatabaseURL    string   `yaml:"database_url"`
	Port           string   `yaml:"port"`
	CSVPath        string   `yaml:"csv_path"`
	BatchSize      int      `yaml:"batch_size"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// Load reads path if it exists, then applies env overrides and validates.
//
// Environment variables:
//   - DATABASE_URL: Postgres DSN (required)
//   - PORT: listen port (default 5050)
//   - WIFI_CSV: path to the bulk export (default puntos_wifi_cdmx.csv)
//   - WIFI_BATCH_SIZE: rows per insert transaction (default 500)
//   - WIFI_ALLOWED_ORIGINS: comma-separated CORS allow-list
func Load(path string) (Config, error) {
	cfg := Config{
		Port:      "5050",
		CSVPath:   "puntos_wifi_cdmx.csv",
		BatchSize: 500,
	}

	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("WIFI_CSV"); v != "" {
		cfg.CSVPath = v
	}
	if v := os.Getenv("WIFI_BATCH_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("WIFI_BATCH_SIZE must be an integer, got %q", v)
		}
		cfg.BatchSize = n
	}
	if v := os.Getenv("WIFI_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can actually run a process.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	return nil
}
