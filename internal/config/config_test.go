package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdmx-opendata/wifi-points-api/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "PORT", "WIFI_CSV", "WIFI_BATCH_SIZE", "WIFI_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_DefaultsWithEnvOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/wifi")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "5050" || cfg.CSVPath != "puntos_wifi_cdmx.csv" || cfg.BatchSize != 500 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoad_MissingDatabaseURLFails(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, config.ErrMissingDatabaseURL) {
		t.Errorf("expected ErrMissingDatabaseURL, got %v", err)
	}
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "wifi.yaml")
	content := `
database_url: postgres://file/wifi
port: "6000"
batch_size: 250
allowed_origins:
  - http://localhost:5173
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "7000")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabaseURL != "postgres://file/wifi" {
		t.Errorf("expected DSN from file, got %q", cfg.DatabaseURL)
	}
	if cfg.Port != "7000" {
		t.Errorf("env should override file port, got %q", cfg.Port)
	}
	if cfg.BatchSize != 250 {
		t.Errorf("expected batch size from file, got %d", cfg.BatchSize)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoad_BadBatchSizeFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/wifi")

	t.Setenv("WIFI_BATCH_SIZE", "lots")
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for non-numeric batch size")
	}

	t.Setenv("WIFI_BATCH_SIZE", "0")
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for zero batch size")
	}
}

func TestLoad_SplitsOriginList(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/wifi")
	t.Setenv("WIFI_ALLOWED_ORIGINS", "http://localhost:5173, https://wifi.cdmx.gob.mx")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"http://localhost:5173", "https://wifi.cdmx.gob.mx"}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != want[0] || cfg.AllowedOrigins[1] != want[1] {
		t.Errorf("expected %v, got %v", want, cfg.AllowedOrigins)
	}
}
