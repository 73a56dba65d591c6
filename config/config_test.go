package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.App.Port)
	}
	if cfg.DB.Name != "clinic_records" {
		t.Errorf("expected default db name, got %q", cfg.DB.Name)
	}
	if !cfg.DB.Migrate {
		t.Error("expected migrations enabled by default")
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis disabled by default")
	}
	if cfg.JWT.AccessExpiry != time.Hour {
		t.Errorf("expected 1h access expiry, got %v", cfg.JWT.AccessExpiry)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("JWT_ACCESS_EXPIRY", "15m")
	t.Setenv("LOGIN_RATE_BURST", "3")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "8081" {
		t.Errorf("expected port 8081, got %q", cfg.App.Port)
	}
	if cfg.DB.Host != "db.internal" {
		t.Errorf("expected db host from env, got %q", cfg.DB.Host)
	}
	if !cfg.Redis.Enabled {
		t.Error("expected redis enabled")
	}
	if cfg.JWT.AccessExpiry != 15*time.Minute {
		t.Errorf("expected 15m, got %v", cfg.JWT.AccessExpiry)
	}
	if cfg.RateLimit.LoginBurst != 3 {
		t.Errorf("expected burst 3, got %d", cfg.RateLimit.LoginBurst)
	}
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestDBConfigURLs(t *testing.T) {
	c := DBConfig{Host: "h", Port: "5432", User: "u", Password: "p@ss", Name: "clinic", SSLMode: "disable"}

	if got := c.MigrateURL(); got != "pgx5://u:p%40ss@h:5432/clinic?sslmode=disable" {
		t.Errorf("unexpected migrate url %q", got)
	}
	if dsn := c.DSN(); !strings.Contains(dsn, "dbname=clinic") || !strings.Contains(dsn, "sslmode=disable") {
		t.Errorf("unexpected dsn %q", dsn)
	}
}
