package config_test

import (
	"testing"

	"estoque/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_DSN", "TEMPLATES_DIR", "STATIC_DIR", "SEED_DEMO", "RATE_LIMIT"} {
		t.Setenv(k, "")
	}
	cfg := config.Load()
	if cfg.Port != "8080" || cfg.DBDriver != "sqlite" || cfg.DBDSN != "estoque.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TemplatesDir != "./web/templates" || cfg.RateLimit != 60 || cfg.SeedDemo {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DB_DSN", "postgres://u:p@localhost/estoque")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("LOG_FILE", "")

	cfg := config.Load()
	if cfg.Port != "9090" || cfg.DBDriver != "pgx" || !cfg.SeedDemo || cfg.RateLimit != 5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogFile != "" {
		t.Fatalf("explicit empty LOG_FILE should disable the file sink, got %q", cfg.LogFile)
	}
}

func TestLoadBadNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("SEED_DEMO", "maybe")
	cfg := config.Load()
	if cfg.RateLimit != 60 || cfg.SeedDemo {
		t.Fatalf("bad values should fall back: %+v", cfg)
	}
}
