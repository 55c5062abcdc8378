package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDriver     string
	DBDSN        string
	TemplatesDir string
	StaticDir    string
	LogFile      string
	SeedDemo     bool
	RateLimit    int // requests per minute per client
}

func Load() Config {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := Config{
		Port:         env("PORT", "8080"),
		DBDriver:     env("DB_DRIVER", "sqlite"),
		DBDSN:        env("DB_DSN", "estoque.db"), // sqlite file in project root
		TemplatesDir: env("TEMPLATES_DIR", "./web/templates"),
		StaticDir:    env("STATIC_DIR", "./web/static"),
		LogFile:      os.Getenv("LOG_FILE"),
	}
	if _, set := os.LookupEnv("LOG_FILE"); !set {
		cfg.LogFile = "./estoque.log"
	}
	cfg.RateLimit = 60
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RateLimit = n
		} else {
			log.Printf("[warn] RATE_LIMIT=%q is not a positive integer, using %d", v, cfg.RateLimit)
		}
	}
	if v := os.Getenv("SEED_DEMO"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("[warn] SEED_DEMO=%q is not a boolean, ignoring", v)
		}
		cfg.SeedDemo = b
	}

	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_DSN=%s TEMPLATES_DIR=%s LOG_FILE=%s SEED_DEMO=%t RATE_LIMIT=%d",
		cfg.Port, cfg.DBDriver, redactDSN(cfg.DBDriver, cfg.DBDSN), cfg.TemplatesDir, cfg.LogFile, cfg.SeedDemo, cfg.RateLimit)
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// redactDSN keeps postgres credentials out of the log.
func redactDSN(driver, dsn string) string {
	if driver == "sqlite" {
		return dsn
	}
	return "<redacted>"
}
