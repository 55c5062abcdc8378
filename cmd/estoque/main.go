package main

import (
	"context"
	"io"
	"log"
	"os"

	"estoque/internal/config"
	"estoque/internal/http/handlers"
	applog "estoque/internal/log"
	"estoque/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		applog.Startup("db.open", err, map[string]any{"driver": cfg.DBDriver})
		os.Exit(1)
	}
	defer db.Close()

	if cfg.SeedDemo {
		if err := repos.SeedDemo(context.Background(), db); err != nil {
			applog.Startup("db.seed", err, nil)
		}
	}

	app := handlers.NewApp(cfg, handlers.NewDeps(db))

	applog.Startup("server.listen", nil, map[string]any{"port": cfg.Port})
	if err := app.Listen(":" + cfg.Port); err != nil {
		applog.Startup("server.listen", err, nil)
	}
}
