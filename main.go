package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"moneymap/internal/config"
	"moneymap/internal/database"
	"moneymap/internal/logging"
	"moneymap/internal/router"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		slog.Error("create data dir", "error", err)
		os.Exit(1)
	}
	if err := ensureDir(cfg.Backup.Dir); err != nil {
		slog.Error("create backup dir", "error", err)
		os.Exit(1)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		slog.Error("init database", "error", err)
		os.Exit(1)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		slog.Error("migrate database", "error", err)
		os.Exit(1)
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	slog.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("run server", "error", err)
		os.Exit(1)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
