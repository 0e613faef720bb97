package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"offerfeed/config"
	logs "offerfeed/internal/infra/log"
	"offerfeed/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up|down|status|version|redo|reset")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.New()
	requireResource("config", err)

	logger, err := logs.New(logs.Params{Config: cfg})
	requireResource("logger", err)
	logger = logger.With(slog.String("cmd", *cmd))

	if cfg.UsesMemoryStorage() || cfg.Postgres == nil {
		logger.Error("Migrations require the postgres storage driver")
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	requireResource("database", err)

	sqlDB, err := db.DB()
	requireResource("sql database", err)
	defer sqlDB.Close()

	logger.Info("Running migrations")
	if err := migrations.Run(ctx, sqlDB, *cmd, flag.Args()...); err != nil {
		logger.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Migrations finished")
}

func requireResource(resource string, err error) {
	if err == nil {
		return
	}
	slog.Error("Resource not available", slog.String("resource", resource), slog.Any("error", err))
	os.Exit(1)
}
