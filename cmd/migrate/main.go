// Command migrate applies the embedded goose migrations: migrate [up|down|status].
package main

import (
	"context"
	"log/slog"
	"os"

	"mediahub/config"
	logs "mediahub/internal/infra/log"
	"mediahub/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	command := migrations.CommandUp
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if err := run(context.Background(), command); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if cfg.Postgres == nil {
		return errors.New("postgres is not configured")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return migrations.Run(ctx, logger, sqlDB, command)
}
