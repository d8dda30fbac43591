// Package migrations embeds the goose SQL migrations for the mediahub schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"mediahub/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Commands accepted by Run.
const (
	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
)

// Run executes command against db with the embedded migrations and logs each step.
func Run(ctx context.Context, logger *slog.Logger, db *sql.DB, command string) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return errors.Wrap(err, "create goose provider")
	}

	switch command {
	case CommandUp:
		results, err := provider.Up(ctx)
		logResults(ctx, logger, results)

		return errors.Wrap(err, "goose up")
	case CommandDown:
		result, err := provider.Down(ctx)
		if result != nil {
			logResults(ctx, logger, []*goose.MigrationResult{result})
		}

		return errors.Wrap(err, "goose down")
	case CommandStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return errors.Wrap(err, "goose status")
		}
		for _, s := range statuses {
			logger.InfoContext(ctx, "Migration status",
				slog.Int64("version", s.Source.Version),
				slog.String("file", s.Source.Path),
				slog.String("state", string(s.State)),
			)
		}

		return nil
	default:
		return errors.Errorf("unknown migration command %q", command)
	}
}

func logResults(ctx context.Context, logger *slog.Logger, results []*goose.MigrationResult) {
	for _, r := range results {
		logger.InfoContext(ctx, "Migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("direction", r.Direction),
			slog.Duration("duration", r.Duration),
		)
	}
}
