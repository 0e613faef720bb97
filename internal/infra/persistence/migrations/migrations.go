// Package migrations embeds the PostgreSQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"offerfeed/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var FS embed.FS

const dir = "sql"

// Run executes a goose command (up, down, status, version, redo, reset) against db.
func Run(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if db == nil {
		return errors.New("db is required")
	}

	if err := setup(); err != nil {
		return err
	}

	return errors.Wrapf(goose.RunContext(ctx, command, db, dir, args...), "goose %s", command)
}

// Collect lists the embedded migrations in version order.
func Collect() (goose.Migrations, error) {
	if err := setup(); err != nil {
		return nil, err
	}

	migrations, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	if err != nil {
		return nil, errors.Wrap(err, "collect migrations")
	}

	return migrations, nil
}

func setup() error {
	goose.SetBaseFS(FS)

	return errors.Wrap(goose.SetDialect("postgres"), "set goose dialect")
}
