package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"erogram-ads/db/migrations"
)

// ErrDirtySchema is returned when a previous migration failed half way.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate brings the schema at addr to migrations.Version. It refuses to
// touch a dirty schema and never migrates down from a newer version.
func Migrate(addr string, logger *slog.Logger) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	}
	if current >= migrations.Version {
		logger.Info("schema up to date", slog.Uint64("version", uint64(current)))
		return nil
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %d -> %d: %w", current, migrations.Version, err)
	}
	logger.Info("schema migrated",
		slog.Uint64("from", uint64(current)),
		slog.Uint64("to", uint64(migrations.Version)))
	return nil
}
