package remote

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate brings the remote schema up to date. Postgres runs the embedded
// migrations; the SQL drivers create their tables when opened.
func Migrate(ctx context.Context, cfg Config) error {
	if !cfg.Configured() {
		return ErrNotConfigured
	}
	cfg = cfg.withDefaults()
	if cfg.Driver != "postgres" {
		s, err := Open(ctx, cfg)
		if err != nil {
			return err
		}
		return s.Close()
	}
	return migratePostgres(ctx, cfg.DSN)
}

func migratePostgres(ctx context.Context, dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("remote: init iofs: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("remote: open sql db: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("remote: ping: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("remote: init db driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx", driver)
	if err != nil {
		return fmt.Errorf("remote: init migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("remote: migrate up: %w", err)
	}
	return nil
}
