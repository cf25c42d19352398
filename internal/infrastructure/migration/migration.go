package migration

import (
	"context"

	"cv-amplify/internal/logger"

	"github.com/jackc/pgconn"
)

// Execer is satisfied by *pgxpool.Pool.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

// Migration is one idempotent schema step.
type Migration struct {
	Name string
	Up   func(ctx context.Context, db Execer) error
}

// Migrations lists the schema steps in the order they run.
var Migrations = []Migration{
	{Name: "create_generation_events", Up: createGenerationEvents},
	{Name: "index_generation_events_created_at", Up: indexGenerationEventsCreatedAt},
}

// RunMigrations executes all migrations on startup. The first failure stops
// the run.
func RunMigrations(ctx context.Context, db Execer) error {
	log := logger.Component("migration")
	log.Info().Int("count", len(Migrations)).Msg("starting database migrations")

	for _, m := range Migrations {
		if err := m.Up(ctx, db); err != nil {
			log.Error().Err(err).Str("name", m.Name).Msg("migration failed")
			return err
		}
		log.Info().Str("name", m.Name).Msg("migration completed")
	}

	log.Info().Msg("all migrations completed")
	return nil
}

func createGenerationEvents(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS generation_events (
			id UUID PRIMARY KEY,
			user_id UUID NULL,
			tone TEXT NOT NULL,
			focus TEXT NOT NULL,
			highlight TEXT NOT NULL,
			status TEXT NOT NULL,
			duration_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func indexGenerationEventsCreatedAt(ctx context.Context, db Execer) error {
	_, err := db.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS generation_events_created_at_idx
		ON generation_events (created_at DESC);
	`)
	return err
}
