package database

import (
	"fmt"
	"time"

	"github.com/helloauto/dispatch/internal/pkg/models"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
)

// NewPostgresDB opens a sqlx connection pool over the pgx stdlib driver
func NewPostgresDB(config models.DatabaseConfig) (*sqlx.DB, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	db, err := sqlx.Connect("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}

// EnsureSchema creates the tables the service needs if they do not
// exist yet. Safe to run on every startup.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS stands (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		geohash TEXT NOT NULL,
		creator_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_stands_geohash ON stands (geohash);
	CREATE INDEX IF NOT EXISTS idx_stands_name ON stands (lower(name));

	CREATE TABLE IF NOT EXISTS stand_members (
		stand_id UUID NOT NULL REFERENCES stands (id) ON DELETE CASCADE,
		driver_id UUID NOT NULL,
		joined_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (stand_id, driver_id)
	);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_stand_members_driver ON stand_members (driver_id);

	CREATE TABLE IF NOT EXISTS rides (
		ride_id UUID PRIMARY KEY,
		rider_id UUID NOT NULL,
		driver_id UUID NOT NULL,
		stand_id UUID NOT NULL,
		status TEXT NOT NULL,
		pickup_latitude DOUBLE PRECISION NOT NULL,
		pickup_longitude DOUBLE PRECISION NOT NULL,
		dropoff_latitude DOUBLE PRECISION NOT NULL,
		dropoff_longitude DOUBLE PRECISION NOT NULL,
		fare DOUBLE PRECISION NOT NULL DEFAULT 0,
		started_at TIMESTAMPTZ,
		started_latitude DOUBLE PRECISION,
		started_longitude DOUBLE PRECISION,
		ended_at TIMESTAMPTZ,
		ended_latitude DOUBLE PRECISION,
		ended_longitude DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_rides_rider ON rides (rider_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_rides_driver ON rides (driver_id, created_at DESC);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
