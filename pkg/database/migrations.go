package database

import (
	"context"
	"fmt"
)

// InitSchema creates the tables if they do not exist yet. Screening
// reservations are embedded as JSONB; the version column backs the
// conditional reservation updates.
func InitSchema(ctx context.Context, db PgxIface) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS movies (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			director TEXT NOT NULL,
			release_year INT NOT NULL,
			release_country TEXT NOT NULL,
			duration INT NOT NULL CHECK (duration > 0),
			age_restriction INT,
			cast_members TEXT[] NOT NULL DEFAULT '{}',
			genres TEXT[] NOT NULL DEFAULT '{}',
			description TEXT NOT NULL,
			poster_url TEXT,
			poster_asset_id TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			number_of_seats INT NOT NULL CHECK (number_of_seats BETWEEN 1 AND 200),
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS tickets (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS screenings (
			id UUID PRIMARY KEY,
			date TIMESTAMPTZ NOT NULL,
			advertisements_duration INT NOT NULL,
			movie_id UUID NOT NULL REFERENCES movies(id),
			room_id UUID NOT NULL REFERENCES rooms(id),
			reservations JSONB NOT NULL DEFAULT '[]',
			version BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_screenings_room_id ON screenings(room_id)`,
		`CREATE INDEX IF NOT EXISTS idx_screenings_movie_id ON screenings(movie_id)`,
		`CREATE INDEX IF NOT EXISTS idx_screenings_date ON screenings(date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}
