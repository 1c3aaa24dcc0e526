package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			name                TEXT PRIMARY KEY,
			level               INTEGER NOT NULL DEFAULT 1,
			experience          INTEGER NOT NULL DEFAULT 0,
			experiments         INTEGER NOT NULL DEFAULT 0,
			discoveries         INTEGER NOT NULL DEFAULT 0,
			streak              INTEGER NOT NULL DEFAULT 0,
			play_time_seconds   BIGINT NOT NULL DEFAULT 0,
			favorite_categories JSONB NOT NULL DEFAULT '[]',
			achievements        JSONB NOT NULL DEFAULT '[]',
			updated_at          TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS experiments (
			id           TEXT PRIMARY KEY,
			profile_name TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
			description  TEXT NOT NULL DEFAULT '',
			consumables  JSONB NOT NULL DEFAULT '[]',
			results      JSONB NOT NULL DEFAULT '[]',
			score        INTEGER NOT NULL DEFAULT 0,
			success      BOOLEAN NOT NULL DEFAULT FALSE,
			created_at   TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_experiments_profile ON experiments (profile_name)`,
		`CREATE INDEX IF NOT EXISTS idx_experiments_created ON experiments (profile_name, created_at DESC)`,
	}

	for _, stmt := range ddl {
		if _, err := c.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	return nil
}
