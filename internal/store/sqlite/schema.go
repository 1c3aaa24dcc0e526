package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS profiles (
		name                TEXT PRIMARY KEY,
		level               INTEGER NOT NULL DEFAULT 1,
		experience          INTEGER NOT NULL DEFAULT 0,
		experiments         INTEGER NOT NULL DEFAULT 0,
		discoveries         INTEGER NOT NULL DEFAULT 0,
		streak              INTEGER NOT NULL DEFAULT 0,
		play_time_seconds   INTEGER NOT NULL DEFAULT 0,
		favorite_categories TEXT DEFAULT '[]',
		achievements        TEXT DEFAULT '[]',
		updated_at          TEXT DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS experiments (
		id           TEXT PRIMARY KEY,
		profile_name TEXT NOT NULL REFERENCES profiles(name) ON DELETE CASCADE,
		description  TEXT DEFAULT '',
		consumables  TEXT NOT NULL DEFAULT '[]',
		results      TEXT NOT NULL DEFAULT '[]',
		score        INTEGER NOT NULL DEFAULT 0,
		success      INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_experiments_profile ON experiments (profile_name);
	CREATE INDEX IF NOT EXISTS idx_experiments_created ON experiments (profile_name, created_at);
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}

	return statements
}
