package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS progress (
			key TEXT PRIMARY KEY,
			total_xp INTEGER NOT NULL DEFAULT 0,
			total_credits INTEGER NOT NULL DEFAULT 0
		);`,
		// UNIQUE(card_id) backs the at-most-once reward guarantee at the
		// storage level; the engine checks first and treats a duplicate as
		// a no-op.
		`CREATE TABLE IF NOT EXISTS discoveries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			card_id TEXT NOT NULL UNIQUE,
			discovered_at DATETIME NOT NULL,
			location TEXT NOT NULL
		);`,
		// Trigger-rule counters: games played, total score, last play date,
		// streak, play seconds, per-genre wins. Values are stored as text;
		// unparsable values read back as zero.
		`CREATE TABLE IF NOT EXISTS counters (
			name TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game TEXT NOT NULL,
			score INTEGER NOT NULL,
			recorded_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_high_scores_game_score ON high_scores(game, score DESC);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
