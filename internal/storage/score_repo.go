package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ScoreRepo keeps the local per-game leaderboard.
type ScoreRepo struct {
	db *sql.DB
}

func NewScoreRepo(db *sql.DB) *ScoreRepo {
	return &ScoreRepo{db: db}
}

func (r *ScoreRepo) Insert(ctx context.Context, game string, score int, at time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO high_scores (game, score, recorded_at) VALUES (?, ?, ?)`,
		game, score, at.UTC())
	if err != nil {
		return 0, fmt.Errorf("high score insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("high score id: %w", err)
	}
	return id, nil
}

// Best returns the current top score for a game. ok is false when the game
// has no entries yet.
func (r *ScoreRepo) Best(ctx context.Context, game string) (best int, ok bool, err error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT score FROM high_scores WHERE game = ? ORDER BY score DESC, id ASC LIMIT 1`, game)
	if err := row.Scan(&best); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("high score best: %w", err)
	}
	return best, true, nil
}

// Top returns the highest n entries for a game, best first.
func (r *ScoreRepo) Top(ctx context.Context, game string, n int) ([]HighScore, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, game, score, recorded_at FROM high_scores
		 WHERE game = ? ORDER BY score DESC, id ASC LIMIT ?`, game, n)
	if err != nil {
		return nil, fmt.Errorf("high score top: %w", err)
	}
	defer rows.Close()

	var out []HighScore
	for rows.Next() {
		var h HighScore
		if err := rows.Scan(&h.ID, &h.Game, &h.Score, &h.RecordedAt); err != nil {
			return nil, fmt.Errorf("high score scan: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("high score rows: %w", err)
	}
	return out, nil
}

// Games returns the distinct game names with at least one recorded score.
func (r *ScoreRepo) Games(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT game FROM high_scores ORDER BY game`)
	if err != nil {
		return nil, fmt.Errorf("high score games: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("high score games scan: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("high score games rows: %w", err)
	}
	return out, nil
}
