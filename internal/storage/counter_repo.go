package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
)

// Counter names used by the trigger rules.
const (
	CounterGamesPlayed   = "games_played"
	CounterTotalScore    = "total_score"
	CounterLastPlayDate  = "last_play_date"
	CounterStreak        = "streak"
	CounterPlaySeconds   = "play_seconds"
	CounterTriviaCorrect = "trivia_correct"

	// Per-game and per-genre counters use these prefixes.
	PrefixPlayedGame = "played:"
	PrefixGenreWins  = "genre:"
)

// CounterRepo stores the scalar counters backing the trigger rules. A
// missing or unparsable value reads back as the zero value; corruption is
// never an error here.
type CounterRepo struct {
	db *sql.DB
}

func NewCounterRepo(db *sql.DB) *CounterRepo {
	return &CounterRepo{db: db}
}

func (r *CounterRepo) GetString(ctx context.Context, name string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM counters WHERE name = ?`, name)
	var v string
	if err := row.Scan(&v); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("counter get %q: %w", name, err)
	}
	return v, nil
}

func (r *CounterRepo) SetString(ctx context.Context, name, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO counters (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		name, value)
	if err != nil {
		return fmt.Errorf("counter set %q: %w", name, err)
	}
	return nil
}

func (r *CounterRepo) GetInt(ctx context.Context, name string) (int, error) {
	s, err := r.GetString(ctx, name)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Corrupt value: start fresh rather than fail.
		return 0, nil
	}
	return n, nil
}

func (r *CounterRepo) SetInt(ctx context.Context, name string, value int) error {
	return r.SetString(ctx, name, strconv.Itoa(value))
}

// AddInt increments a counter and returns the new value.
func (r *CounterRepo) AddInt(ctx context.Context, name string, delta int) (int, error) {
	cur, err := r.GetInt(ctx, name)
	if err != nil {
		return 0, err
	}
	next := cur + delta
	if err := r.SetInt(ctx, name, next); err != nil {
		return 0, err
	}
	return next, nil
}

// CountPrefix returns how many counters exist with the given name prefix.
// Used for "play N different games" style rules.
func (r *CounterRepo) CountPrefix(ctx context.Context, prefix string) (int, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM counters WHERE name LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%")
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counter count %q: %w", prefix, err)
	}
	return n, nil
}

func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
