package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const MainProfileKey = "local_player"

type ProgressRepo struct {
	db *sql.DB
}

func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Get(ctx context.Context, key string) (*Progress, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, total_xp, total_credits FROM progress WHERE key = ?`, key)

	var p Progress
	if err := row.Scan(&p.Key, &p.TotalXP, &p.TotalCredits); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("progress get: %w", err)
	}
	return &p, nil
}

func (r *ProgressRepo) GetOrCreateMain(ctx context.Context) (*Progress, error) {
	p, err := r.Get(ctx, MainProfileKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	if _, err := r.db.ExecContext(ctx, `INSERT INTO progress (key) VALUES (?)`, MainProfileKey); err != nil {
		return nil, fmt.Errorf("progress insert: %w", err)
	}
	return r.Get(ctx, MainProfileKey)
}

// HasDiscovered reports whether the card is already in the unlock log.
func (r *ProgressRepo) HasDiscovered(ctx context.Context, cardID string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM discoveries WHERE card_id = ?`, cardID)
	var n int
	if err := row.Scan(&n); err != nil {
		return false, fmt.Errorf("discovery lookup: %w", err)
	}
	return n > 0, nil
}

// Award records a first-time unlock: one history row plus the reward
// increments, in a single transaction.
func (r *ProgressRepo) Award(ctx context.Context, cardID string, xp, credits int, at time.Time, location string) error {
	if _, err := r.GetOrCreateMain(ctx); err != nil {
		return err
	}
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO discoveries (card_id, discovered_at, location) VALUES (?, ?, ?)`,
			cardID, at.UTC(), location,
		); err != nil {
			return fmt.Errorf("discovery insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE progress SET total_xp = total_xp + ?, total_credits = total_credits + ? WHERE key = ?`,
			xp, credits, MainProfileKey,
		); err != nil {
			return fmt.Errorf("progress update: %w", err)
		}
		return nil
	})
}

// ListDiscoveries returns the unlock log in unlock order.
func (r *ProgressRepo) ListDiscoveries(ctx context.Context) ([]Discovery, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, card_id, discovered_at, location FROM discoveries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("discoveries list: %w", err)
	}
	defer rows.Close()

	var out []Discovery
	for rows.Next() {
		var d Discovery
		if err := rows.Scan(&d.ID, &d.CardID, &d.DiscoveredAt, &d.Location); err != nil {
			return nil, fmt.Errorf("discoveries scan: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("discoveries rows: %w", err)
	}
	return out, nil
}

// DiscoveredIDs returns the set of unlocked card ids.
func (r *ProgressRepo) DiscoveredIDs(ctx context.Context) (map[string]bool, error) {
	list, err := r.ListDiscoveries(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(list))
	for _, d := range list {
		ids[d.CardID] = true
	}
	return ids, nil
}

func (r *ProgressRepo) CountDiscovered(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM discoveries`)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("discoveries count: %w", err)
	}
	return n, nil
}
