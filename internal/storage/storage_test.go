package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestProgressRoundTrip(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepo(db)

	p, err := repo.GetOrCreateMain(ctx)
	if err != nil {
		t.Fatalf("GetOrCreateMain: %v", err)
	}
	if p.TotalXP != 0 || p.TotalCredits != 0 {
		t.Fatalf("fresh progress has totals: %+v", p)
	}

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.Award(ctx, "player-001", 50, 10, at, "first-game"); err != nil {
		t.Fatalf("Award: %v", err)
	}
	if err := repo.Award(ctx, "score-001", 75, 20, at.Add(time.Minute), "score-1000"); err != nil {
		t.Fatalf("Award: %v", err)
	}

	p, err = repo.Get(ctx, MainProfileKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.TotalXP != 125 || p.TotalCredits != 30 {
		t.Fatalf("totals=%d/%d, want 125/30", p.TotalXP, p.TotalCredits)
	}

	list, err := repo.ListDiscoveries(ctx)
	if err != nil {
		t.Fatalf("ListDiscoveries: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("history len=%d, want 2", len(list))
	}
	if list[0].CardID != "player-001" || list[0].Location != "first-game" {
		t.Fatalf("history[0]=%+v", list[0])
	}
	if list[1].CardID != "score-001" {
		t.Fatalf("history[1]=%+v", list[1])
	}
	if !list[0].DiscoveredAt.Equal(at) {
		t.Fatalf("history[0] at=%v, want %v", list[0].DiscoveredAt, at)
	}

	has, err := repo.HasDiscovered(ctx, "player-001")
	if err != nil || !has {
		t.Fatalf("HasDiscovered(player-001)=%v,%v", has, err)
	}
	has, err = repo.HasDiscovered(ctx, "daily-001")
	if err != nil || has {
		t.Fatalf("HasDiscovered(daily-001)=%v,%v", has, err)
	}
}

func TestAwardDuplicateCardFails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProgressRepo(db)

	at := time.Now()
	if err := repo.Award(ctx, "player-001", 50, 10, at, "a"); err != nil {
		t.Fatalf("Award: %v", err)
	}
	if err := repo.Award(ctx, "player-001", 50, 10, at, "b"); err == nil {
		t.Fatalf("expected unique violation on duplicate award")
	}

	// The failed transaction must not have touched the totals.
	p, err := repo.Get(ctx, MainProfileKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.TotalXP != 50 || p.TotalCredits != 10 {
		t.Fatalf("totals=%d/%d after failed duplicate, want 50/10", p.TotalXP, p.TotalCredits)
	}
}

func TestCounters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCounterRepo(db)

	if n, err := repo.GetInt(ctx, CounterGamesPlayed); err != nil || n != 0 {
		t.Fatalf("missing counter=%d,%v, want 0", n, err)
	}

	n, err := repo.AddInt(ctx, CounterGamesPlayed, 1)
	if err != nil || n != 1 {
		t.Fatalf("AddInt=%d,%v, want 1", n, err)
	}
	n, err = repo.AddInt(ctx, CounterGamesPlayed, 4)
	if err != nil || n != 5 {
		t.Fatalf("AddInt=%d,%v, want 5", n, err)
	}

	if err := repo.SetString(ctx, CounterLastPlayDate, "2025-06-01"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	s, err := repo.GetString(ctx, CounterLastPlayDate)
	if err != nil || s != "2025-06-01" {
		t.Fatalf("GetString=%q,%v", s, err)
	}

	// Corrupt values read back as zero.
	if err := repo.SetString(ctx, CounterStreak, "not-a-number"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if n, err := repo.GetInt(ctx, CounterStreak); err != nil || n != 0 {
		t.Fatalf("corrupt counter=%d,%v, want 0", n, err)
	}
}

func TestCounterPrefixCount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCounterRepo(db)

	for _, g := range []string{"trivia", "memory", "blaster"} {
		if err := repo.SetInt(ctx, PrefixPlayedGame+g, 1); err != nil {
			t.Fatalf("SetInt: %v", err)
		}
	}
	if err := repo.SetInt(ctx, CounterGamesPlayed, 9); err != nil {
		t.Fatalf("SetInt: %v", err)
	}

	n, err := repo.CountPrefix(ctx, PrefixPlayedGame)
	if err != nil || n != 3 {
		t.Fatalf("CountPrefix=%d,%v, want 3", n, err)
	}
}

func TestHighScores(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewScoreRepo(db)

	if _, ok, err := repo.Best(ctx, "trivia"); err != nil || ok {
		t.Fatalf("Best on empty table ok=%v err=%v", ok, err)
	}

	now := time.Now()
	for _, s := range []int{300, 900, 600} {
		if _, err := repo.Insert(ctx, "trivia", s, now); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if _, err := repo.Insert(ctx, "memory", 1200, now); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	best, ok, err := repo.Best(ctx, "trivia")
	if err != nil || !ok || best != 900 {
		t.Fatalf("Best=%d,%v,%v, want 900", best, ok, err)
	}

	top, err := repo.Top(ctx, "trivia", 2)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 || top[0].Score != 900 || top[1].Score != 600 {
		t.Fatalf("Top=%+v", top)
	}

	games, err := repo.Games(ctx)
	if err != nil || len(games) != 2 {
		t.Fatalf("Games=%v,%v", games, err)
	}
}
