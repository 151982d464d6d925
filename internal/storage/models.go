package storage

import "time"

// Progress holds the per-player reward accumulators. The totals must always
// equal the summed rewards of the rows in discoveries.
type Progress struct {
	Key          string
	TotalXP      int
	TotalCredits int
}

// Discovery is one row of the append-only unlock log.
type Discovery struct {
	ID           int64
	CardID       string
	DiscoveredAt time.Time
	Location     string
}

// HighScore is one entry of the local per-game leaderboard.
type HighScore struct {
	ID         int64
	Game       string
	Score      int
	RecordedAt time.Time
}
