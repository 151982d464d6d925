package tracker

import (
	"context"
	"fmt"

	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
)

var scoreThresholds = []struct {
	Total  int
	CardID string
}{
	{1000, "score-001"},
	{10000, "score-002"},
}

// HandleScore adds the delta to the lifetime score and unlocks every
// threshold the new total has crossed. A single large delta can cross
// several at once.
func (t *Tracker) HandleScore(ctx context.Context, f events.ScoreReported) error {
	total, err := t.counters.AddInt(ctx, storage.CounterTotalScore, f.Delta)
	if err != nil {
		return err
	}
	for _, th := range scoreThresholds {
		if total >= th.Total {
			if err := t.discover(ctx, th.CardID, fmt.Sprintf("score-%d", th.Total)); err != nil {
				return err
			}
		}
	}
	return nil
}
