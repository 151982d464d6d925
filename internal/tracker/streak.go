package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
)

var streakThresholds = []struct {
	Days   int
	CardID string
}{
	{3, "daily-002"},
	{7, "daily-003"},
	{14, "daily-004"},
	{30, "daily-005"},
}

func dateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// CheckDailyVisit runs the consecutive-day streak rule. Dates come from the
// local clock as calendar-date strings, so timezone or clock changes can
// break a streak; that is inherent to client-local state.
//
// Same day as last play: no-op. Day after last play: streak+1, every
// crossed threshold unlocks independently. Anything else: streak resets
// to 1 and only the base daily card is attempted.
func (t *Tracker) CheckDailyVisit(ctx context.Context, now time.Time) error {
	today := dateString(now)
	lastPlay, err := t.counters.GetString(ctx, storage.CounterLastPlayDate)
	if err != nil {
		return err
	}
	if lastPlay == today {
		return nil
	}

	yesterday := dateString(now.AddDate(0, 0, -1))
	if lastPlay == yesterday {
		streak, err := t.counters.GetInt(ctx, storage.CounterStreak)
		if err != nil {
			return err
		}
		streak++
		if err := t.counters.SetInt(ctx, storage.CounterStreak, streak); err != nil {
			return err
		}
		if err := t.discover(ctx, "daily-001", "daily-play"); err != nil {
			return err
		}
		for _, th := range streakThresholds {
			if streak >= th.Days {
				if err := t.discover(ctx, th.CardID, fmt.Sprintf("streak-%d", th.Days)); err != nil {
					return err
				}
			}
		}
	} else {
		if err := t.counters.SetInt(ctx, storage.CounterStreak, 1); err != nil {
			return err
		}
		if err := t.discover(ctx, "daily-001", "daily-play"); err != nil {
			return err
		}
	}

	return t.counters.SetString(ctx, storage.CounterLastPlayDate, today)
}
