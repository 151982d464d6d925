package tracker

import (
	"context"
	"time"
)

// CheckMidnight unlocks Midnight Gamer when the local hour is in [0, 3).
// Evaluated once at session start.
func (t *Tracker) CheckMidnight(ctx context.Context, now time.Time) error {
	if h := now.Hour(); h >= 0 && h < 3 {
		return t.discover(ctx, "secret-002", "midnight-gaming")
	}
	return nil
}

// ReportEasterEgg unlocks Easter Egg Hunter. The presentation layer calls
// this when the hidden joystick icon is found.
func (t *Tracker) ReportEasterEgg(ctx context.Context, location string) error {
	if location == "" {
		location = "hidden-joystick"
	}
	return t.discover(ctx, "secret-003", location)
}
