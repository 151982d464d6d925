// Package tracker holds the trigger rules: predicates over reported
// gameplay facts and persisted counters that decide when to attempt a card
// discovery. Rules are independent; the discovery engine's idempotency
// makes their order immaterial.
package tracker

import (
	"context"

	"github.com/CR-AudioViz-AI/crav-games/internal/engine"
	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
)

type Tracker struct {
	svc      *engine.Service
	counters *storage.CounterRepo
	scores   *storage.ScoreRepo
	logf     func(format string, args ...any)

	konamiIndex int
}

// New builds a tracker over the discovery engine. logf receives absorbed
// errors; nil discards them.
func New(svc *engine.Service, logf func(format string, args ...any)) *Tracker {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Tracker{
		svc:      svc,
		counters: svc.CounterRepo(),
		scores:   svc.ScoreRepo(),
		logf:     logf,
	}
}

// Attach subscribes every rule to the bus. Failures inside a rule are
// logged and absorbed; a rule error never reaches the publisher.
func (t *Tracker) Attach(ctx context.Context, bus *events.Bus) {
	events.Subscribe(bus, func(f events.GameStarted) {
		t.absorb(t.HandleGameStarted(ctx, f))
	})
	events.Subscribe(bus, func(f events.ScoreReported) {
		t.absorb(t.HandleScore(ctx, f))
	})
	events.Subscribe(bus, func(f events.GameOver) {
		t.absorb(t.HandleGameOver(ctx, f))
	})
	events.Subscribe(bus, func(f events.QuestionAnswered) {
		t.absorb(t.HandleQuestionAnswered(ctx, f))
	})
	events.Subscribe(bus, func(f events.KeyPressed) {
		t.absorb(t.HandleKey(ctx, f.Key))
	})
	events.Subscribe(bus, func(f events.DailyVisit) {
		t.absorb(t.CheckDailyVisit(ctx, f.Now))
	})
}

func (t *Tracker) absorb(err error) {
	if err != nil {
		t.logf("tracker: %v", err)
	}
}

const completionistCard = "secret-005"

// discover attempts an unlock and, on success, checks whether the
// collection is now complete.
func (t *Tracker) discover(ctx context.Context, cardID, location string) error {
	res, err := t.svc.Discover(ctx, cardID, location)
	if err != nil {
		return err
	}
	if !res.Outcome.Discovered() || cardID == completionistCard {
		return nil
	}
	return t.checkCompletion(ctx)
}

// checkCompletion unlocks The Completionist once every other card has been
// discovered. Its max_supply field is catalog data only; nothing enforces
// a supply cap.
func (t *Tracker) checkCompletion(ctx context.Context) error {
	discovered, err := t.svc.ProgressRepo().DiscoveredIDs(ctx)
	if err != nil {
		return err
	}
	for _, card := range t.svc.Catalog().All() {
		if card.ID == completionistCard {
			continue
		}
		if !discovered[card.ID] {
			return nil
		}
	}
	_, err = t.svc.Discover(ctx, completionistCard, "collection-complete")
	return err
}
