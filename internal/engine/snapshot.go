package engine

import (
	"context"
	"fmt"

	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
)

// Snapshot is a read-only view of the persisted progress for the
// presentation layer.
type Snapshot struct {
	TotalXP      int
	TotalCredits int
	Discovered   map[string]bool
	History      []storage.Discovery
}

func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	p, err := s.progress.GetOrCreateMain(ctx)
	if err != nil {
		return nil, err
	}
	history, err := s.progress.ListDiscoveries(ctx)
	if err != nil {
		return nil, err
	}
	discovered := make(map[string]bool, len(history))
	for _, d := range history {
		discovered[d.CardID] = true
	}
	return &Snapshot{
		TotalXP:      p.TotalXP,
		TotalCredits: p.TotalCredits,
		Discovered:   discovered,
		History:      history,
	}, nil
}

type SeriesProgress struct {
	Series     string
	Discovered int
	Total      int
}

// SeriesProgress reports collection completion per card series, in catalog
// order.
func (s *Service) SeriesProgress(ctx context.Context) ([]SeriesProgress, error) {
	discovered, err := s.progress.DiscoveredIDs(ctx)
	if err != nil {
		return nil, err
	}

	var out []SeriesProgress
	for _, name := range s.catalog.Series() {
		sp := SeriesProgress{Series: name}
		for _, card := range s.catalog.BySeries(name) {
			sp.Total++
			if discovered[card.ID] {
				sp.Discovered++
			}
		}
		out = append(out, sp)
	}
	return out, nil
}

// VerifyTotals recomputes the reward sums from the discovery history and
// checks them against the stored accumulators. The two must never drift.
func (s *Service) VerifyTotals(ctx context.Context) error {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	wantXP, wantCredits := 0, 0
	for _, d := range snap.History {
		card, ok := s.catalog.Get(d.CardID)
		if !ok {
			return fmt.Errorf("history references unknown card %q", d.CardID)
		}
		wantXP += card.XPReward
		wantCredits += card.CreditReward
	}
	if snap.TotalXP != wantXP || snap.TotalCredits != wantCredits {
		return fmt.Errorf("totals drifted: have %d XP / %d credits, recomputed %d / %d",
			snap.TotalXP, snap.TotalCredits, wantXP, wantCredits)
	}
	return nil
}
