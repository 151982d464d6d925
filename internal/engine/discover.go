package engine

import (
	"context"
	"time"

	"github.com/CR-AudioViz-AI/crav-games/internal/catalog"
)

// Outcome tags the result of a discovery attempt. The original collapses
// unknown-card and already-discovered into a single false return; callers
// that only care about that view use Discovered().
type Outcome int

const (
	OutcomeUnknownCard Outcome = iota
	OutcomeAlreadyDiscovered
	OutcomeDiscovered
)

func (o Outcome) Discovered() bool { return o == OutcomeDiscovered }

func (o Outcome) String() string {
	switch o {
	case OutcomeUnknownCard:
		return "unknown card"
	case OutcomeAlreadyDiscovered:
		return "already discovered"
	case OutcomeDiscovered:
		return "discovered"
	default:
		return "invalid"
	}
}

type DiscoverResult struct {
	Outcome  Outcome
	Card     catalog.Card
	Location string
	At       time.Time
}

// Discover unlocks a card exactly once. An unknown card id or a repeat call
// for an unlocked card is a no-op; a first unlock appends to the discovery
// history, grants the card's rewards and surfaces a one-shot notification.
// Errors are storage failures only, never rule outcomes.
func (s *Service) Discover(ctx context.Context, cardID, location string) (*DiscoverResult, error) {
	card, ok := s.catalog.Get(cardID)
	if !ok {
		return &DiscoverResult{Outcome: OutcomeUnknownCard}, nil
	}

	has, err := s.progress.HasDiscovered(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if has {
		return &DiscoverResult{Outcome: OutcomeAlreadyDiscovered, Card: card}, nil
	}

	at := s.now()
	if err := s.progress.Award(ctx, cardID, card.XPReward, card.CreditReward, at, location); err != nil {
		return nil, err
	}

	s.notifier.Publish(Notification{Card: card, Location: location, At: at})

	return &DiscoverResult{
		Outcome:  OutcomeDiscovered,
		Card:     card,
		Location: location,
		At:       at,
	}, nil
}
