package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CR-AudioViz-AI/crav-games/internal/config"
	"github.com/CR-AudioViz-AI/crav-games/internal/engine"
	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/tracker"
)

// RunBoard opens the arcade board. The tracker must already be attached to
// the bus; the board publishes the session facts (daily visit, key stream)
// and hosts the games.
func RunBoard(ctx context.Context, svc *engine.Service, tr *tracker.Tracker, bus *events.Bus, cfg *config.Config, out io.Writer) error {
	m := newBoardModel(ctx, svc, tr, bus, cfg)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
