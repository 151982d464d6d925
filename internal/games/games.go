// Package games holds the playable mini-games. Each game is a bubbletea
// model that reports gameplay facts (game started, score deltas, game
// over) to the event bus; the trigger rules do the rest. Games never talk
// to the discovery engine directly.
package games

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CR-AudioViz-AI/crav-games/internal/events"
)

// Genres used in trigger rules.
const (
	GenreTrivia = "trivia"
	GenrePuzzle = "puzzle"
)

// DoneMsg is emitted by a game model when the session ends, so a hosting
// model can take the screen back.
type DoneMsg struct {
	Game  string
	Score int
}

// Info describes a launchable game.
type Info struct {
	Name  string
	Title string
	Genre string
}

func All() []Info {
	return []Info{
		{Name: "trivia", Title: "Retro Trivia", Genre: GenreTrivia},
		{Name: "memory", Title: "Memory Match", Genre: GenrePuzzle},
	}
}

// New builds the named game wired to the bus.
func New(name string, bus *events.Bus) (tea.Model, error) {
	switch name {
	case "trivia":
		return NewTrivia(bus), nil
	case "memory":
		return NewMemory(bus, MemoryMedium), nil
	default:
		return nil, fmt.Errorf("unknown game %q", name)
	}
}
