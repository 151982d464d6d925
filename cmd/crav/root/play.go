package root

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CR-AudioViz-AI/crav-games/internal/games"
	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

func newPlayCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "play <game>",
		Short: "Play a single game without the board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			// A direct play still counts as a visit for the streak.
			if err := s.tracker.CheckDailyVisit(ctx, time.Now()); err != nil {
				return err
			}

			var game tea.Model
			if args[0] == "memory" && difficulty != "" {
				diff, err := memoryDifficulty(difficulty)
				if err != nil {
					return err
				}
				game = games.NewMemory(s.bus, diff)
			} else {
				game, err = games.New(args[0], s.bus)
				if err != nil {
					return err
				}
			}

			host := playHost{game: game}
			p := tea.NewProgram(host, tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if h, ok := final.(playHost); ok && h.done != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Final score: %d\n", ui.IconTrophy, h.done.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&difficulty, "difficulty", "", "memory difficulty: easy, medium or hard")
	return cmd
}

func memoryDifficulty(name string) (games.MemoryDifficulty, error) {
	switch name {
	case "easy":
		return games.MemoryEasy, nil
	case "medium":
		return games.MemoryMedium, nil
	case "hard":
		return games.MemoryHard, nil
	default:
		return games.MemoryDifficulty{}, fmt.Errorf("unknown difficulty %q", name)
	}
}

// playHost runs one game model and quits when it reports the session end.
type playHost struct {
	game tea.Model
	done *games.DoneMsg
}

func (h playHost) Init() tea.Cmd { return h.game.Init() }

func (h playHost) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(games.DoneMsg); ok {
		h.done = &done
		return h, tea.Quit
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.game, cmd = h.game.Update(msg)
	return h, cmd
}

func (h playHost) View() string {
	if h.done != nil {
		return ""
	}
	return h.game.View()
}
