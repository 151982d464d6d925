package root

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/CR-AudioViz-AI/crav-games/internal/engine"
	"github.com/CR-AudioViz-AI/crav-games/internal/events"
	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

// newTrackCmd injects gameplay facts by hand. Useful for poking the trigger
// rules from scripts and for debugging rule changes without playing.
func newTrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Report gameplay facts directly (debugging)",
	}

	cmd.AddCommand(
		newTrackStartCmd(),
		newTrackScoreCmd(),
		newTrackOverCmd(),
		newTrackAnswerCmd(),
		newTrackKeyCmd(),
		newTrackVisitCmd(),
	)
	return cmd
}

// withSession opens a session, echoes every unlock the facts cause, and
// hands the bus to fn.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	ctx := context.Background()
	s, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	s.svc.Notifier().Subscribe(func(n engine.Notification) {
		fmt.Fprintf(out, "%s %s %s %s\n", ui.IconSparkle, ui.BannerNew,
			ui.RarityStyle(n.Card.Rarity).Render(n.Card.Name), ui.Muted.Render("via "+n.Location))
	})

	return fn(ctx, s)
}

func newTrackStartCmd() *cobra.Command {
	var genre string
	cmd := &cobra.Command{
		Use:   "start <game>",
		Short: "Report a game start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				s.bus.Publish(events.GameStarted{Game: args[0], Genre: genre})
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&genre, "genre", "", "game genre")
	return cmd
}

func newTrackScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <game> <delta>",
		Short: "Report a score delta",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("delta must be an integer: %w", err)
			}
			return withSession(cmd, func(ctx context.Context, s *session) error {
				s.bus.Publish(events.ScoreReported{Game: args[0], Delta: delta})
				return nil
			})
		},
	}
	return cmd
}

func newTrackOverCmd() *cobra.Command {
	var genre string
	var score, seconds int
	var won, perfect bool
	cmd := &cobra.Command{
		Use:   "over <game>",
		Short: "Report a game ending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				s.bus.Publish(events.GameOver{
					Game:     args[0],
					Genre:    genre,
					Score:    score,
					Won:      won,
					Perfect:  perfect,
					Duration: time.Duration(seconds) * time.Second,
				})
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&genre, "genre", "", "game genre")
	cmd.Flags().IntVar(&score, "score", 0, "final score")
	cmd.Flags().IntVar(&seconds, "seconds", 0, "session length in seconds")
	cmd.Flags().BoolVar(&won, "won", false, "the session was won")
	cmd.Flags().BoolVar(&perfect, "perfect", false, "the session was flawless")
	return cmd
}

func newTrackAnswerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "answer <correct|wrong>",
		Short:     "Report a trivia answer",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"correct", "wrong"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				s.bus.Publish(events.QuestionAnswered{Correct: args[0] == "correct"})
				return nil
			})
		},
	}
	return cmd
}

func newTrackKeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key <key>...",
		Short: "Feed keys to the sequence detectors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, s *session) error {
				for _, k := range args {
					s.bus.Publish(events.KeyPressed{Key: k})
				}
				return nil
			})
		},
	}
	return cmd
}

func newTrackVisitCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Report a daily visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				parsed, err := time.ParseInLocation("2006-01-02", at, time.Local)
				if err != nil {
					return fmt.Errorf("parse --at: %w", err)
				}
				now = parsed
			}
			return withSession(cmd, func(ctx context.Context, s *session) error {
				s.bus.Publish(events.DailyVisit{Now: now})
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "visit date as YYYY-MM-DD (default today)")
	return cmd
}
