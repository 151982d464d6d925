package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CR-AudioViz-AI/crav-games/internal/storage"
	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player totals, streak and collection progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := s.svc.Snapshot(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconJoystick, s.cfg.PlayerName()))
			fmt.Fprintln(out, ui.LabelValue("Total XP", snap.TotalXP))
			fmt.Fprintln(out, ui.LabelValue("Credits", snap.TotalCredits))
			total := s.svc.Catalog().Len()
			fmt.Fprintln(out, ui.LabelValue("Cards", fmt.Sprintf("%d/%d %s", len(snap.History), total, ui.ProgressBar(len(snap.History), total, 24))))
			fmt.Fprintln(out, "")

			counters := s.svc.CounterRepo()
			plays, err := counters.GetInt(ctx, storage.CounterGamesPlayed)
			if err != nil {
				return err
			}
			score, err := counters.GetInt(ctx, storage.CounterTotalScore)
			if err != nil {
				return err
			}
			streak, err := counters.GetInt(ctx, storage.CounterStreak)
			if err != nil {
				return err
			}
			seconds, err := counters.GetInt(ctx, storage.CounterPlaySeconds)
			if err != nil {
				return err
			}
			lastPlay, err := counters.GetString(ctx, storage.CounterLastPlayDate)
			if err != nil {
				return err
			}
			if lastPlay == "" {
				lastPlay = "never"
			}

			fmt.Fprintln(out, ui.H2.Render("📊 Lifetime"))
			fmt.Fprintln(out, ui.LabelValue("Games played", plays))
			fmt.Fprintln(out, ui.LabelValue("Cumulative score", score))
			fmt.Fprintln(out, ui.LabelValue("Play time", (time.Duration(seconds)*time.Second).String()))
			fmt.Fprintln(out, ui.LabelValue("Daily streak", fmt.Sprintf("%s %d (last visit %s)", ui.IconFire, streak, lastPlay)))
			fmt.Fprintln(out, "")

			series, err := s.svc.SeriesProgress(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconCard+" Series"))
			for _, sp := range series {
				fmt.Fprintf(out, "- %-10s %s %d/%d\n", sp.Series, ui.ProgressBar(sp.Discovered, sp.Total, 14), sp.Discovered, sp.Total)
			}

			if err := s.svc.VerifyTotals(ctx); err != nil {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Bad.Render(ui.IconError+" "+err.Error()))
			}
			return nil
		},
	}

	return cmd
}
