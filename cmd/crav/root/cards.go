package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

func newCardsCmd() *cobra.Command {
	var series string
	var locked bool

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List the card collection",
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
			showHints := s.cfg.HintsEnabled()

			for _, name := range s.svc.Catalog().Series() {
				if series != "" && series != name {
					continue
				}
				cards := s.svc.Catalog().BySeries(name)
				done := 0
				for _, c := range cards {
					if snap.Discovered[c.ID] {
						done++
					}
				}
				fmt.Fprintln(out, ui.Heading(ui.IconCard, fmt.Sprintf("%s (%d/%d)", name, done, len(cards))))
				for _, c := range cards {
					if locked && snap.Discovered[c.ID] {
						continue
					}
					fmt.Fprintln(out, "  "+ui.CardLine(c, snap.Discovered[c.ID], showHints))
				}
				fmt.Fprintln(out, "")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&series, "series", "", "only show one series")
	cmd.Flags().BoolVar(&locked, "locked", false, "only show cards not yet discovered")
	return cmd
}
