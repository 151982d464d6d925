package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the discovery log",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, cleanup, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := s.svc.ProgressRepo().ListDiscoveries(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Discovery Log"))
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing discovered yet)"))
				return nil
			}
			for _, d := range list {
				name := d.CardID
				rewards := ""
				if card, ok := s.svc.Catalog().Get(d.CardID); ok {
					name = card.Name
					rewards = fmt.Sprintf("+%d XP, +%d credits", card.XPReward, card.CreditReward)
				}
				fmt.Fprintf(out, "%s  %-24s %-20s %s\n",
					d.DiscoveredAt.Format("2006-01-02 15:04"), name,
					ui.Muted.Render("via "+d.Location), ui.Gold.Render(rewards))
			}
			return nil
		},
	}

	return cmd
}
