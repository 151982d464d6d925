package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/CR-AudioViz-AI/crav-games/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the arcade board (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoard(cmd)
		},
	}

	return cmd
}

func runBoard(cmd *cobra.Command) error {
	ctx := context.Background()
	s, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunBoard(ctx, s.svc, s.tracker, s.bus, s.cfg, cmd.OutOrStdout())
}
