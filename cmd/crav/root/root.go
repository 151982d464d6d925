package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CR-AudioViz-AI/crav-games/internal/ui"
)

const Version = "0.1.0"

var dbFlag string

var rootCmd = &cobra.Command{
	Use:           "crav",
	Short:         "CRAV Arcade — retro games with a collectible card album",
	Long:          "CRAV Arcade is a local-first terminal arcade. Playing games, keeping streaks and finding secrets unlocks collectible achievement cards.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation opens the board.
		return runBoard(cmd)
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "database file (overrides $CRAV_DB and the config file)")

	rootCmd.AddCommand(
		newBoardCmd(),
		newStatusCmd(),
		newCardsCmd(),
		newHistoryCmd(),
		newPlayCmd(),
		newTrackCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
