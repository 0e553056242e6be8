package commands

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-helper/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the flashcard page and look up every flipped card (default).",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	return app.Watch(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
}
