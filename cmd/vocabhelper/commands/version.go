package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-helper/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
