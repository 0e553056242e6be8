package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-helper/internal/app"
	"github.com/heartmarshall/vocab-helper/internal/render"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look a single word up and print the result.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		result, err := app.Lookup(cmd.Context(), cfg, strings.Join(args, " "), logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if lookupJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		term := render.NewTerminal(render.NewStyles(), cfg.Lookup.Language)
		_, err = fmt.Fprintln(out, term.Result(result))
		return err
	},
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(lookupCmd)
}
