package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-helper/internal/adapter/postgres/journal"
	"github.com/heartmarshall/vocab-helper/internal/app"
	"github.com/heartmarshall/vocab-helper/internal/domain"
)

var (
	historyLimit int
	historyWord  string
	historySince time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history [--limit N] [--word W] [--since 24h]",
	Short: "List recently looked-up words from the journal.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		filter := journal.Filter{Word: historyWord, Limit: historyLimit}
		if historySince > 0 {
			filter.Since = time.Now().Add(-historySince)
		}

		entries, err := app.History(cmd.Context(), cfg, filter, logger)
		if err != nil {
			return err
		}

		for _, e := range entries {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatEntry(e)); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.Flags().StringVarP(&historyWord, "word", "w", "", "only show this word")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only show lookups newer than this")
	rootCmd.AddCommand(historyCmd)
}

var (
	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func formatEntry(e domain.JournalEntry) string {
	mark := func(ok bool, label string) string {
		if ok {
			return foundStyle.Render("+" + label)
		}
		return missingStyle.Render("-" + label)
	}
	return fmt.Sprintf("%s  %-20s %s %s",
		dimStyle.Render(e.LookedUpAt.Local().Format(time.DateTime)),
		e.Word,
		mark(e.HasMeanings, "meaning"),
		mark(e.HasAudio, "audio"),
	)
}
