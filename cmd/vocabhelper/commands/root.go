// Package commands implements the vocabhelper CLI.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/vocab-helper/internal/app"
	"github.com/heartmarshall/vocab-helper/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "vocabhelper",
	Short:         "vocabhelper shows translated definitions for the flashcard you are studying.",
	Long:          "vocabhelper watches a flashcard page; when a card is flipped it looks the word up and shows the meaning and pronunciation next to it.\n\nConfiguration is read from --config, CONFIG_PATH or ./config.yaml, and environment variables:\n\n" + config.Usage(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWatch,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config file")
}

// ExecuteContext runs the CLI and returns the process exit code.
func ExecuteContext(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// setup loads the configuration and installs the logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log, os.Stderr), nil
}
