// Command vocabhelper watches a flashcard page and shows a translated
// definition and pronunciation for every card that is flipped.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/vocab-helper/cmd/vocabhelper/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(commands.ExecuteContext(ctx))
}
