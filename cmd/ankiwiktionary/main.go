// Command ankiwiktionary builds Anki flashcards from Wiktionary articles.
//
// Subcommands:
//
//	gen-cards  HTML card bodies for the given words, written as a CSV file
//	search     page titles matching the given words
//	synonyms   interactive Markdown cards with cloze-deleted synonyms
//
// Exit codes: 0 = success (including words that failed lookup), 1 = setup error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/ankiwiktionary/internal/transport/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand(os.Stdin, os.Stdout).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
