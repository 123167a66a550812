// Package cli is the command-line surface of ankiwiktionary.
package cli

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ankiwiktionary/internal/app"
	"github.com/heartmarshall/ankiwiktionary/pkg/ctxutil"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCommand builds the command tree. in and out are the terminal streams
// used for prompts, results and error lines.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "ankiwiktionary",
		Short: "Build Anki flashcards from Wiktionary articles and synonym lists",
		Long: `ankiwiktionary looks words up on Wiktionary and turns them into flashcards:
HTML card bodies in a CSV file ready for Anki import, or Markdown cards with
cloze-deleted synonyms curated interactively.`,
		Version:      app.BuildVersion(),
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"path to the YAML config (default $CONFIG_PATH, then ./ankiwiktionary.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level: debug, info, warn, error (overrides config)")

	root.AddCommand(
		newGenCardsCommand(opts),
		newSearchCommand(opts),
		newSynonymsCommand(opts),
	)
	return root
}

// setup wires the application for one command run and tags the context with
// a fresh run ID.
func (o *rootOptions) setup(cmd *cobra.Command) (context.Context, *app.App, error) {
	a, err := app.New(app.Options{
		ConfigPath: o.configPath,
		LogLevel:   o.logLevel,
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Reporter:   NewConsole(cmd.OutOrStdout()),
	})
	if err != nil {
		return nil, nil, err
	}

	ctx := ctxutil.WithRunID(cmd.Context(), uuid.NewString())
	a.Logger.DebugContext(ctx, "command started", "command", cmd.Name())
	return ctx, a, nil
}
