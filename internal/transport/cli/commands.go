package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/ankiwiktionary/internal/app"
	"github.com/heartmarshall/ankiwiktionary/internal/domain"
	"github.com/heartmarshall/ankiwiktionary/internal/service/deck"
)

func newGenCardsCommand(opts *rootOptions) *cobra.Command {
	var resultPath string

	cmd := &cobra.Command{
		Use:   "gen-cards [WORDS...]",
		Short: "Generate flashcards from passed WORDS",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, a, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			path := resultPath
			if path == "" {
				path = a.Config.Cards.ResultPath
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("create result file: %w", err)
			}
			defer func() {
				if cerr := f.Close(); cerr != nil && err == nil {
					err = fmt.Errorf("close result file: %w", cerr)
				}
			}()

			res, err := a.Deck.GenerateCards(ctx, args, f)
			logFinished(ctx, a, cmd, res)
			return err
		},
	}
	cmd.Flags().StringVarP(&resultPath, "result_path", "r", "",
		"path to the file to write the result to (default from config, ./wiktionary-result.csv)")
	return cmd
}

func newSearchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [WORDS...]",
		Short: "Search for the passed WORDS in wiktionary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			res, err := a.Deck.Search(ctx, args)
			logFinished(ctx, a, cmd, res)
			return err
		},
	}
}

func newSynonymsCommand(opts *rootOptions) *cobra.Command {
	var (
		resultDir string
		withHTML  bool
	)

	cmd := &cobra.Command{
		Use:   "synonyms [WORDS...]",
		Short: "Interactively build cloze synonym cards for the passed WORDS",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, a, err := opts.setup(cmd)
			if err != nil {
				return err
			}

			dir := resultDir
			if dir == "" {
				dir = a.Config.Cards.ResultDir
			}
			html := a.Config.Cards.WriteHTML
			if cmd.Flags().Changed("html") {
				html = withHTML
			}

			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create result dir: %w", err)
			}

			res, err := a.Deck.BuildSynonymCards(ctx, args, dir, html)
			logFinished(ctx, a, cmd, res)
			if errors.Is(err, domain.ErrInputClosed) {
				NewConsole(cmd.OutOrStdout()).Error("Input closed, remaining words were not processed")
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&resultDir, "result_dir", "d", "",
		"directory to write the cards to (default from config, .)")
	cmd.Flags().BoolVar(&withHTML, "html", false, "also write an HTML preview of every card")
	return cmd
}

func logFinished(ctx context.Context, a *app.App, cmd *cobra.Command, res deck.Result) {
	a.Logger.InfoContext(ctx, "command finished",
		slog.String("command", cmd.Name()),
		slog.Int("processed", res.Processed),
		slog.Int("failed", res.Failed),
	)
}
