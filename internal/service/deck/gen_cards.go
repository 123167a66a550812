package deck

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/ankiwiktionary/pkg/ctxutil"
)

// GenerateCards writes one CSV row per word to w. Each row holds a single
// field: the HTML body of the word card. Words that fail are reported and
// skipped. Only a write failure aborts the batch.
func (s *Service) GenerateCards(ctx context.Context, words []string, w io.Writer) (Result, error) {
	cw := csv.NewWriter(w)
	cw.Comma = s.delimiter

	var res Result
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		wctx := ctxutil.WithWord(ctx, word)

		entry, err := s.words.FetchWord(wctx, word)
		if err != nil {
			s.fail(wctx, &res, word, err)
			continue
		}

		card, err := s.renderer.RenderWordCard(entry.Capitalized())
		if err != nil {
			s.fail(wctx, &res, word, err)
			continue
		}

		if err := cw.Write([]string{card}); err != nil {
			return res, fmt.Errorf("write card %q: %w", word, err)
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			return res, fmt.Errorf("write card %q: %w", word, err)
		}

		res.Processed++
		s.log.InfoContext(wctx, "card written", slog.Int("meanings", len(entry.Meanings)))
		s.reporter.Success(word)
	}
	return res, nil
}
