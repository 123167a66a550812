package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/ankiwiktionary/pkg/ctxutil"
)

// Search prints the matching page titles for every word.
func (s *Service) Search(ctx context.Context, words []string) (Result, error) {
	var res Result
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		wctx := ctxutil.WithWord(ctx, word)

		titles, err := s.search.Search(wctx, word)
		if err != nil {
			s.fail(wctx, &res, word, err)
			continue
		}

		res.Processed++
		s.reporter.Info(fmt.Sprintf("Results for %q: %s", word, strings.Join(titles, ", ")))
	}
	return res, nil
}
