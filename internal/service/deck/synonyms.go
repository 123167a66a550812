package deck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
	"github.com/heartmarshall/ankiwiktionary/internal/service/cards"
	"github.com/heartmarshall/ankiwiktionary/pkg/ctxutil"
)

const cardFileMode = 0o644

// BuildSynonymCards curates synonyms for every word and writes
// <dir>/<Word>.md, plus <dir>/<Word>.html when withHTML is set. A word with no
// accepted synonyms still gets a card. Closed input stops the batch.
func (s *Service) BuildSynonymCards(ctx context.Context, words []string, dir string, withHTML bool) (Result, error) {
	if s.curator == nil {
		return Result{}, errors.New("synonym curation is not configured")
	}

	var res Result
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		wctx := ctxutil.WithWord(ctx, word)

		syns, err := s.curator.Curate(wctx, word)
		if errors.Is(err, domain.ErrInputClosed) {
			return res, err
		}
		if err != nil {
			s.fail(wctx, &res, word, err)
			continue
		}

		headword := domain.Capitalize(word)
		md, err := s.renderer.RenderSynonymCard(headword, syns)
		if err != nil {
			s.fail(wctx, &res, word, err)
			continue
		}

		name := cardFileName(headword)
		path := filepath.Join(dir, name+".md")
		if err := os.WriteFile(path, []byte(md), cardFileMode); err != nil {
			s.fail(wctx, &res, word, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		if withHTML {
			htmlPath := filepath.Join(dir, name+".html")
			if err := os.WriteFile(htmlPath, cards.MarkdownToHTML(md), cardFileMode); err != nil {
				s.fail(wctx, &res, word, fmt.Errorf("write %s: %w", htmlPath, err))
				continue
			}
		}

		res.Processed++
		s.log.InfoContext(wctx, "synonym card written",
			slog.String("path", path),
			slog.Int("synonyms", len(syns)),
		)
		s.reporter.Success(word)
	}
	return res, nil
}

// cardFileName turns a headword into a file name that stays inside the result
// directory: path separators become "_" and a name of only dots gets a prefix.
func cardFileName(headword string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, headword)
	if strings.Trim(name, ".") == "" {
		name = "_" + name
	}
	return name
}
