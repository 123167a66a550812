// Package deck processes batches of words into flashcard files. Each word is
// handled on its own: a failure is reported and the batch moves on.
package deck

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
	"github.com/heartmarshall/ankiwiktionary/internal/service/cards"
)

type wordProvider interface {
	FetchWord(ctx context.Context, word string) (domain.Word, error)
}

type searcher interface {
	Search(ctx context.Context, query string) ([]string, error)
}

type curator interface {
	Curate(ctx context.Context, word string) ([]domain.Synonym, error)
}

// Reporter receives the user-visible outcome of every word.
type Reporter interface {
	Success(word string)
	Error(msg string)
	Info(msg string)
}

// Result counts the words of a batch by outcome.
type Result struct {
	Processed int
	Failed    int
}

// Service runs the deck commands.
type Service struct {
	log       *slog.Logger
	words     wordProvider
	search    searcher
	curator   curator
	renderer  *cards.Renderer
	reporter  Reporter
	delimiter rune
}

// NewService creates a Service. curator may be nil when BuildSynonymCards is
// not used.
func NewService(
	logger *slog.Logger,
	words wordProvider,
	search searcher,
	curator curator,
	renderer *cards.Renderer,
	reporter Reporter,
	delimiter rune,
) *Service {
	return &Service{
		log:       logger.With("service", "deck"),
		words:     words,
		search:    search,
		curator:   curator,
		renderer:  renderer,
		reporter:  reporter,
		delimiter: delimiter,
	}
}

func (s *Service) fail(ctx context.Context, res *Result, word string, err error) {
	res.Failed++
	s.log.WarnContext(ctx, "word failed",
		slog.String("kind", domain.KindOf(err).String()),
		slog.String("error", err.Error()),
	)
	s.reporter.Error(FailureMessage(word, err))
}
