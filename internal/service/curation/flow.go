// Package curation runs the interactive synonym curation for a single word:
// pick synonyms, pick or write an example sentence for each, and choose which
// words of that sentence become cloze deletions.
package curation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
	"github.com/heartmarshall/ankiwiktionary/internal/service/cloze"
)

type synonymProvider interface {
	FetchSynonyms(ctx context.Context, word string) ([]string, error)
}

type wordProvider interface {
	FetchWord(ctx context.Context, word string) (domain.Word, error)
}

// Flow drives the curation dialogue.
type Flow struct {
	synonyms synonymProvider
	words    wordProvider
	prompt   *Prompter
	log      *slog.Logger
}

// NewFlow creates a Flow.
func NewFlow(synonyms synonymProvider, words wordProvider, prompt *Prompter, logger *slog.Logger) *Flow {
	return &Flow{
		synonyms: synonyms,
		words:    words,
		prompt:   prompt,
		log:      logger.With("service", "curation"),
	}
}

// Curate returns the synonyms the operator accepted for word, in order, each
// with a capitalized surface form and a clozed example. The ordinal in the
// cloze markers is the synonym's 1-based position in the returned slice.
//
// A failed synonym fetch fails the word. A failed meaning lookup for one
// synonym only leaves the operator to write an example or skip it.
func (f *Flow) Curate(ctx context.Context, word string) ([]domain.Synonym, error) {
	candidates, err := f.synonyms.FetchSynonyms(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("fetch synonyms for %q: %w", word, err)
	}

	chosen, err := f.selectSynonyms(word, candidates)
	if err != nil {
		return nil, err
	}

	extra, err := f.prompt.AskLine("Add your own synonyms (comma separated, empty to continue)")
	if err != nil {
		return nil, err
	}
	chosen = append(chosen, splitList(extra)...)

	result := make([]domain.Synonym, 0, len(chosen))
	for _, syn := range chosen {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sentence, err := f.selectExample(ctx, syn)
		if err != nil {
			return nil, err
		}
		if sentence == "" {
			f.log.DebugContext(ctx, "synonym skipped", slog.String("synonym", syn))
			continue
		}

		ordinal := len(result) + 1
		example, err := f.selectCloze(sentence, syn, ordinal)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.Synonym{Word: domain.Capitalize(syn), Example: example})
	}

	f.log.InfoContext(ctx, "curation finished",
		slog.Int("candidates", len(candidates)),
		slog.Int("accepted", len(result)),
	)
	return result, nil
}

func (f *Flow) selectSynonyms(word string, candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		f.prompt.Printf("No synonyms found for %q\n", word)
		return nil, nil
	}

	f.prompt.Printf("Synonyms for %q:\n", word)
	for i, c := range candidates {
		f.prompt.Printf("  %d. %s\n", i+1, c)
	}

	sel, err := f.prompt.AskIndices("Choose synonyms", len(candidates))
	if err != nil {
		return nil, err
	}
	if sel.Skip {
		return nil, nil
	}

	chosen := make([]string, 0, len(sel.Indices))
	for _, i := range sel.Indices {
		chosen = append(chosen, candidates[i-1])
	}
	return chosen, nil
}

// selectExample returns the sentence for syn, or "" when the operator skips it.
func (f *Flow) selectExample(ctx context.Context, syn string) (string, error) {
	ownQuestion := fmt.Sprintf("Write an example for %q (empty to skip)", syn)

	w, err := f.words.FetchWord(ctx, domain.NormalizeText(syn))
	if err != nil {
		f.log.WarnContext(ctx, "meaning lookup failed",
			slog.String("synonym", syn),
			slog.String("kind", domain.KindOf(err).String()),
			slog.String("error", err.Error()),
		)
		f.prompt.Printf("Could not look up %q: %v\n", syn, err)
		return f.prompt.AskLine(ownQuestion)
	}

	var examples []string
	f.prompt.Printf("Meanings of %q:\n", syn)
	for _, m := range w.Meanings {
		f.prompt.Printf("  - %s\n", m.Definition)
		for _, ex := range m.Examples {
			examples = append(examples, ex)
			f.prompt.Printf("      %d. %s\n", len(examples), ex)
		}
	}
	if len(examples) == 0 {
		return f.prompt.AskLine(ownQuestion)
	}

	own := len(examples) + 1
	f.prompt.Printf("  %d. Write my own\n", own)
	sel, err := f.prompt.AskIndex("Choose an example", own)
	if err != nil {
		return "", err
	}
	switch {
	case sel.Skip:
		return "", nil
	case sel.Indices[0] == own:
		return f.prompt.AskLine(ownQuestion)
	default:
		return examples[sel.Indices[0]-1], nil
	}
}

func (f *Flow) selectCloze(sentence, syn string, ordinal int) (string, error) {
	tokens := cloze.Tokenize(sentence, syn)
	if len(tokens) == 0 {
		return sentence, nil
	}

	parts := make([]string, len(tokens))
	for i, t := range tokens {
		text := t.Text
		if t.Plausible {
			text = "*" + text + "*"
		}
		parts[i] = fmt.Sprintf("%d:%s", t.Position, text)
	}
	f.prompt.Printf("%s\n", strings.Join(parts, " "))

	sel, err := f.prompt.AskIndices("Choose words to hide", len(tokens))
	if err != nil {
		return "", err
	}
	if sel.Skip {
		return sentence, nil
	}
	return cloze.Apply(sentence, ordinal, cloze.SelectTokens(tokens, sel.Indices)), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
