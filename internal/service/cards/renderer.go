// Package cards renders domain records into flashcard bodies.
package cards

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"text/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
)

//go:embed templates/*
var templatesFS embed.FS

const (
	wordCardTemplate    = "word_card.html"
	synonymCardTemplate = "synonym_card.md"
)

// DefaultMaxExamples is the number of examples kept per meaning on a word card.
const DefaultMaxExamples = 3

// Renderer fills card templates. It is safe for concurrent use once built.
type Renderer struct {
	maxExamples int
	word        *htmltemplate.Template
	synonym     *template.Template
}

// NewRenderer parses the embedded templates. maxExamples limits the examples
// per meaning on word cards; a negative value keeps all of them.
func NewRenderer(maxExamples int) (*Renderer, error) {
	word, err := htmltemplate.ParseFS(templatesFS, "templates/"+wordCardTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", wordCardTemplate, err)
	}

	synonym, err := template.New(synonymCardTemplate).
		Funcs(template.FuncMap{"ordinal": func(i int) int { return i + 1 }}).
		ParseFS(templatesFS, "templates/"+synonymCardTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", synonymCardTemplate, err)
	}

	return &Renderer{maxExamples: maxExamples, word: word, synonym: synonym}, nil
}

// RenderWordCard renders the HTML body of a word card. Text is escaped.
func (r *Renderer) RenderWordCard(w domain.Word) (string, error) {
	var buf bytes.Buffer
	if err := r.word.ExecuteTemplate(&buf, wordCardTemplate, w.WithExampleLimit(r.maxExamples)); err != nil {
		return "", fmt.Errorf("render word card %q: %w", w.Word, err)
	}
	return buf.String(), nil
}

// RenderSynonymCard renders a Markdown card listing the curated synonyms of
// word in order. An empty list yields a card with only the headword.
func (r *Renderer) RenderSynonymCard(word string, syns []domain.Synonym) (string, error) {
	data := struct {
		Word     string
		Synonyms []domain.Synonym
	}{Word: word, Synonyms: syns}

	var buf bytes.Buffer
	if err := r.synonym.ExecuteTemplate(&buf, synonymCardTemplate, data); err != nil {
		return "", fmt.Errorf("render synonym card %q: %w", word, err)
	}
	return buf.String(), nil
}

// MarkdownToHTML converts a rendered Markdown card to an HTML preview.
func MarkdownToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank})
	return markdown.Render(doc, renderer)
}
