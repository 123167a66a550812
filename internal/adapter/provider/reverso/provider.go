// Package reverso scrapes synonym lists from a Reverso-style synonym site.
package reverso

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/heartmarshall/ankiwiktionary/internal/config"
	"github.com/heartmarshall/ankiwiktionary/internal/domain"
	"github.com/heartmarshall/ankiwiktionary/internal/provider"
)

type fetcher interface {
	Get(ctx context.Context, rawURL string, header http.Header) (*provider.Page, error)
}

// Provider fetches synonyms for a word.
type Provider struct {
	baseURL   string
	userAgent string
	fetcher   fetcher
	log       *slog.Logger
}

// NewProvider creates a Provider for the site described by cfg.
func NewProvider(cfg config.SynonymsConfig, f fetcher, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		fetcher:   f,
		log:       logger.With("adapter", "reverso"),
	}
}

// FetchSynonyms returns the relevant synonyms of word in page order.
// Duplicates are kept. A non-2xx response is an error.
func (p *Provider) FetchSynonyms(ctx context.Context, word string) ([]string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	base := p.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	reqURL := base + url.PathEscape(word)

	header := http.Header{}
	if p.userAgent != "" {
		header.Set("User-Agent", p.userAgent)
	}

	page, err := p.fetcher.Get(ctx, reqURL, header)
	if err != nil {
		return nil, fmt.Errorf("reverso: %w", err)
	}
	if !page.OK() {
		return nil, fmt.Errorf("reverso: %w", &domain.StatusError{URL: reqURL, StatusCode: page.StatusCode})
	}

	doc, err := html.Parse(bytes.NewReader(page.Body))
	if err != nil {
		return nil, fmt.Errorf("reverso: parse page: %w: %w", domain.ErrParse, err)
	}

	synonyms := ExtractSynonyms(doc)
	p.log.DebugContext(ctx, "reverso synonyms parsed", slog.Int("count", len(synonyms)))
	return synonyms, nil
}

// ExtractSynonyms returns the text of every anchor marked as a relevant synonym.
func ExtractSynonyms(doc *html.Node) []string {
	out := []string{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.A && hasClasses(n, "synonym", "relevant") {
			if s := strings.Join(strings.Fields(text(n)), " "); s != "" {
				out = append(out, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return out
}

func hasClasses(n *html.Node, want ...string) bool {
	var classes []string
	for _, a := range n.Attr {
		if a.Key == "class" {
			classes = strings.Fields(a.Val)
			break
		}
	}
	for _, w := range want {
		found := false
		for _, c := range classes {
			if c == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func text(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(text(c))
	}
	return b.String()
}
