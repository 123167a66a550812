// Package wiktionary looks words up on a Wiktionary mirror: article pages for
// senses and examples, and the open-search API for title suggestions.
package wiktionary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/heartmarshall/ankiwiktionary/internal/config"
	"github.com/heartmarshall/ankiwiktionary/internal/domain"
	"github.com/heartmarshall/ankiwiktionary/internal/provider"
)

type fetcher interface {
	Get(ctx context.Context, rawURL string, header http.Header) (*provider.Page, error)
}

// Provider fetches and parses Wiktionary pages.
type Provider struct {
	pageURL string
	apiURL  string
	limit   int
	fetcher fetcher
	log     *slog.Logger
}

// NewProvider creates a Provider for the mirror described by cfg.
func NewProvider(cfg config.WiktionaryConfig, f fetcher, logger *slog.Logger) *Provider {
	limit := cfg.SearchLimit
	if limit <= 0 {
		limit = 10
	}
	return &Provider{
		pageURL: cfg.PageURL,
		apiURL:  cfg.APIURL,
		limit:   limit,
		fetcher: f,
		log:     logger.With("adapter", "wiktionary"),
	}
}

// FetchWord downloads the article for word and extracts its senses.
// Every call hits the network; nothing is cached.
func (p *Provider) FetchWord(ctx context.Context, word string) (domain.Word, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return domain.Word{}, domain.NewValidationError("word", "required")
	}

	pageURL := joinPath(p.pageURL, word)
	p.log.DebugContext(ctx, "wiktionary page request", slog.String("url", pageURL))

	page, err := p.fetcher.Get(ctx, pageURL, nil)
	if err != nil {
		return domain.Word{}, fmt.Errorf("wiktionary: %w", err)
	}

	if page.StatusCode == http.StatusNotFound {
		return domain.Word{}, fmt.Errorf("wiktionary: word %q: %w", word, domain.ErrNotFound)
	}
	if !page.OK() {
		return domain.Word{}, fmt.Errorf("wiktionary: %w", &domain.StatusError{URL: pageURL, StatusCode: page.StatusCode})
	}

	doc, err := html.Parse(bytes.NewReader(page.Body))
	if err != nil {
		return domain.Word{}, fmt.Errorf("wiktionary: parse page: %w: %w", domain.ErrParse, err)
	}

	w, err := Extract(doc, word)
	if err != nil {
		return domain.Word{}, fmt.Errorf("wiktionary: %w", err)
	}

	p.log.DebugContext(ctx, "wiktionary word parsed", slog.Int("meanings", len(w.Meanings)))
	return w, nil
}

// Search returns up to the configured number of page titles suggested for
// query, in the order the API returns them. A blank query returns an empty result.
func (p *Provider) Search(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}

	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("search", query)
	params.Set("namespace", "0")
	params.Set("limit", strconv.Itoa(p.limit))
	reqURL := p.apiURL + "?" + params.Encode()

	page, err := p.fetcher.Get(ctx, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wiktionary search: %w", err)
	}
	if !page.OK() {
		return nil, fmt.Errorf("wiktionary search: %w", &domain.StatusError{URL: reqURL, StatusCode: page.StatusCode})
	}

	titles, err := decodeOpenSearch(page.Body)
	if err != nil {
		return nil, fmt.Errorf("wiktionary search: %w", err)
	}
	if len(titles) > p.limit {
		titles = titles[:p.limit]
	}

	p.log.DebugContext(ctx, "wiktionary search", slog.String("query", query), slog.Int("results", len(titles)))
	return titles, nil
}

// joinPath appends the escaped word to base, the way a path segment is appended.
func joinPath(base, word string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + url.PathEscape(word)
}

// decodeOpenSearch reads the titles from an open-search response:
// [query, [titles...], [descriptions...], [urls...]].
func decodeOpenSearch(body []byte) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode json: %w: %w", domain.ErrParse, err)
	}
	if len(raw) < 2 {
		return nil, fmt.Errorf("decode json: %w: expected at least 2 elements, got %d", domain.ErrParse, len(raw))
	}

	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return nil, fmt.Errorf("decode titles: %w: %w", domain.ErrParse, err)
	}

	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
