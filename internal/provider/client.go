// Package provider holds the HTTP plumbing shared by the page providers.
package provider

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/ankiwiktionary/internal/config"
	"github.com/heartmarshall/ankiwiktionary/internal/domain"
)

// retryDelay is the pause between two attempts of the same request.
var retryDelay = 500 * time.Millisecond

// maxBodySize caps how much of a response body is read.
const maxBodySize = 16 << 20

// NewHTTPClient creates the single HTTP client shared by every provider
// of one command invocation.
func NewHTTPClient(cfg config.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// Page is a fetched HTTP response.
type Page struct {
	URL        string
	StatusCode int
	Body       []byte
}

// OK reports whether the response status is 2xx.
func (p *Page) OK() bool {
	return p.StatusCode >= 200 && p.StatusCode < 300
}

// Fetcher issues GET requests with an optional retry on transport errors and 5xx.
type Fetcher struct {
	client  *http.Client
	retries int
	log     *slog.Logger
}

// NewFetcher creates a Fetcher. retries is the number of extra attempts; 0 disables retrying.
func NewFetcher(client *http.Client, retries int, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:  client,
		retries: retries,
		log:     logger,
	}
}

// Get fetches rawURL. Transport failures are wrapped with domain.ErrNetwork;
// non-2xx responses are returned as a Page, not as an error.
func (f *Fetcher) Get(ctx context.Context, rawURL string, header http.Header) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w: %w", rawURL, domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w: %w", domain.ErrNetwork, err)
	}

	f.log.DebugContext(ctx, "http response",
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(body)),
	)

	return &Page{URL: rawURL, StatusCode: resp.StatusCode, Body: body}, nil
}

// doWithRetry executes the request, retrying on 5xx or network errors
// up to f.retries extra times.
func (f *Fetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := f.client.Do(req)

	for attempt := 1; attempt <= f.retries; attempt++ {
		shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
		if !shouldRetry {
			return resp, err
		}

		// Don't retry if context is already cancelled.
		if ctx.Err() != nil {
			return resp, err
		}

		reason := "network error"
		if err == nil && resp != nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
		}
		f.log.WarnContext(ctx, "http retry",
			slog.String("url", req.URL.String()),
			slog.String("reason", reason),
			slog.Int("attempt", attempt),
		)

		// Close body from the failed attempt before retrying.
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}

		resp, err = f.client.Do(req)
	}

	return resp, err
}
