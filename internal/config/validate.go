package config

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validateURL(c.Wiktionary.PageURL); err != nil {
		return fmt.Errorf("wiktionary.page_url: %w", err)
	}
	if err := validateURL(c.Wiktionary.APIURL); err != nil {
		return fmt.Errorf("wiktionary.api_url: %w", err)
	}
	if c.Wiktionary.SearchLimit < 1 || c.Wiktionary.SearchLimit > 500 {
		return fmt.Errorf("wiktionary.search_limit must be in [1, 500] (got %d)", c.Wiktionary.SearchLimit)
	}

	if err := validateURL(c.Synonyms.BaseURL); err != nil {
		return fmt.Errorf("synonyms.base_url: %w", err)
	}

	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must be >= 0 (got %v)", c.HTTP.Timeout)
	}
	if c.HTTP.Retries < 0 {
		return fmt.Errorf("http.retries must be >= 0 (got %d)", c.HTTP.Retries)
	}

	if err := c.Cards.validate(); err != nil {
		return fmt.Errorf("cards: %w", err)
	}

	if c.Log.File != "" && c.Log.MaxSizeMB < 1 {
		return fmt.Errorf("log.max_size_mb must be >= 1 (got %d)", c.Log.MaxSizeMB)
	}

	return nil
}

func (c *CardsConfig) validate() error {
	if c.MaxExamples < 0 {
		return fmt.Errorf("max_examples must be >= 0 (got %d)", c.MaxExamples)
	}

	d, err := ParseDelimiter(c.CSVDelimiter)
	if err != nil {
		return fmt.Errorf("csv_delimiter: %w", err)
	}
	c.Delimiter = d

	return nil
}

// ParseDelimiter parses a single-character CSV delimiter.
func ParseDelimiter(raw string) (rune, error) {
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("must be exactly one character (got %q)", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", raw)
	}
	return r, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}
