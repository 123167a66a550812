package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/ankiwiktionary/internal/adapter/provider/reverso"
	"github.com/heartmarshall/ankiwiktionary/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/ankiwiktionary/internal/config"
	"github.com/heartmarshall/ankiwiktionary/internal/provider"
	"github.com/heartmarshall/ankiwiktionary/internal/service/cards"
	"github.com/heartmarshall/ankiwiktionary/internal/service/curation"
	"github.com/heartmarshall/ankiwiktionary/internal/service/deck"
)

// Options are the inputs a command invocation provides on top of the config.
type Options struct {
	ConfigPath string
	LogLevel   string // overrides log.level when set

	In       io.Reader // answers to curation prompts
	Out      io.Writer // curation prompts
	Reporter deck.Reporter
}

// App holds the components of one command invocation.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Deck   *deck.Service
}

// New loads configuration, initializes the logger and wires the providers
// and services. One HTTP client is shared by every provider.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger := NewLogger(cfg.Log)

	client := provider.NewHTTPClient(cfg.HTTP)
	fetcher := provider.NewFetcher(client, cfg.HTTP.Retries, logger)

	words := wiktionary.NewProvider(cfg.Wiktionary, fetcher, logger)
	synonyms := reverso.NewProvider(cfg.Synonyms, fetcher, logger)

	renderer, err := cards.NewRenderer(cfg.Cards.MaxExamples)
	if err != nil {
		return nil, fmt.Errorf("init card renderer: %w", err)
	}

	flow := curation.NewFlow(synonyms, words, curation.NewPrompter(opts.In, opts.Out), logger)
	svc := deck.NewService(logger, words, words, flow, renderer, opts.Reporter, cfg.Cards.Delimiter)

	logger.Debug("application initialized",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Duration("http_timeout", cfg.HTTP.Timeout),
	)

	return &App{Config: cfg, Logger: logger, Deck: svc}, nil
}
