// Package app wires configuration, adapters and services into the runnable
// commands.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocab-helper/internal/adapter/browser"
	"github.com/heartmarshall/vocab-helper/internal/adapter/hostpage"
	"github.com/heartmarshall/vocab-helper/internal/adapter/httpfetch"
	"github.com/heartmarshall/vocab-helper/internal/adapter/postgres"
	"github.com/heartmarshall/vocab-helper/internal/adapter/postgres/journal"
	"github.com/heartmarshall/vocab-helper/internal/adapter/provider/freedict"
	"github.com/heartmarshall/vocab-helper/internal/adapter/provider/google"
	"github.com/heartmarshall/vocab-helper/internal/config"
	"github.com/heartmarshall/vocab-helper/internal/display"
	"github.com/heartmarshall/vocab-helper/internal/domain"
	"github.com/heartmarshall/vocab-helper/internal/lookup"
	"github.com/heartmarshall/vocab-helper/internal/render"
	"github.com/heartmarshall/vocab-helper/internal/transport/rest"
	"github.com/heartmarshall/vocab-helper/internal/watch"
)

// ErrJournalDisabled is returned by commands that need the journal when no
// DSN is configured.
var ErrJournalDisabled = errors.New("journal is not configured (set JOURNAL_DSN)")

// Watch observes the host page and shows a lookup for every revealed card
// until ctx is done or the page is closed. Published results are also
// printed to out.
func Watch(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	logger.InfoContext(ctx, "starting vocab helper",
		slog.String("version", BuildVersion()),
		slog.String("mode", cfg.Host.Mode),
		slog.String("url", cfg.Host.URL),
	)

	client := httpfetch.New(cfg.Lookup.Timeout, cfg.Lookup.UserAgent, logger)
	slot := display.NewSlot()
	displays := display.Multi{
		slot,
		display.NewTerminal(out, render.NewTerminal(render.NewStyles(), cfg.Lookup.Language)),
	}
	checks := map[string]rest.Pinger{}

	var page watch.Page
	switch cfg.Host.Mode {
	case config.HostModeStatic:
		hp := hostpage.New(client, cfg.Host, logger)
		page = hp
		checks["page"] = hp
	default:
		session, err := browser.Start(ctx, cfg.Browser, cfg.Host, logger)
		if err != nil {
			return fmt.Errorf("app: %w", err)
		}
		defer session.Close()
		page = session
		checks["page"] = session
		displays = append(displays, browser.NewPanel(session, cfg.Lookup.Language))
	}

	opts := []lookup.Option{lookup.WithTimeout(cfg.Lookup.Timeout)}
	var history *journal.Repo
	if cfg.Journal.Enabled() {
		pool, err := openJournal(ctx, cfg.Journal, logger)
		if err != nil {
			return err
		}
		defer pool.Close()
		history = journal.New(pool)
		opts = append(opts, lookup.WithRecorder(history))
		checks["journal"] = pool
	}

	definitions, audio := newSources(cfg.Lookup, client, logger)
	dispatcher := lookup.NewDispatcher(logger, definitions, audio, displays, opts...)
	detector := watch.NewDetector(page, cfg.Host.PollInterval, logger)

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan watch.Event, 16)

	g.Go(func() error { return detector.Run(gctx, events) })
	g.Go(func() error { return dispatcher.Run(gctx, events) })

	if cfg.Server.Enabled {
		var status historySource
		if history != nil {
			status = history
		}
		handler := rest.NewRouter(
			rest.NewHealthHandler(checks, BuildVersion()),
			rest.NewStatusHandler(dispatcher, slot, status, logger),
			cfg.Server.AllowedOrigins,
			logger,
		)
		serve(gctx, g, cfg.Server, handler, logger)
	}

	err := g.Wait()
	if errors.Is(err, watch.ErrPageClosed) {
		logger.InfoContext(ctx, "host page closed, stopping")
		return nil
	}
	return err
}

// historySource lets a nil *journal.Repo reach the router as a nil interface.
type historySource interface {
	List(ctx context.Context, filter journal.Filter) ([]domain.JournalEntry, error)
}

func serve(ctx context.Context, g *errgroup.Group, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) {
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g.Go(func() error {
		logger.InfoContext(ctx, "status server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: status server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown status server: %w", err)
		}
		return nil
	})
}

// Lookup runs a single lookup for word and records it when the journal is
// configured.
func Lookup(ctx context.Context, cfg *config.Config, word string, logger *slog.Logger) (*domain.LookupResult, error) {
	word = domain.CleanWord(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	client := httpfetch.New(cfg.Lookup.Timeout, cfg.Lookup.UserAgent, logger)
	definitions, audio := newSources(cfg.Lookup, client, logger)
	dispatcher := lookup.NewDispatcher(logger, definitions, audio, display.NewSlot(), lookup.WithTimeout(cfg.Lookup.Timeout))

	result := dispatcher.Lookup(ctx, word)

	if cfg.Journal.Enabled() {
		pool, err := openJournal(ctx, cfg.Journal, logger)
		if err != nil {
			logger.WarnContext(ctx, "journal unavailable, lookup not recorded", slog.String("error", err.Error()))
			return result, nil
		}
		defer pool.Close()
		if err := journal.New(pool).Record(ctx, result); err != nil {
			logger.WarnContext(ctx, "journal lookup", slog.String("error", err.Error()))
		}
	}

	return result, nil
}

// History lists recorded lookups, newest first.
func History(ctx context.Context, cfg *config.Config, filter journal.Filter, logger *slog.Logger) ([]domain.JournalEntry, error) {
	if !cfg.Journal.Enabled() {
		return nil, ErrJournalDisabled
	}

	pool, err := openJournal(ctx, cfg.Journal, logger)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return journal.New(pool).List(ctx, filter)
}

func newSources(cfg config.LookupConfig, client *httpfetch.Client, logger *slog.Logger) (*google.Provider, *freedict.Provider) {
	return google.NewProvider(client, cfg, logger),
		freedict.NewProvider(client, cfg.FreeDictBaseURL, logger)
}

func openJournal(ctx context.Context, cfg config.JournalConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	log := logger.With("adapter", "postgres")
	if err := postgres.Migrate(ctx, cfg.DSN, log); err != nil {
		return nil, fmt.Errorf("app: journal: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("app: journal: %w", err)
	}
	return pool, nil
}
