// Package browser drives the live flashcard page over the Chrome DevTools
// Protocol. It reads the card state for the watcher and injects the lookup
// panel into the page.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/heartmarshall/vocab-helper/internal/config"
	"github.com/heartmarshall/vocab-helper/internal/watch"
)

// Session is one browser tab showing the host page.
type Session struct {
	log         *slog.Logger
	host        config.HostConfig
	tabCtx      context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
}

// Start launches (or attaches to) Chrome, opens the host page and waits for
// the flashcard container to appear.
func Start(ctx context.Context, cfg config.BrowserConfig, host config.HostConfig, logger *slog.Logger) (*Session, error) {
	log := logger.With("adapter", "browser")

	allocCtx, allocCancel := newAllocator(cfg)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		}),
	)

	s := &Session{
		log:         log,
		host:        host,
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
		allocCancel: allocCancel,
	}

	// The first Run on a fresh context starts the browser. It must not get
	// a derived context, or the timeout would tear the browser down.
	if err := chromedp.Run(tabCtx); err != nil {
		s.Close()
		return nil, fmt.Errorf("browser: start: %w", err)
	}

	startCtx, cancel := s.bound(ctx, cfg.StartTimeout)
	defer cancel()

	log.InfoContext(ctx, "opening host page", slog.String("url", host.URL))
	err := chromedp.Run(startCtx,
		chromedp.Navigate(host.URL),
		chromedp.WaitReady(host.ContainerSelector, chromedp.ByQuery),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("browser: open %s: %w", host.URL, err)
	}

	return s, nil
}

func newAllocator(cfg config.BrowserConfig) (context.Context, context.CancelFunc) {
	if cfg.CDPURL != "" {
		return chromedp.NewRemoteAllocator(context.Background(), cfg.CDPURL)
	}

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("exclude-switches", "enable-automation"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-session-crashed-bubble", true),
		chromedp.WindowSize(1280, 900),
	}
	if cfg.UserDataDir != "" {
		opts = append(opts, chromedp.UserDataDir(cfg.UserDataDir))
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	if cfg.Headless {
		opts = append(opts, chromedp.Headless)
	} else {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	return chromedp.NewExecAllocator(context.Background(), opts...)
}

// Close closes the tab and, for a launched browser, the browser itself.
func (s *Session) Close() {
	s.tabCancel()
	s.allocCancel()
}

// Snapshot reads the current card from the page.
func (s *Session) Snapshot(ctx context.Context) (watch.Snapshot, error) {
	var res snapshotResult
	if err := s.Evaluate(ctx, snapshotScript(s.host), &res); err != nil {
		return watch.Snapshot{}, err
	}
	return res.snapshot(), nil
}

// Ping checks that the tab still answers.
func (s *Session) Ping(ctx context.Context) error {
	var ok bool
	return s.Evaluate(ctx, "true", &ok)
}

// Evaluate runs a JavaScript expression in the tab and decodes its value
// into res. A closed tab or browser is reported as watch.ErrPageClosed.
func (s *Session) Evaluate(ctx context.Context, script string, res any) error {
	if s.tabCtx.Err() != nil {
		return watch.ErrPageClosed
	}

	runCtx, cancel := s.bound(ctx, 0)
	defer cancel()

	if err := chromedp.Run(runCtx, chromedp.Evaluate(script, res)); err != nil {
		if s.tabCtx.Err() != nil {
			return watch.ErrPageClosed
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, context.Canceled) {
			return fmt.Errorf("browser: evaluate: %w", ctxErr)
		}
		return fmt.Errorf("browser: evaluate: %w", err)
	}
	return nil
}

// bound derives a context from the tab that is also cancelled when ctx is
// done, optionally with a timeout.
func (s *Session) bound(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(s.tabCtx, timeout)
	} else {
		runCtx, cancel = context.WithCancel(s.tabCtx)
	}
	stop := context.AfterFunc(ctx, cancel)
	return runCtx, func() {
		stop()
		cancel()
	}
}
