// Package hostpage reads the flashcard state from a server-rendered copy of
// the host page. It is the headless alternative to the browser adapter for
// hosts that render the card on the server.
package hostpage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/vocab-helper/internal/config"
	"github.com/heartmarshall/vocab-helper/internal/watch"
)

type fetcher interface {
	Get(ctx context.Context, rawURL string, query map[string]string) ([]byte, error)
}

// Page implements watch.Page by fetching and parsing the host URL.
type Page struct {
	fetch fetcher
	host  config.HostConfig
	log   *slog.Logger
}

// New creates a Page for the configured host.
func New(fetch fetcher, host config.HostConfig, logger *slog.Logger) *Page {
	return &Page{
		fetch: fetch,
		host:  host,
		log:   logger.With("adapter", "hostpage"),
	}
}

// Snapshot fetches the page once and extracts the card.
func (p *Page) Snapshot(ctx context.Context) (watch.Snapshot, error) {
	body, err := p.fetch.Get(ctx, p.host.URL, nil)
	if err != nil {
		return watch.Snapshot{}, fmt.Errorf("hostpage: fetch: %w", err)
	}
	return Parse(body, p.host)
}

// Parse extracts the card state from an HTML document.
func Parse(body []byte, host config.HostConfig) (watch.Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return watch.Snapshot{}, fmt.Errorf("hostpage: parse html: %w", err)
	}

	word := doc.Find(host.WordSelector).First()
	card := doc.Find(host.CardSelector).First()
	if word.Length() == 0 || card.Length() == 0 {
		return watch.Snapshot{}, nil
	}

	return watch.Snapshot{
		Present:  true,
		Word:     strings.TrimSpace(word.Text()),
		Revealed: card.HasClass(host.RevealedClass),
	}, nil
}

// Ping checks that the host page can be fetched.
func (p *Page) Ping(ctx context.Context) error {
	if _, err := p.fetch.Get(ctx, p.host.URL, nil); err != nil {
		return fmt.Errorf("hostpage: ping: %w", err)
	}
	return nil
}
