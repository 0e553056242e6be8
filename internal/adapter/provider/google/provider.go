// Package google scrapes translated word meanings from a Google "define"
// search results page.
package google

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/vocab-helper/internal/config"
	"github.com/heartmarshall/vocab-helper/internal/domain"
)

type fetcher interface {
	Get(ctx context.Context, rawURL string, query map[string]string) ([]byte, error)
}

// Provider is the definition source. Each definition block on the results
// page carries a part-of-speech label and a list of glosses in the target
// language; blocks missing either are skipped.
type Provider struct {
	fetch         fetcher
	searchURL     string
	language      string
	blockSelector string
	posSelector   string
	log           *slog.Logger
}

// NewProvider creates a Provider from the lookup configuration.
func NewProvider(fetch fetcher, cfg config.LookupConfig, logger *slog.Logger) *Provider {
	return &Provider{
		fetch:         fetch,
		searchURL:     strings.TrimRight(cfg.GoogleBaseURL, "/") + "/search",
		language:      cfg.Language,
		blockSelector: cfg.BlockSelector,
		posSelector:   cfg.POSSelector,
		log:           logger.With("adapter", "google"),
	}
}

// FetchMeanings returns the translated meanings of word grouped by part of
// speech. Returns an error wrapping domain.ErrNotFound when the page has no
// usable definition block.
func (p *Provider) FetchMeanings(ctx context.Context, word string) ([]domain.Meaning, error) {
	body, err := p.fetch.Get(ctx, p.searchURL, map[string]string{
		"q":  word + " define",
		"hl": "en",
	})
	if err != nil {
		return nil, fmt.Errorf("google: %w", err)
	}

	meanings, err := p.parse(body)
	if err != nil {
		return nil, fmt.Errorf("google: %w", err)
	}

	p.log.DebugContext(ctx, "google meanings parsed",
		slog.String("word", word),
		slog.Int("groups", len(meanings)),
	)

	if len(meanings) == 0 {
		return nil, fmt.Errorf("google: %q: %w", word, domain.ErrNotFound)
	}
	return meanings, nil
}

func (p *Provider) parse(body []byte) ([]domain.Meaning, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w: %w", domain.ErrParse, err)
	}

	glossSelector := fmt.Sprintf("span[lang=%q]", p.language)

	var meanings []domain.Meaning
	doc.Find(p.blockSelector).Each(func(_ int, block *goquery.Selection) {
		pos := block.Find(p.posSelector).First()
		if pos.Length() == 0 {
			return
		}

		var glosses []string
		block.Find(glossSelector).Each(func(_ int, span *goquery.Selection) {
			if text := domain.CleanWord(span.Text()); text != "" {
				glosses = append(glosses, text)
			}
		})
		if len(glosses) == 0 {
			return
		}

		meanings = append(meanings, domain.Meaning{
			PartOfSpeech: domain.CleanWord(pos.Text()),
			Glosses:      glosses,
		})
	})

	return meanings, nil
}
