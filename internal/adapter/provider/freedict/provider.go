package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/vocab-helper/internal/domain"
)

type fetcher interface {
	Get(ctx context.Context, rawURL string, query map[string]string) ([]byte, error)
}

// Provider fetches pronunciation data from the FreeDictionary API.
type Provider struct {
	baseURL string
	fetch   fetcher
	log     *slog.Logger
}

// NewProvider creates a Provider for the given API base URL
// (e.g. https://api.dictionaryapi.dev/api/v2/entries/en).
func NewProvider(fetch fetcher, baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetch:   fetch,
		log:     logger.With("adapter", "freedict"),
	}
}

// FetchPronunciation returns the preferred pronunciation of word: the first
// one with audio, otherwise the first transcription-only one.
// Returns an error wrapping domain.ErrNotFound when the API knows no
// pronunciation (including HTTP 404).
func (p *Provider) FetchPronunciation(ctx context.Context, word string) (*domain.Pronunciation, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	body, err := p.fetch.Get(ctx, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w: %w", domain.ErrParse, err)
	}

	prons := mapPronunciations(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("entries", len(entries)),
		slog.Int("pronunciations", len(prons)),
	)

	best := pickPronunciation(prons)
	if best == nil {
		return nil, fmt.Errorf("freedict: %q: %w", word, domain.ErrNotFound)
	}
	return best, nil
}

// mapPronunciations collects phonetics from all entries (one per etymology),
// deduplicated by transcription text. A later duplicate with audio fills in
// the audio of an earlier one without it.
func mapPronunciations(entries []apiEntry) []domain.Pronunciation {
	prons := []domain.Pronunciation{}

	// Key: transcription text, Value: index in prons.
	seenTranscriptions := make(map[string]int)

	for _, entry := range entries {
		for _, ph := range entry.Phonetics {
			pron := mapPhonetic(ph)
			if pron == nil {
				continue
			}

			if pron.Transcription != nil {
				key := *pron.Transcription
				if idx, exists := seenTranscriptions[key]; exists {
					if prons[idx].AudioURL == "" && pron.AudioURL != "" {
						prons[idx].AudioURL = pron.AudioURL
						prons[idx].Region = pron.Region
					}
					continue
				}
				seenTranscriptions[key] = len(prons)
			}

			prons = append(prons, *pron)
		}
	}

	return prons
}

func pickPronunciation(prons []domain.Pronunciation) *domain.Pronunciation {
	for i := range prons {
		if prons[i].AudioURL != "" {
			return &prons[i]
		}
	}
	if len(prons) > 0 {
		return &prons[0]
	}
	return nil
}

// mapPhonetic converts an API phonetic to a Pronunciation.
// Returns nil if both text and audio are empty.
func mapPhonetic(ph apiPhonetic) *domain.Pronunciation {
	if ph.Text == "" && ph.Audio == "" {
		return nil
	}

	pron := &domain.Pronunciation{}

	if ph.Text != "" {
		t := ph.Text
		pron.Transcription = &t
	}

	if ph.Audio != "" {
		pron.AudioURL = ph.Audio
		pron.Region = inferRegion(ph.Audio)
	}

	return pron
}

// inferRegion attempts to determine the pronunciation region from the audio URL.
func inferRegion(audioURL string) *string {
	lower := strings.ToLower(audioURL)
	if strings.Contains(lower, "-us.") || strings.Contains(lower, "-us-") {
		r := "US"
		return &r
	}
	if strings.Contains(lower, "-uk.") || strings.Contains(lower, "-uk-") {
		r := "UK"
		return &r
	}
	return nil
}
