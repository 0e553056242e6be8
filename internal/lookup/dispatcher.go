// Package lookup runs the external lookups for a revealed word and keeps
// the display in step with the card currently shown.
package lookup

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/vocab-helper/internal/domain"
	"github.com/heartmarshall/vocab-helper/internal/watch"
	"github.com/heartmarshall/vocab-helper/pkg/ctxutil"
)

type definitionSource interface {
	FetchMeanings(ctx context.Context, word string) ([]domain.Meaning, error)
}

type audioSource interface {
	FetchPronunciation(ctx context.Context, word string) (*domain.Pronunciation, error)
}

type recorder interface {
	Record(ctx context.Context, result *domain.LookupResult) error
}

// Display is the surface lookup results are shown on.
type Display interface {
	// Pending shows that a lookup for word has started.
	Pending(ctx context.Context, word string) error
	// Publish replaces whatever is shown with result.
	Publish(ctx context.Context, result *domain.LookupResult) error
	// Hide removes any pending or published result.
	Hide(ctx context.Context) error
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRecorder journals every published result.
func WithRecorder(r recorder) Option {
	return func(d *Dispatcher) { d.recorder = r }
}

// WithTimeout bounds a whole Lookup. Zero means no extra bound.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) { d.timeout = timeout }
}

// Dispatcher fetches and publishes lookup results.
//
// Run is the only writer of the dispatch state; fetches run in their own
// goroutines and hand results back to Run, which drops them when the word
// has changed in the meantime.
type Dispatcher struct {
	log         *slog.Logger
	definitions definitionSource
	audio       audioSource
	display     Display
	recorder    recorder
	timeout     time.Duration
	now         func() time.Time

	mu         sync.RWMutex
	state      State
	word       string
	generation uint64
	fetches    uint64
}

// NewDispatcher creates a Dispatcher. Either source may be nil, in which
// case its field is always absent.
func NewDispatcher(
	logger *slog.Logger,
	definitions definitionSource,
	audio audioSource,
	display Display,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		log:         logger.With("service", "lookup"),
		definitions: definitions,
		audio:       audio,
		display:     display,
		now:         time.Now,
		state:       StateIdle,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Status returns a consistent view of the dispatch state.
func (d *Dispatcher) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Status{State: d.state, Word: d.word, Fetches: d.fetches}
}

// Lookup queries all sources for word concurrently and merges what they
// return. It never fails: a source that errors contributes an absent field.
func (d *Dispatcher) Lookup(ctx context.Context, word string) *domain.LookupResult {
	ctx = ctxutil.WithWord(ctx, word)
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	var (
		meanings []domain.Meaning
		pron     *domain.Pronunciation
		g        errgroup.Group
	)

	if d.definitions != nil {
		g.Go(func() error {
			m, err := d.definitions.FetchMeanings(ctx, word)
			if err != nil {
				d.logFailure(ctx, "definition", word, err)
				return nil
			}
			meanings = m
			return nil
		})
	}
	if d.audio != nil {
		g.Go(func() error {
			p, err := d.audio.FetchPronunciation(ctx, word)
			if err != nil {
				d.logFailure(ctx, "audio", word, err)
				return nil
			}
			pron = p
			return nil
		})
	}
	_ = g.Wait()

	return &domain.LookupResult{
		Word:          word,
		Meanings:      meanings,
		Pronunciation: pron,
		FetchedAt:     d.now(),
	}
}

func (d *Dispatcher) logFailure(ctx context.Context, source, word string, err error) {
	kind := domain.ErrorKind(err)
	level := slog.LevelWarn
	if errors.Is(err, domain.ErrNotFound) || kind == "canceled" {
		level = slog.LevelDebug
	}
	d.log.Log(ctx, level, "lookup source failed",
		slog.String("source", source),
		slog.String("word", word),
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)
}

type settled struct {
	generation uint64
	result     *domain.LookupResult
}

// Run consumes detector events until ctx is done or events is closed.
func (d *Dispatcher) Run(ctx context.Context, events <-chan watch.Event) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan settled)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			d.handle(ctx, ev, results)

		case res := <-results:
			// Apply card changes that are already queued before deciding
			// whether res is still current.
			if !d.drain(ctx, events, results) {
				return nil
			}
			d.settle(ctx, res)
		}
	}
}

// drain handles every event that is immediately available.
// Returns false if events was closed.
func (d *Dispatcher) drain(ctx context.Context, events <-chan watch.Event, results chan<- settled) bool {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			d.handle(ctx, ev, results)
		default:
			return true
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev watch.Event, results chan<- settled) {
	switch ev.Kind {
	case watch.EventWordChanged:
		d.mu.Lock()
		d.generation++
		d.word = ev.Word
		d.state = StateIdle
		d.mu.Unlock()

		if err := d.display.Hide(ctx); err != nil {
			d.log.WarnContext(ctx, "hide display", slog.String("error", err.Error()))
		}

	case watch.EventReveal:
		d.mu.Lock()
		if domain.NormalizeText(ev.Word) != domain.NormalizeText(d.word) {
			d.generation++
			d.word = ev.Word
			d.state = StateIdle
		}
		if d.state == StateFetching {
			d.mu.Unlock()
			d.log.DebugContext(ctx, "lookup already in flight", slog.String("word", ev.Word))
			return
		}
		d.state = StateFetching
		d.fetches++
		gen := d.generation
		word := d.word
		d.mu.Unlock()

		if err := d.display.Pending(ctx, word); err != nil {
			d.log.WarnContext(ctx, "show pending", slog.String("error", err.Error()))
		}

		go func() {
			res := d.Lookup(ctx, word)
			select {
			case results <- settled{generation: gen, result: res}:
			case <-ctx.Done():
			}
		}()
	}
}

func (d *Dispatcher) settle(ctx context.Context, res settled) {
	d.mu.Lock()
	if res.generation != d.generation {
		d.mu.Unlock()
		d.log.DebugContext(ctx, "discarding stale lookup", slog.String("word", res.result.Word))
		return
	}
	d.state = StateDisplayed
	d.mu.Unlock()

	d.log.InfoContext(ctx, "lookup settled",
		slog.String("word", res.result.Word),
		slog.Int("meanings", len(res.result.Meanings)),
		slog.Bool("audio", res.result.HasAudio()),
	)

	if err := d.display.Publish(ctx, res.result); err != nil {
		d.log.WarnContext(ctx, "publish result", slog.String("error", err.Error()))
	}

	if d.recorder != nil {
		if err := d.recorder.Record(ctx, res.result); err != nil {
			d.log.WarnContext(ctx, "journal lookup", slog.String("word", res.result.Word), slog.String("error", err.Error()))
		}
	}
}
