package display

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/heartmarshall/vocab-helper/internal/domain"
	"github.com/heartmarshall/vocab-helper/internal/render"
)

// Terminal prints pending and published lookups to a writer.
// Hide prints nothing; the next card simply scrolls past.
type Terminal struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *render.Terminal
}

// NewTerminal creates a Terminal display writing to w.
func NewTerminal(w io.Writer, renderer *render.Terminal) *Terminal {
	return &Terminal{w: w, renderer: renderer}
}

func (t *Terminal) Pending(_ context.Context, word string) error {
	return t.println(t.renderer.Pending(word))
}

func (t *Terminal) Publish(_ context.Context, result *domain.LookupResult) error {
	return t.println(t.renderer.Result(result))
}

func (t *Terminal) Hide(context.Context) error { return nil }

func (t *Terminal) println(s string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := fmt.Fprintln(t.w, s); err != nil {
		return fmt.Errorf("display: terminal: %w", err)
	}
	return nil
}
