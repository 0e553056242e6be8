package watch

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrPageClosed is returned by a Page whose underlying tab or connection is
// gone for good. Any other Snapshot error is treated as transient absence.
var ErrPageClosed = errors.New("host page closed")

// Page reads the current state of the host page.
type Page interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Detector polls a Page and publishes the Tracker's events.
type Detector struct {
	page     Page
	tracker  *Tracker
	interval time.Duration
	now      func() time.Time
	log      *slog.Logger
}

// NewDetector creates a Detector polling page every interval.
func NewDetector(page Page, interval time.Duration, logger *slog.Logger) *Detector {
	return &Detector{
		page:     page,
		tracker:  NewTracker(),
		interval: interval,
		now:      time.Now,
		log:      logger.With("service", "watch"),
	}
}

// Poll takes one snapshot and returns the events it produced.
func (d *Detector) Poll(ctx context.Context) ([]Event, error) {
	snap, err := d.page.Snapshot(ctx)
	if err != nil {
		if errors.Is(err, ErrPageClosed) {
			return nil, err
		}
		d.log.DebugContext(ctx, "snapshot failed, treating as absent", slog.String("error", err.Error()))
		return nil, nil
	}
	return d.tracker.Observe(snap, d.now()), nil
}

// Run polls until ctx is done or the page closes, sending events to out.
// out is closed when Run returns. A canceled ctx is a clean stop (nil).
func (d *Detector) Run(ctx context.Context, out chan<- Event) error {
	defer close(out)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		events, err := d.Poll(ctx)
		if err != nil {
			d.log.ErrorContext(ctx, "host page closed", slog.String("error", err.Error()))
			return err
		}

		for _, ev := range events {
			d.log.InfoContext(ctx, "card event",
				slog.String("kind", ev.Kind.String()),
				slog.String("word", ev.Word),
			)
			select {
			case out <- ev:
			case <-ctx.Done():
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
