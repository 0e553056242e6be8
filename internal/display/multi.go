package display

import (
	"context"
	"errors"

	"github.com/heartmarshall/vocab-helper/internal/domain"
	"github.com/heartmarshall/vocab-helper/internal/lookup"
)

// Multi fans every call out to several displays. A failing display does not
// stop the others; their errors are joined.
type Multi []lookup.Display

func (m Multi) Pending(ctx context.Context, word string) error {
	return m.each(func(d lookup.Display) error { return d.Pending(ctx, word) })
}

func (m Multi) Publish(ctx context.Context, result *domain.LookupResult) error {
	return m.each(func(d lookup.Display) error { return d.Publish(ctx, result) })
}

func (m Multi) Hide(ctx context.Context) error {
	return m.each(func(d lookup.Display) error { return d.Hide(ctx) })
}

func (m Multi) each(fn func(lookup.Display) error) error {
	var errs []error
	for _, d := range m {
		if d == nil {
			continue
		}
		if err := fn(d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
