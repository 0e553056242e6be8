// Package httpfetch is the shared outbound HTTP client of the lookup sources.
// It maps transport failures and statuses onto the domain error taxonomy so
// sources only have to care about parsing.
package httpfetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/vocab-helper/internal/domain"
)

// Client issues GET requests with a fixed timeout and User-Agent.
// It never retries: a failed request is reported once and the caller
// decides what an absent body means.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New creates a Client. userAgent may be empty.
func New(timeout time.Duration, userAgent string, logger *slog.Logger) *Client {
	r := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept-Language", "en")
	if userAgent != "" {
		r.SetHeader("User-Agent", userAgent)
	}
	return &Client{
		http: r,
		log:  logger.With("adapter", "httpfetch"),
	}
}

// Get fetches rawURL with the given query parameters and returns the body.
//
// Errors wrap domain.ErrNotFound for 404 and domain.ErrNetwork for
// transport failures and any other non-2xx status.
func (c *Client) Get(ctx context.Context, rawURL string, query map[string]string) ([]byte, error) {
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("httpfetch: get %s: %w", rawURL, ctx.Err())
		}
		return nil, fmt.Errorf("httpfetch: get %s: %w: %w", rawURL, domain.ErrNetwork, err)
	}

	c.log.DebugContext(ctx, "http get",
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("duration", time.Since(start)),
		slog.Int("bytes", len(resp.Body())),
	)

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, fmt.Errorf("httpfetch: get %s: %w", rawURL, domain.ErrNotFound)
	case resp.StatusCode() < 200 || resp.StatusCode() > 299:
		return nil, fmt.Errorf("httpfetch: get %s: status %d: %w", rawURL, resp.StatusCode(), domain.ErrNetwork)
	}

	return resp.Body(), nil
}
