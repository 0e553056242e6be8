// Package ctxutil carries request-scoped identifiers through a context so
// log records can be correlated.
package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	wordKey      ctxKey = "word"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithWord stores the word a lookup is running for.
func WithWord(ctx context.Context, word string) context.Context {
	return context.WithValue(ctx, wordKey, word)
}

// WordFromCtx returns the word stored by WithWord, or "".
func WordFromCtx(ctx context.Context) string {
	w, _ := ctx.Value(wordKey).(string)
	return w
}
