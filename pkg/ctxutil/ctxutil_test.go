package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFromCtx(ctx))
	assert.Empty(t, RequestIDFromCtx(context.Background()))
}

func TestWord_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithWord(context.Background(), "abate")
	assert.Equal(t, "abate", WordFromCtx(ctx))
	assert.Empty(t, WordFromCtx(context.Background()))

	// Keys do not collide.
	assert.Empty(t, RequestIDFromCtx(ctx))
}
