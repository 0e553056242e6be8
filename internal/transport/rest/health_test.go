package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerMock struct {
	err error
}

func (m *pingerMock) Ping(_ context.Context) error {
	return m.err
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestLive_Always200(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{"page": &pingerMock{err: errors.New("gone")}}, "test-version")

	rec := httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pageErr    error
		wantCode   int
		wantStatus string
	}{
		{"page up", nil, http.StatusOK, "ok"},
		{"page down", errors.New("target closed"), http.StatusServiceUnavailable, "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(map[string]Pinger{"page": &pingerMock{err: tt.pageErr}}, "v")
			rec := httptest.NewRecorder()
			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantStatus, decodeHealth(t, rec).Status)
		})
	}
}

func TestHealth_AllOK(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{
		"page":    &pingerMock{},
		"journal": &pingerMock{},
	}, "v1.0.0")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "v1.0.0", resp.Version)
	require.Contains(t, resp.Components, "page")
	require.Contains(t, resp.Components, "journal")
	assert.Equal(t, "ok", resp.Components["journal"].Status)
	assert.NotEmpty(t, resp.Components["journal"].Latency)
}

func TestHealth_JournalDown(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{
		"page":    &pingerMock{},
		"journal": &pingerMock{err: errors.New("connection refused")},
	}, "v1.0.0")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeHealth(t, rec)
	assert.Equal(t, "down", resp.Status)
	assert.Equal(t, "ok", resp.Components["page"].Status)
	assert.Equal(t, "down", resp.Components["journal"].Status)
	assert.Equal(t, "connection refused", resp.Components["journal"].Error)
}

func TestHealth_NilComponentSkipped(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(map[string]Pinger{"page": &pingerMock{}, "journal": nil}, "v")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	resp := decodeHealth(t, rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, resp.Components, "journal")
}
