package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/vocab-helper/internal/adapter/postgres/journal"
	"github.com/heartmarshall/vocab-helper/internal/display"
	"github.com/heartmarshall/vocab-helper/internal/domain"
	"github.com/heartmarshall/vocab-helper/internal/lookup"
)

type statusSource interface {
	Status() lookup.Status
}

type currentSource interface {
	Current() display.Snapshot
}

type historySource interface {
	List(ctx context.Context, filter journal.Filter) ([]domain.JournalEntry, error)
}

// StatusHandler exposes what the helper is doing right now and, when the
// journal is configured, what it looked up before.
type StatusHandler struct {
	dispatcher statusSource
	slot       currentSource
	history    historySource
	log        *slog.Logger
}

// NewStatusHandler creates a StatusHandler. history may be nil.
func NewStatusHandler(dispatcher statusSource, slot currentSource, history historySource, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{
		dispatcher: dispatcher,
		slot:       slot,
		history:    history,
		log:        logger.With("handler", "status"),
	}
}

// CurrentResponse is the JSON body of GET /api/current.
type CurrentResponse struct {
	Lookup  lookup.Status    `json:"lookup"`
	Display display.Snapshot `json:"display"`
}

// Current returns the dispatcher state and the displayed result.
// GET /api/current
func (h *StatusHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CurrentResponse{
		Lookup:  h.dispatcher.Status(),
		Display: h.slot.Current(),
	})
}

type historyEntry struct {
	Word        string    `json:"word"`
	HasMeanings bool      `json:"has_meanings"`
	HasAudio    bool      `json:"has_audio"`
	LookedUpAt  time.Time `json:"looked_up_at"`
}

// History lists journal entries, newest first.
// GET /api/history?word=abate&limit=20
func (h *StatusHandler) History(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusNotFound, "journal is not configured")
		return
	}

	filter := journal.Filter{Word: r.URL.Query().Get("word")}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = n
	}

	entries, err := h.history.List(r.Context(), filter)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		h.log.ErrorContext(r.Context(), "list history", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	out := make([]historyEntry, len(entries))
	for i, e := range entries {
		out[i] = historyEntry{
			Word:        e.Word,
			HasMeanings: e.HasMeanings,
			HasAudio:    e.HasAudio,
			LookedUpAt:  e.LookedUpAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
