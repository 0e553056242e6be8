package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/vocab-helper/internal/transport/middleware"
)

// NewRouter mounts the health and status endpoints behind the standard
// middleware chain.
func NewRouter(health *HealthHandler, status *StatusHandler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /api/current", status.Current)
	mux.HandleFunc("GET /api/history", status.History)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(allowedOrigins),
	)(mux)
}
