// Package httphandler implements the JSON API driving adapter.
package httphandler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ericfisherdev/deploydrop/internal/domain/model"
)

// NotificationReader is the application capability the notification endpoint needs.
type NotificationReader interface {
	Current(ctx context.Context) (model.Notification, error)
}

// StorePinger reports whether the submission store is reachable.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	notifications NotificationReader
	store         StorePinger
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
// store may be nil, in which case the health endpoint does not ping anything.
func NewHandler(notifications NotificationReader, store StorePinger, logger *slog.Logger) *Handler {
	return &Handler{
		notifications: notifications,
		store:         store,
		logger:        logger,
	}
}

// RegisterAPIRoutes registers the JSON endpoints on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /notification", h.Notification)
	mux.HandleFunc("GET /healthz", h.Health)
}

// Notification returns the current notification message.
func (h *Handler) Notification(w http.ResponseWriter, r *http.Request) {
	n, err := h.notifications.Current(r.Context())
	if err != nil {
		h.logger.Error("failed to read notification", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, NotificationResponse{Message: n.Message})
}

// Health reports liveness and store reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "store unavailable")
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
