package handler

import (
	"log/slog"
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Storage   string `json:"storage"`
	Message   string `json:"message,omitempty"`
}

// Health handles GET /api/health. It pings the record store.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ts := h.now().UTC().Format(time.RFC3339Nano)
	if err := h.db.Ping(r.Context()); err != nil {
		slog.WarnContext(r.Context(), "health check failed", "storage", h.storage, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:    "unhealthy",
			Timestamp: ts,
			Storage:   h.storage,
			Message:   "storage unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: ts,
		Storage:   h.storage,
	})
}
