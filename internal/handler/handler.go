package handler

import (
	"net/http"
	"time"

	"github.com/kipkirui63/all-in-one/internal/repository"
)

// Handler serves the service-level endpoints (health) and the CORS wrapper.
type Handler struct {
	db          repository.DB
	storage     string
	frontendURL string
	now         func() time.Time
}

// New creates a Handler. storage is the backend name reported by Health.
func New(db repository.DB, storage, frontendURL string) *Handler {
	return &Handler{db: db, storage: storage, frontendURL: frontendURL, now: time.Now}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		w.Header().Set("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
