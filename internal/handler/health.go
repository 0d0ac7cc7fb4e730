package handler

import (
	"net/http"

	"github.com/forgo/datematch/api/internal/database"
)

// HealthHandler handles the liveness endpoint
type HealthHandler struct {
	store database.KeyValueStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store database.KeyValueStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health - report service and store health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
		})
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
