package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/cheickthiam/portfolio/internal/api"
)

// DatabaseState reports the database connection state for health checks.
type DatabaseState interface {
	State(ctx context.Context) string
}

type HealthHandler struct {
	db DatabaseState
}

func NewHealthHandler(db DatabaseState) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health always answers 200; the database field carries the connection state.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	api.JSON(w, http.StatusOK, map[string]string{
		"status":   "OK",
		"message":  "Backend is running",
		"database": h.db.State(ctx),
	})
}
