package http_handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/baechuer/blog-api/internal/transport/http/response"
)

type HealthHandler struct {
	db     *sql.DB // nil when running on the in-memory store
	writer *response.Writer
}

func NewHealthHandler(db *sql.DB, writer *response.Writer) *HealthHandler {
	return &HealthHandler{db: db, writer: writer}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"service": "ok"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			status["db"] = "down"
			response.WriteJSON(w, http.StatusServiceUnavailable, response.SuccessBody{
				Success:    false,
				StatusCode: http.StatusServiceUnavailable,
				Message:    "service degraded",
				Data:       status,
			})
			return
		}
		status["db"] = "ok"
	}

	h.writer.OK(w, "service healthy", status)
}
