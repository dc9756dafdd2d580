package handler

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger *log.Logger
}

// NewHealthHandler returns a health check. db may be nil when the process
// has no database of its own.
func NewHealthHandler(db Pinger, logger *log.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	// Dashboard tanpa database sendiri cukup melaporkan bahwa prosesnya hidup
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		// Ping database untuk memeriksa koneksi
		if err := h.db.PingContext(ctx); err != nil {
			h.logger.Printf("Health check failed: database connection error: %v", err)
			respondWithError(w, r, http.StatusServiceUnavailable, "Database connection failed")
			return
		}
	}

	respondWithJson(w, http.StatusOK, map[string]string{"status": "ok"})
}
