package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dmartell/amorcito-api/internal/database"
	"github.com/dmartell/amorcito-api/internal/logger"
)

// readyzTimeout bounds the database ping so a wedged pool cannot hang
// the probe.
const readyzTimeout = 2 * time.Second

// HealthResponse is the ops-facing probe payload. It stays outside
// the Spanish API envelope; orchestrators only read the status code.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// HandleHealthz reports process liveness
// @Summary Liveness check
// @Description Returns OK while the process is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports readiness, which for this service means the
// progress store answers a ping
// @Summary Readiness check
// @Description Returns OK once the database connection is usable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness probe failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:   "unavailable",
				Database: "unreachable",
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
	}
}
