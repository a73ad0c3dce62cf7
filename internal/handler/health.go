package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/StockDesk_Go/internal/database"
	"github.com/osse101/StockDesk_Go/internal/logger"
)

// ReadinessTimeout bounds the database ping in the readiness probe
const ReadinessTimeout = 2 * time.Second

// Probe status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports whether the database answers within ReadinessTimeout
// @Summary Readiness check
// @Description Pings the database and reports the round trip
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		start := time.Now()
		err := dbPool.Ping(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err, "elapsed", elapsed)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: "database connection failed",
				Checks:  map[string]string{"database": StatusUnavailable},
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status: StatusOK,
			Checks: map[string]string{
				"database":         StatusOK,
				"database_latency": elapsed.Round(time.Microsecond).String(),
			},
		})
	}
}
