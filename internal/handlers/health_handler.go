package handlers

import (
	"net/http"
	"time"

	"banking-ledger/internal/errors"
	"banking-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	HealthCheck() error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db        Pinger
	breaker   services.CircuitBreakerInterface
	scheduler services.InterestSchedulerInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db Pinger, breaker services.CircuitBreakerInterface, scheduler services.InterestSchedulerInterface) *HealthCheckHandler {
	return &HealthCheckHandler{
		db:        db,
		breaker:   breaker,
		scheduler: scheduler,
	}
}

// HealthCheck reports database reachability and the store circuit breaker
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}
	if h.breaker.IsOpen() {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Store circuit breaker is open"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"breaker":   h.breaker.GetState().String(),
		"scheduler": h.scheduler.State().String(),
		"time":      time.Now().UTC().Format(time.RFC3339),
	})
}
