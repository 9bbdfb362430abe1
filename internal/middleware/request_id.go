package middleware

import (
	"banking-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader = "X-Trace-ID"
	// CorrelationIDHeader is read when a client sends no trace ID
	CorrelationIDHeader = "X-Correlation-ID"
	TraceIDContextKey   = "trace_id"

	maxTraceIDLength = 64
)

// RequestID tags every request with the id its audit events and error
// bodies carry. A caller's id is kept only when it is safe to echo into
// logs; anything else is replaced with a fresh UUID.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			id := incomingID(req.Header.Get(TraceIDHeader), req.Header.Get(CorrelationIDHeader))
			c.Set(TraceIDContextKey, id)
			c.SetRequest(req.WithContext(services.WithCorrelationID(req.Context(), id)))
			c.Response().Header().Set(TraceIDHeader, id)

			return next(c)
		}
	}
}

func incomingID(candidates ...string) string {
	for _, id := range candidates {
		if safeTraceID(id) {
			return id
		}
	}
	return uuid.NewString()
}

func safeTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}
	return true
}

// GetTraceID returns the id RequestID stored, or "" outside the middleware.
func GetTraceID(c echo.Context) string {
	id, _ := c.Get(TraceIDContextKey).(string)
	return id
}
