package handlers

import (
	"log/slog"

	"banking-ledger/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers report failures through two helpers and never build error
// bodies themselves:
//
//   - SendError for request problems detected in the handler, e.g.
//     SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//   - SendLedgerError for anything returned by a service; the error's own
//     code decides the status; persistence and untyped errors are logged
//     and their details hidden

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendLedgerError translates an error returned by a ledger operation
func SendLedgerError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse := errors.FromError(err, traceID)
	if errorResponse.IsServerError() {
		slog.ErrorContext(c.Request().Context(), "Ledger operation failed",
			"trace_id", traceID,
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
