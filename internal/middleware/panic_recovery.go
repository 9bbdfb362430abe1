package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// ErrHandlerPanic wraps the value recovered from a panicking handler
var ErrHandlerPanic = errors.New("handler panicked")

// PanicRecovery turns a panic into an error so the HTTP error handler
// renders it as SYSTEM_001 and counts it like any other failure.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				logger.ErrorContext(c.Request().Context(), "Panic recovered",
					"trace_id", GetTraceID(c),
					"panic", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack_trace", string(debug.Stack()),
				)
				err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
			}()

			return next(c)
		}
	}
}
