package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ledgerHeaders go on every response. Balances and statements must never
// be stored by a browser or an intermediary.
var ledgerHeaders = http.Header{
	"X-Content-Type-Options":  {"nosniff"},
	"X-Frame-Options":         {"DENY"},
	"Content-Security-Policy": {"default-src 'none'; frame-ancestors 'none'"},
	"Referrer-Policy":         {"no-referrer"},
	"Cache-Control":           {"no-store, no-cache, must-revalidate, private"},
	"Pragma":                  {"no-cache"},
}

const hstsValue = "max-age=31536000; includeSubDomains"

// SecurityHeaders hardens ledger responses. HSTS is left out in
// development, where the server is reached over plain HTTP, and the
// metrics endpoint keeps its own caching headers.
func SecurityHeaders(development bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			metrics := strings.HasPrefix(c.Request().URL.Path, "/metrics")
			for name, values := range ledgerHeaders {
				if metrics && (name == "Cache-Control" || name == "Pragma") {
					continue
				}
				h.Set(name, values[0])
			}
			if !development {
				h.Set("Strict-Transport-Security", hstsValue)
			}
			// clients correlate failures through the trace id
			h.Set("Access-Control-Expose-Headers", TraceIDHeader)

			return next(c)
		}
	}
}
