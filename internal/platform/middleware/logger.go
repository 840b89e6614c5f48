// Package middleware holds the request-scoped HTTP middleware: request ids,
// access logging, and panic recovery.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nursemed/homecare/internal/platform/auth"
)

// Logger emits one access-log line per request. Requests that resolved a
// nurse identity carry its id, so access to clinical records can be traced
// back to an account.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			// Re-read the request: the auth middleware swaps it out to
			// attach the resolved identity.
			req := c.Request()
			rid, _ := c.Get(requestIDKey).(string)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())
			if id := auth.IdentityFromContext(req.Context()); id != nil {
				evt.Str("nurse_id", id.ID)
			}
			evt.Msg("request")

			return err
		}
	}
}
