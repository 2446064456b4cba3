package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/log"
)

// Request log thresholds.  Fast successful requests are not logged.
const (
	slowRequest      = 500 * time.Millisecond
	errorStatusFloor = http.StatusBadRequest
)

// RequestLogger logs slow (>= 500ms) or failed (>= 400) requests through
// the structured logger.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the response so the status is final
				c.Error(err)
			}
			latency := time.Since(start)
			status := c.Response().Status
			if !shouldLogRequest(status, latency) {
				return nil
			}

			req := c.Request()
			entry := log.Log().WithFields(log.Fields{
				"method":  req.Method,
				"path":    req.URL.Path,
				"status":  status,
				"latency": latency.String(),
				"ip":      c.RealIP(),
			})
			if err != nil {
				entry = entry.WithError(err)
			}
			if status >= http.StatusInternalServerError {
				entry.Error("request failed")
			} else {
				entry.Warn("request")
			}
			return nil
		}
	}
}

func shouldLogRequest(status int, latency time.Duration) bool {
	return status >= errorStatusFloor || latency >= slowRequest
}
