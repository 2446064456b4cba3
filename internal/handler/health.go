package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SaveErrorReporter exposes the outcome of the last snapshot write.
type SaveErrorReporter interface {
	LastSaveError() error
}

// Health is a health check for load balancers and monitoring.  It answers
// "ok", or "degraded" while the last snapshot write has failed; the
// service keeps serving from memory either way.
func Health(store SaveErrorReporter) echo.HandlerFunc {
	return func(c echo.Context) error {
		if store != nil && store.LastSaveError() != nil {
			return c.String(http.StatusOK, "degraded")
		}
		return c.String(http.StatusOK, "ok")
	}
}
