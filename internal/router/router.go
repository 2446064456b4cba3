package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/handler"
	"github.com/iliyamo/land-marketplace/internal/middleware"
)

// RegisterRoutes registers routes that do not belong to the versioned API.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo, store handler.SaveErrorReporter) {
	e.GET("/healthz", handler.Health(store))
}

// RegisterAuth registers the mock identity provider.  Register and login
// live under /v1/auth; /v1/me requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	e.GET("/v1/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterPublic registers the unauthenticated browse, detail, visit and
// contact endpoints.  cache wraps the read endpoints only.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, i *handler.InquiryHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.GET("/listings", p.ListListings, cache)
	g.GET("/listings/:id", p.GetListing, cache)
	g.POST("/listings/:id/visits", i.ScheduleVisit)
	g.POST("/contact", i.Contact)
}
