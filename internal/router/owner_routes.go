package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/handler"
	"github.com/iliyamo/land-marketplace/internal/middleware"
)

// RegisterOwner registers the listing management endpoints under /v1.  All
// of them require a valid JWT; routes on an existing listing additionally
// require the caller to own it.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, store middleware.ListingGetter, jwtSecret string) {
	auth := middleware.JWTAuth(jwtSecret)
	owner := middleware.RequireListingOwner(store)

	g := e.Group("/v1")
	g.POST("/listings", o.CreateListing, auth)
	g.PUT("/listings/:id", o.UpdateListing, auth, owner)
	g.PATCH("/listings/:id", o.UpdateListing, auth, owner)
	g.DELETE("/listings/:id", o.DeleteListing, auth, owner)
	g.GET("/my-listings", o.MyListings, auth)
}
