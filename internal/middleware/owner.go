package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/repository"
)

// ListingGetter is the part of the listing store the ownership check needs.
type ListingGetter interface {
	GetByID(ctx context.Context, id string) (model.Listing, error)
}

// RequireListingOwner aborts the request unless the authenticated identity
// owns the listing named by the :id path parameter.  It answers 401 without
// an identity, 404 for an unknown listing and 403 for someone else's
// listing.  Owner ids never change, so the check cannot go stale before
// the handler runs.
func RequireListingOwner(store ListingGetter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := CurrentIdentity(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			l, err := store.GetByID(c.Request().Context(), c.Param("id"))
			if errors.Is(err, repository.ErrListingNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
			}
			if l.OwnerID != id.ID {
				return c.JSON(http.StatusForbidden, echo.Map{"error": repository.ErrForbidden.Error()})
			}
			return next(c)
		}
	}
}
