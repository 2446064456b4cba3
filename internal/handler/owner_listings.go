package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/repository"
	"github.com/iliyamo/land-marketplace/internal/validator"
)

// OwnerHandler serves the authenticated listing management endpoints.
// Ownership of :id routes is enforced by middleware.RequireListingOwner.
type OwnerHandler struct {
	Store ListingStore
}

// NewOwnerHandler constructs an OwnerHandler and panics if store is nil.
func NewOwnerHandler(store ListingStore) *OwnerHandler {
	if store == nil {
		panic("nil store passed to NewOwnerHandler")
	}
	return &OwnerHandler{Store: store}
}

type createListingReq struct {
	Title        string   `json:"title" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Price        float64  `json:"price" validate:"gt=0"`
	PlotSize     string   `json:"plotSize" validate:"required"`
	Type         string   `json:"type" validate:"required,oneof=residential commercial agricultural"`
	Availability string   `json:"availability" validate:"omitempty,oneof=available sold pending"`
	Description  string   `json:"description" validate:"required"`
	Images       []string `json:"images" validate:"required,min=1"`
	Features     []string `json:"features"`
}

func (r createListingReq) fields() model.ListingFields {
	avail := model.Availability(r.Availability)
	if avail == "" {
		avail = model.Available
	}
	return model.ListingFields{
		Title:        r.Title,
		Location:     r.Location,
		Price:        r.Price,
		PlotSize:     r.PlotSize,
		Type:         model.ListingType(r.Type),
		Availability: avail,
		Description:  r.Description,
		Images:       r.Images,
		Features:     r.Features,
	}
}

type myListingsResp struct {
	Data  []listingView         `json:"data"`
	Stats repository.OwnerStats `json:"stats"`
}

// CreateListing validates the body, snapshots the caller as owner and adds
// the listing.
func (h *OwnerHandler) CreateListing(c echo.Context) error {
	id, ok := currentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createListingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validator.FirstError(err)})
	}
	f := req.fields().Normalize().WithOwner(id)
	if err := f.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	l := h.Store.Add(c.Request().Context(), f)
	return c.JSON(http.StatusCreated, viewOf(l))
}

// UpdateListing applies a partial update.  id, ownerId and createdAt in
// the body are ignored.
func (h *OwnerHandler) UpdateListing(c echo.Context) error {
	var patch model.ListingPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	l, err := h.Store.Update(c.Request().Context(), c.Param("id"), patch)
	switch {
	case errors.Is(err, repository.ErrInvalidPatch):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrListingNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, viewOf(l))
}

// DeleteListing removes the listing.
func (h *OwnerHandler) DeleteListing(c echo.Context) error {
	if !h.Store.Delete(c.Request().Context(), c.Param("id")) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// MyListings returns every listing of the caller regardless of
// availability, plus dashboard counts.
func (h *OwnerHandler) MyListings(c echo.Context) error {
	id, ok := currentIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	owned := h.Store.ListByOwner(c.Request().Context(), id.ID)
	return c.JSON(http.StatusOK, myListingsResp{
		Data:  viewsOf(owned),
		Stats: repository.StatsOf(owned),
	})
}
