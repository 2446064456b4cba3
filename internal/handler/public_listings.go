package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/repository"
	"github.com/iliyamo/land-marketplace/internal/utils"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PublicHandler serves the unauthenticated browse and detail views.
type PublicHandler struct {
	Browse Browser
	Store  ListingReader
}

// NewPublicHandler constructs a PublicHandler and panics if a dependency
// is nil.
func NewPublicHandler(browse Browser, store ListingReader) *PublicHandler {
	if browse == nil || store == nil {
		panic("nil dependency passed to NewPublicHandler")
	}
	return &PublicHandler{Browse: browse, Store: store}
}

type browseResp struct {
	Data     []listingView `json:"data"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// ListListings returns the available listings matching q, type and
// price_range, most recent first.  Pagination applies after filtering.
func (h *PublicHandler) ListListings(c echo.Context) error {
	typ, err := repository.ParseListingType(c.QueryParam("type"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	pr, err := repository.ParsePriceRange(c.QueryParam("price_range"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	page, ok := positiveQueryInt(c, "page", 1)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "page must be a positive integer"})
	}
	size, ok := positiveQueryInt(c, "page_size", defaultPageSize)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "page_size must be a positive integer"})
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	matches := h.Browse.Search(c.Request().Context(), repository.ListingSearchQuery{
		SearchTerm: c.QueryParam("q"),
		Type:       typ,
		PriceRange: pr,
	})

	total := len(matches)
	// compare before multiplying so huge page numbers cannot overflow
	start := total
	if page-1 <= total/size {
		start = min((page-1)*size, total)
	}
	end := start + size
	if end > total {
		end = total
	}
	return c.JSON(http.StatusOK, browseResp{
		Data:     viewsOf(matches[start:end]),
		Total:    total,
		Page:     page,
		PageSize: size,
	})
}

// GetListing returns one listing with its price label and contact links.
// Sold and pending listings are still served here.
func (h *PublicHandler) GetListing(c echo.Context) error {
	l, err := h.Store.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repository.ErrListingNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load listing failed"})
	}
	return c.JSON(http.StatusOK, listingDetail{
		listingView: viewOf(l),
		Contact:     utils.ListingContactLinks(l),
	})
}
