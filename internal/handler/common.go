package handler // package handler contains the HTTP handlers of the listings API

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/middleware"
	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/queue"
	"github.com/iliyamo/land-marketplace/internal/repository"
	"github.com/iliyamo/land-marketplace/internal/utils"
)

// ListingReader is the read side of the listings store used by handlers.
type ListingReader interface {
	GetByID(ctx context.Context, id string) (model.Listing, error)
}

// ListingStore is the full listings store surface used by owner handlers.
type ListingStore interface {
	ListingReader
	Add(ctx context.Context, f model.ListingFields) model.Listing
	Update(ctx context.Context, id string, p model.ListingPatch) (model.Listing, error)
	Delete(ctx context.Context, id string) bool
	ListByOwner(ctx context.Context, ownerID string) []model.Listing
}

// Browser answers public browse queries.
type Browser interface {
	Search(ctx context.Context, q repository.ListingSearchQuery) []model.Listing
}

// EventPublisher forwards visit and contact submissions.
type EventPublisher interface {
	PublishVisitRequested(ctx context.Context, ev queue.VisitRequestedEvent) error
	PublishContactSubmitted(ctx context.Context, ev queue.ContactSubmittedEvent) error
}

// listingView is a listing plus its display-only fields.
type listingView struct {
	model.Listing
	PriceLabel  string                `json:"priceLabel"`
	PriceBucket repository.PriceRange `json:"priceBucket"`
}

type listingDetail struct {
	listingView
	Contact utils.ContactLinks `json:"contact"`
}

func viewOf(l model.Listing) listingView {
	return listingView{
		Listing:     l,
		PriceLabel:  utils.FormatPrice(l.Price),
		PriceBucket: repository.PriceBucket(l.Price),
	}
}

func viewsOf(ls []model.Listing) []listingView {
	out := make([]listingView, 0, len(ls))
	for _, l := range ls {
		out = append(out, viewOf(l))
	}
	return out
}

// currentIdentity returns the authenticated identity or false.
func currentIdentity(c echo.Context) (model.Identity, bool) {
	return middleware.CurrentIdentity(c)
}

// positiveQueryInt parses an optional positive integer query parameter.
func positiveQueryInt(c echo.Context, name string, def int) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
