package repository

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// PriceRange names one of the coarse price buckets used by the browse
// filter.  Buckets are half-open: a price equal to a boundary belongs to
// the bucket above it.
type PriceRange string

const (
	PriceRangeAll PriceRange = "all"
	PriceUnder1M  PriceRange = "under-1m"
	Price1MTo2M   PriceRange = "1m-2m"
	Price2MTo5M   PriceRange = "2m-5m"
	PriceAbove5M  PriceRange = "above-5m"
)

// TypeAll disables the plot type predicate.
const TypeAll = "all"

const (
	bucketBoundary1 = 1_000_000
	bucketBoundary2 = 2_000_000
	bucketBoundary5 = 5_000_000
)

// ParsePriceRange accepts "", "all" or a bucket name.
func ParsePriceRange(s string) (PriceRange, error) {
	switch r := PriceRange(strings.ToLower(strings.TrimSpace(s))); r {
	case "", PriceRangeAll:
		return PriceRangeAll, nil
	case PriceUnder1M, Price1MTo2M, Price2MTo5M, PriceAbove5M:
		return r, nil
	}
	return "", fmt.Errorf("unknown price range %q", s)
}

// PriceBucket classifies a price into its bucket.
func PriceBucket(price float64) PriceRange {
	switch {
	case price < bucketBoundary1:
		return PriceUnder1M
	case price < bucketBoundary2:
		return Price1MTo2M
	case price < bucketBoundary5:
		return Price2MTo5M
	default:
		return PriceAbove5M
	}
}

// Contains reports whether price falls into r.  PriceRangeAll contains
// every price.
func (r PriceRange) Contains(price float64) bool {
	if r == PriceRangeAll || r == "" {
		return true
	}
	return PriceBucket(price) == r
}

// ListingSearchQuery holds the browse criteria.  Type is either TypeAll
// or a model.ListingType value.
type ListingSearchQuery struct {
	SearchTerm string
	Type       string
	PriceRange PriceRange
}

// ParseListingType accepts "", "all" or a plot type and returns the
// normalized filter value.
func ParseListingType(s string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" || t == TypeAll {
		return TypeAll, nil
	}
	if !model.ListingType(t).Valid() {
		return "", fmt.Errorf("unknown listing type %q", s)
	}
	return t, nil
}

// Key renders the query in a normalized form for cache keys.
func (q ListingSearchQuery) Key() string {
	t := q.Type
	if t == "" {
		t = TypeAll
	}
	pr := q.PriceRange
	if pr == "" {
		pr = PriceRangeAll
	}
	return fmt.Sprintf("q:%s|type:%s|price:%s", strings.ToLower(q.SearchTerm), t, pr)
}

// Matches reports whether l passes every predicate of q, including the
// availability gate.
func (q ListingSearchQuery) Matches(l model.Listing) bool {
	if l.Availability != model.Available {
		return false
	}
	if q.Type != "" && q.Type != TypeAll && string(l.Type) != q.Type {
		return false
	}
	if !q.PriceRange.Contains(l.Price) {
		return false
	}
	if q.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(q.SearchTerm)
	return strings.Contains(strings.ToLower(l.Title), term) ||
		strings.Contains(strings.ToLower(l.Location), term) ||
		strings.Contains(strings.ToLower(l.Description), term)
}

// FilterListings returns the available listings matching q, most recent
// first.  all is not modified.
func FilterListings(all []model.Listing, q ListingSearchQuery) []model.Listing {
	out := make([]model.Listing, 0, len(all))
	for _, l := range all {
		if q.Matches(l) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// OwnerListings returns every listing of ownerID regardless of
// availability, in collection order.
func OwnerListings(all []model.Listing, ownerID string) []model.Listing {
	out := make([]model.Listing, 0)
	for _, l := range all {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out
}

// OwnerStats counts an owner's listings per availability.
type OwnerStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Pending   int `json:"pending"`
	Sold      int `json:"sold"`
}

// StatsOf tallies listings by availability.
func StatsOf(listings []model.Listing) OwnerStats {
	s := OwnerStats{Total: len(listings)}
	for _, l := range listings {
		switch l.Availability {
		case model.Available:
			s.Available++
		case model.Pending:
			s.Pending++
		case model.Sold:
			s.Sold++
		}
	}
	return s
}
