package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/land-marketplace/internal/model"
)

func ids(ls []model.Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func TestPriceBucketBoundaries(t *testing.T) {
	tests := []struct {
		price float64
		exp   PriceRange
	}{
		{1, PriceUnder1M},
		{999_999.99, PriceUnder1M},
		{1_000_000, Price1MTo2M},
		{1_999_999, Price1MTo2M},
		{2_000_000, Price2MTo5M},
		{4_999_999, Price2MTo5M},
		{5_000_000, PriceAbove5M},
		{90_000_000, PriceAbove5M},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.exp, PriceBucket(tt.price), "price %v", tt.price)
	}
}

func TestPriceRangeContains(t *testing.T) {
	assert.True(t, PriceRangeAll.Contains(123))
	assert.True(t, PriceRange("").Contains(123))
	assert.True(t, Price1MTo2M.Contains(1_000_000))
	assert.False(t, PriceUnder1M.Contains(1_000_000))
	assert.False(t, Price2MTo5M.Contains(5_000_000))
}

func TestParseCriteria(t *testing.T) {
	pr, err := ParsePriceRange(" Under-1M ")
	require.NoError(t, err)
	assert.Equal(t, PriceUnder1M, pr)

	pr, err = ParsePriceRange("")
	require.NoError(t, err)
	assert.Equal(t, PriceRangeAll, pr)

	_, err = ParsePriceRange("cheap")
	assert.Error(t, err)

	typ, err := ParseListingType("Commercial")
	require.NoError(t, err)
	assert.Equal(t, "commercial", typ)

	typ, err = ParseListingType("")
	require.NoError(t, err)
	assert.Equal(t, TypeAll, typ)

	_, err = ParseListingType("industrial")
	assert.Error(t, err)
}

func TestFilterListingsDefaultsReturnAllAvailableNewestFirst(t *testing.T) {
	res := FilterListings(SeedListings(), ListingSearchQuery{Type: TypeAll, PriceRange: PriceRangeAll})
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, ids(res))
}

func TestFilterListingsSearchIsCaseInsensitiveSubstring(t *testing.T) {
	res := FilterListings(SeedListings(), ListingSearchQuery{SearchTerm: "LAKE"})
	assert.Equal(t, []string{"6"}, ids(res))

	// location match
	res = FilterListings(SeedListings(), ListingSearchQuery{SearchTerm: "whitefield"})
	assert.Equal(t, []string{"4"}, ids(res))

	// description match
	res = FilterListings(SeedListings(), ListingSearchQuery{SearchTerm: "IT companies"})
	assert.Equal(t, []string{"2"}, ids(res))

	// features are not searched
	res = FilterListings(SeedListings(), ListingSearchQuery{SearchTerm: "Metro Connectivity"})
	assert.Empty(t, res)
}

func TestFilterListingsByTypeAndPrice(t *testing.T) {
	all := SeedListings()

	res := FilterListings(all, ListingSearchQuery{Type: string(model.TypeAgricultural)})
	assert.Equal(t, []string{"3", "8"}, ids(res))

	res = FilterListings(all, ListingSearchQuery{PriceRange: Price1MTo2M})
	assert.Equal(t, []string{"1", "6", "8", "10"}, ids(res))

	res = FilterListings(all, ListingSearchQuery{PriceRange: PriceAbove5M})
	assert.Equal(t, []string{"5"}, ids(res), "5,000,000 belongs to the upper bucket")

	res = FilterListings(all, ListingSearchQuery{Type: string(model.TypeResidential), PriceRange: Price2MTo5M})
	assert.Equal(t, []string{"4", "9"}, ids(res))
}

func TestFilterListingsHidesUnavailable(t *testing.T) {
	all := SeedListings()
	all[0].Availability = model.Sold
	all[1].Availability = model.Pending

	res := FilterListings(all, ListingSearchQuery{})
	assert.Len(t, res, 8)
	for _, l := range res {
		assert.Equal(t, model.Available, l.Availability)
	}
	// an exact title search still cannot reveal a sold listing
	res = FilterListings(all, ListingSearchQuery{SearchTerm: all[0].Title})
	assert.Empty(t, res)
}

func TestFilterListingsSortIsStableAndDoesNotMutateInput(t *testing.T) {
	ts := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	all := []model.Listing{
		{ID: "a", Availability: model.Available, Price: 10, CreatedAt: ts},
		{ID: "b", Availability: model.Available, Price: 10, CreatedAt: ts.Add(time.Hour)},
		{ID: "c", Availability: model.Available, Price: 10, CreatedAt: ts},
	}
	res := FilterListings(all, ListingSearchQuery{})
	assert.Equal(t, []string{"b", "a", "c"}, ids(res))
	assert.Equal(t, []string{"a", "b", "c"}, ids(all))
}

func TestOwnerListingsIncludesEveryAvailability(t *testing.T) {
	all := SeedListings()
	all[0].Availability = model.Sold
	owned := OwnerListings(all, "sample1")
	require.Len(t, owned, 1)
	assert.Equal(t, "1", owned[0].ID)

	assert.Empty(t, OwnerListings(all, "nobody"))
	assert.NotNil(t, OwnerListings(all, "nobody"))
}

func TestStatsOf(t *testing.T) {
	ls := []model.Listing{
		{Availability: model.Available},
		{Availability: model.Sold},
		{Availability: model.Sold},
		{Availability: model.Pending},
	}
	assert.Equal(t, OwnerStats{Total: 4, Available: 1, Pending: 1, Sold: 2}, StatsOf(ls))
}

func TestQueryKeyNormalizesDefaults(t *testing.T) {
	a := ListingSearchQuery{SearchTerm: "Lake"}
	b := ListingSearchQuery{SearchTerm: "lake", Type: TypeAll, PriceRange: PriceRangeAll}
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), ListingSearchQuery{SearchTerm: "lake", PriceRange: PriceUnder1M}.Key())
}
