package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/storage"
)

type ListingStoreTestSuite struct {
	suite.Suite

	ctx   context.Context
	mem   *storage.MemoryStorage
	now   time.Time
	seq   int
	store *ListingStore
}

func (s *ListingStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mem = storage.NewMemoryStorage()
	s.now = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	s.seq = 0
	s.store = s.newStore()
}

func (s *ListingStoreTestSuite) newStore() *ListingStore {
	return NewListingStore(s.mem,
		WithClock(func() time.Time { return s.now }),
		WithIDGenerator(func() string {
			s.seq++
			return fmt.Sprintf("new-%d", s.seq)
		}),
	)
}

func (s *ListingStoreTestSuite) fields() model.ListingFields {
	return model.ListingFields{
		Title:        "Test Plot",
		Location:     "Test Town",
		Price:        750000,
		PlotSize:     "1200 sq ft",
		Type:         model.TypeResidential,
		Availability: model.Available,
		Description:  "A plot for tests.",
		Images:       []string{"https://example.com/a.jpg"},
	}.WithOwner(model.Identity{ID: "u1", Name: "Test Owner", Phone: "+91 11111 22222", Email: "owner@example.com"})
}

func TestListingStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ListingStoreTestSuite))
}

func (s *ListingStoreTestSuite) TestSeedsEmptyStorageAndPersistsSeed() {
	all := s.store.All(s.ctx)
	s.Len(all, 10)
	s.NotNil(s.mem.Raw(), "seed should be written back")

	owned := s.store.ListByOwner(s.ctx, "sample1")
	s.Require().Len(owned, 1)
	s.Equal("Prime Residential Plot in Green Valley", owned[0].Title)
	s.Equal(uint64(0), s.store.Revision())
}

func (s *ListingStoreTestSuite) TestAddThenGet() {
	added := s.store.Add(s.ctx, s.fields())
	s.Equal("new-1", added.ID)
	s.Equal(s.now, added.CreatedAt)
	s.Equal("u1", added.OwnerID)
	s.NotNil(added.Features, "features default to an empty list")

	got, err := s.store.GetByID(s.ctx, added.ID)
	s.Require().NoError(err)
	s.Equal(added, got)

	all := s.store.All(s.ctx)
	s.Len(all, 11)
	s.Equal(added.ID, all[0].ID, "new listings are prepended")
	s.Equal(uint64(1), s.store.Revision())
}

func (s *ListingStoreTestSuite) TestAddSkipsCollidingIDs() {
	s.store = NewListingStore(s.mem, WithIDGenerator(func() string {
		s.seq++
		if s.seq == 1 {
			return "1" // taken by a seed listing
		}
		return "fresh"
	}))
	added := s.store.Add(s.ctx, s.fields())
	s.Equal("fresh", added.ID)
}

func (s *ListingStoreTestSuite) TestReturnedListingsAreCopies() {
	got, err := s.store.GetByID(s.ctx, "1")
	s.Require().NoError(err)
	got.Images[0] = "mutated"
	got.Title = "mutated"

	again, err := s.store.GetByID(s.ctx, "1")
	s.Require().NoError(err)
	s.NotEqual("mutated", again.Images[0])
	s.NotEqual("mutated", again.Title)
}

func (s *ListingStoreTestSuite) TestUpdateAvailabilityOnly() {
	before, err := s.store.GetByID(s.ctx, "6")
	s.Require().NoError(err)

	sold := model.Sold
	after, err := s.store.Update(s.ctx, "6", model.ListingPatch{Availability: &sold})
	s.Require().NoError(err)

	s.Equal(model.Sold, after.Availability)
	before.Availability = model.Sold
	s.Equal(before, after)
	s.Equal(uint64(1), s.store.Revision())
}

func (s *ListingStoreTestSuite) TestUpdateRejectsInvalidPatch() {
	blank := "  "
	_, err := s.store.Update(s.ctx, "1", model.ListingPatch{Title: &blank})
	s.ErrorIs(err, ErrInvalidPatch)
	s.ErrorIs(err, model.ErrInvalidListing)

	zero := 0.0
	_, err = s.store.Update(s.ctx, "1", model.ListingPatch{Price: &zero})
	s.ErrorIs(err, ErrInvalidPatch)

	got, err := s.store.GetByID(s.ctx, "1")
	s.Require().NoError(err)
	s.Equal("Prime Residential Plot in Green Valley", got.Title)
	s.Equal(uint64(0), s.store.Revision())
}

func (s *ListingStoreTestSuite) TestUpdateUnknownID() {
	title := "x"
	_, err := s.store.Update(s.ctx, "missing", model.ListingPatch{Title: &title})
	s.ErrorIs(err, ErrListingNotFound)
	s.Equal(uint64(0), s.store.Revision())
}

func (s *ListingStoreTestSuite) TestDelete() {
	s.True(s.store.Delete(s.ctx, "3"))
	_, err := s.store.GetByID(s.ctx, "3")
	s.ErrorIs(err, ErrListingNotFound)
	s.Len(s.store.All(s.ctx), 9)

	rev := s.store.Revision()
	s.False(s.store.Delete(s.ctx, "3"), "second delete is a no-op")
	s.Equal(rev, s.store.Revision())
}

func (s *ListingStoreTestSuite) TestRoundTripThroughStorage() {
	added := s.store.Add(s.ctx, s.fields())
	sold := model.Sold
	_, err := s.store.Update(s.ctx, "2", model.ListingPatch{Availability: &sold})
	s.Require().NoError(err)
	s.True(s.store.Delete(s.ctx, "3"))
	want := s.store.All(s.ctx)

	reloaded := s.newStore()
	s.Equal(want, reloaded.All(s.ctx))

	got, err := reloaded.GetByID(s.ctx, added.ID)
	s.Require().NoError(err)
	s.Equal(added, got)
}

func (s *ListingStoreTestSuite) TestLoadFailureServesSeedWithoutOverwriting() {
	s.mem.SetRaw([]byte(`{"version":1,"listings":[]}`))
	s.mem.LoadErr = errors.New("backend down")
	store := s.newStore()

	s.Len(store.All(s.ctx), 10)
	s.Equal(`{"version":1,"listings":[]}`, string(s.mem.Raw()))
}

func (s *ListingStoreTestSuite) TestCorruptSnapshotServesSeed() {
	s.mem.SetRaw([]byte(`{not json`))
	store := s.newStore()
	s.Len(store.All(s.ctx), 10)
	s.Equal(`{not json`, string(s.mem.Raw()))
}

func (s *ListingStoreTestSuite) TestLegacyArraySnapshot() {
	s.mem.SetRaw([]byte(`[{"id":"legacy","title":"Old Plot","location":"Somewhere","price":500000,
		"plotSize":"1 acre","type":"agricultural","availability":"available","description":"d",
		"images":["https://example.com/x.jpg"],"features":[],"ownerId":"o","ownerName":"O",
		"ownerPhone":"1","ownerEmail":"o@example.com","createdAt":"2023-05-01T00:00:00Z"}]`))
	store := s.newStore()

	all := store.All(s.ctx)
	s.Require().Len(all, 1)
	s.Equal("legacy", all[0].ID)
	s.Equal(model.TypeAgricultural, all[0].Type)
}

func (s *ListingStoreTestSuite) TestSaveFailureKeepsMemoryAuthoritative() {
	s.store.Load(s.ctx)
	s.mem.SaveErr = errors.New("disk full")

	added := s.store.Add(s.ctx, s.fields())
	s.Error(s.store.LastSaveError())

	got, err := s.store.GetByID(s.ctx, added.ID)
	s.Require().NoError(err)
	s.Equal(added, got)

	s.mem.SaveErr = nil
	s.True(s.store.Delete(s.ctx, added.ID))
	s.NoError(s.store.LastSaveError())
}

func (s *ListingStoreTestSuite) TestIdentityFieldsAreImmutable() {
	before, err := s.store.GetByID(s.ctx, "1")
	s.Require().NoError(err)

	title := "Renamed"
	after, err := s.store.Update(s.ctx, "1", model.ListingPatch{Title: &title})
	s.Require().NoError(err)
	s.Equal(before.ID, after.ID)
	s.Equal(before.OwnerID, after.OwnerID)
	s.Equal(before.CreatedAt, after.CreatedAt)
}

func (s *ListingStoreTestSuite) TestConcurrentAdds() {
	store := NewListingStore(s.mem)
	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Add(s.ctx, s.fields())
		}()
	}
	wg.Wait()

	all := store.All(s.ctx)
	s.Len(all, 10+n)
	seen := map[string]bool{}
	for _, l := range all {
		s.False(seen[l.ID], "duplicate id %s", l.ID)
		seen[l.ID] = true
	}
	s.Equal(uint64(n), store.Revision())

	reloaded := NewListingStore(s.mem)
	s.Len(reloaded.All(s.ctx), 10+n)
}
