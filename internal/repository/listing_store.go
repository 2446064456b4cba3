package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/land-marketplace/internal/log"
	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/storage"
)

// ListingStore is the single owner of the listings collection.  It keeps
// the collection in memory and rewrites the whole snapshot to storage
// after every mutation.  Mutations are serialized by one write lock held
// through persistence; reads share a read lock.  Callers always get deep
// copies.
//
// The collection is loaded lazily on first access, or eagerly by Load.
// When storage holds nothing the built-in sample listings are seeded and
// saved.  When storage cannot be read the sample listings are used in
// memory only.  Save failures are logged and the in-memory collection
// stays authoritative.
type ListingStore struct {
	storage storage.Storage
	now     func() time.Time
	newID   func() string

	loadOnce sync.Once

	mu          sync.RWMutex
	listings    []model.Listing
	revision    uint64
	lastSaveErr error
}

// StoreOption customizes a ListingStore.
type StoreOption func(*ListingStore)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *ListingStore) { s.now = now }
}

// WithIDGenerator overrides how new listing ids are minted.
func WithIDGenerator(f func() string) StoreOption {
	return func(s *ListingStore) { s.newID = f }
}

// NewListingStore constructs a ListingStore over st.  Nothing is read
// until the first call.
func NewListingStore(st storage.Storage, opts ...StoreOption) *ListingStore {
	if st == nil {
		panic("nil storage passed to NewListingStore")
	}
	s := &ListingStore{
		storage: st,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load initializes the store.  Calling it more than once, or after any
// other method, is a no-op.
func (s *ListingStore) Load(ctx context.Context) {
	s.loadOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loadLocked(ctx)
	})
}

func (s *ListingStore) loadLocked(ctx context.Context) {
	logger := log.Log().WithField("storage", s.storage.Name())
	listings, err := s.storage.Load(ctx)
	switch {
	case err == nil:
		s.listings = listings
		logger.WithField("listings", len(listings)).Info("listings loaded")
	case errors.Is(err, storage.ErrNoSnapshot):
		s.listings = SeedListings()
		logger.WithField("listings", len(s.listings)).Info("no snapshot found, seeding sample listings")
		s.persistLocked(ctx)
	default:
		// The stored payload is left alone; the next mutation overwrites it.
		s.listings = SeedListings()
		logger.WithError(err).Error("load listings failed, serving sample listings from memory")
	}
}

// persistLocked writes the collection.  Caller must hold the write lock.
func (s *ListingStore) persistLocked(ctx context.Context) {
	if err := s.storage.Save(ctx, s.listings); err != nil {
		s.lastSaveErr = err
		log.Log().WithFields(log.Fields{
			"storage":  s.storage.Name(),
			"listings": len(s.listings),
			"err":      err,
		}).Warn("save listings failed, keeping in-memory state")
		return
	}
	s.lastSaveErr = nil
}

func (s *ListingStore) indexLocked(id string) int {
	for i := range s.listings {
		if s.listings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ListingStore) uniqueIDLocked() string {
	for {
		id := s.newID()
		if id != "" && s.indexLocked(id) < 0 {
			return id
		}
	}
}

// Add stores a new listing built from f, assigning its id and creation
// time, and puts it at the front of the collection.  f is not validated.
func (s *ListingStore) Add(ctx context.Context, f model.ListingFields) model.Listing {
	s.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	l := model.Listing{
		ID:           s.uniqueIDLocked(),
		Title:        f.Title,
		Location:     f.Location,
		Price:        f.Price,
		PlotSize:     f.PlotSize,
		Type:         f.Type,
		Availability: f.Availability,
		Description:  f.Description,
		Images:       f.Images,
		Features:     f.Features,
		OwnerID:      f.OwnerID,
		OwnerName:    f.OwnerName,
		OwnerPhone:   f.OwnerPhone,
		OwnerEmail:   f.OwnerEmail,
		CreatedAt:    s.now().UTC(),
	}.Clone()
	if l.Features == nil {
		l.Features = []string{}
	}

	s.listings = append([]model.Listing{l}, s.listings...)
	s.revision++
	s.persistLocked(ctx)
	return l.Clone()
}

// Update merges p onto the listing with the given id and returns the
// result.  It fails with ErrInvalidPatch when p does not validate and
// with ErrListingNotFound when id is unknown; neither case persists.
func (s *ListingStore) Update(ctx context.Context, id string, p model.ListingPatch) (model.Listing, error) {
	if err := p.Validate(); err != nil {
		return model.Listing{}, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}
	s.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Listing{}, ErrListingNotFound
	}
	s.listings[i] = p.Apply(s.listings[i])
	s.revision++
	s.persistLocked(ctx)
	return s.listings[i].Clone(), nil
}

// Delete removes the listing with the given id.  It reports whether a
// listing was removed; an unknown id is a silent no-op.
func (s *ListingStore) Delete(ctx context.Context, id string) bool {
	s.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	next := make([]model.Listing, 0, len(s.listings)-1)
	next = append(next, s.listings[:i]...)
	next = append(next, s.listings[i+1:]...)
	s.listings = next
	s.revision++
	s.persistLocked(ctx)
	return true
}

// GetByID returns the listing with the given id or ErrListingNotFound.
func (s *ListingStore) GetByID(ctx context.Context, id string) (model.Listing, error) {
	s.Load(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return model.Listing{}, ErrListingNotFound
	}
	return s.listings[i].Clone(), nil
}

// ListByOwner returns every listing owned by ownerID, any availability,
// in collection order.
func (s *ListingStore) ListByOwner(ctx context.Context, ownerID string) []model.Listing {
	s.Load(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := OwnerListings(s.listings, ownerID)
	for i := range owned {
		owned[i] = owned[i].Clone()
	}
	return owned
}

// All returns a copy of the whole collection in collection order.
func (s *ListingStore) All(ctx context.Context) []model.Listing {
	s.Load(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Listing, len(s.listings))
	for i, l := range s.listings {
		out[i] = l.Clone()
	}
	return out
}

// Revision increases by one on every successful mutation.  Derived views
// use it to tell whether a cached result is still current.
func (s *ListingStore) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// LastSaveError returns the error of the most recent save, or nil when it
// succeeded.
func (s *ListingStore) LastSaveError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSaveErr
}
