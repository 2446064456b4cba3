// Package storage persists the listings collection as one versioned
// snapshot under a single key.  Every backend shares the same codec, so a
// snapshot written by one backend can be copied verbatim into another.
package storage

import (
	"context"
	"errors"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// DefaultKey is the key the collection lives under.
const DefaultKey = "bit2brick_listings"

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot stored")

// Storage loads and saves the whole listings collection.
type Storage interface {
	// Load returns the stored collection or ErrNoSnapshot.
	Load(ctx context.Context) ([]model.Listing, error)
	// Save replaces the stored collection.
	Save(ctx context.Context, listings []model.Listing) error
	// Name identifies the backend in logs.
	Name() string
}
