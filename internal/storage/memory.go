package storage

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// MemoryStorage holds the encoded snapshot in process memory.  It goes
// through the same codec as the durable backends so round trips behave
// identically.
type MemoryStorage struct {
	mu      sync.Mutex
	payload []byte

	// LoadErr and SaveErr, when set, are returned instead of touching the
	// payload.  Tests use them to simulate an unavailable backend.
	LoadErr error
	SaveErr error
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Name() string { return "memory" }

func (s *MemoryStorage) Load(ctx context.Context) ([]model.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.payload == nil {
		return nil, ErrNoSnapshot
	}
	listings, _, err := Decode(s.payload)
	return listings, err
}

func (s *MemoryStorage) Save(ctx context.Context, listings []model.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := Encode(listings, time.Now())
	if err != nil {
		return err
	}
	s.payload = data
	return nil
}

// Raw returns the stored payload, nil when nothing was saved.
func (s *MemoryStorage) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.payload == nil {
		return nil
	}
	out := make([]byte, len(s.payload))
	copy(out, s.payload)
	return out
}

// SetRaw replaces the stored payload verbatim.
func (s *MemoryStorage) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = data
}
