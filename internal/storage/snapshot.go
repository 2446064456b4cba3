package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// SnapshotVersion is the format version written by Encode.
//
// Version 0 is the unversioned bare JSON array the browser app stored;
// it is still accepted on read.
const SnapshotVersion = 1

// ErrUnsupportedVersion is returned for snapshots newer than this build.
var ErrUnsupportedVersion = errors.New("unsupported snapshot version")

// ErrCorruptSnapshot wraps payloads that cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt snapshot")

type snapshot struct {
	Version  int             `json:"version"`
	SavedAt  time.Time       `json:"savedAt"`
	Listings []model.Listing `json:"listings"`
}

// Encode serializes listings into the current snapshot format.
func Encode(listings []model.Listing, savedAt time.Time) ([]byte, error) {
	if listings == nil {
		listings = []model.Listing{}
	}
	return json.Marshal(snapshot{
		Version:  SnapshotVersion,
		SavedAt:  savedAt.UTC(),
		Listings: listings,
	})
}

// Decode parses a snapshot payload of any supported version and reports
// the version it found.
func Decode(data []byte) ([]model.Listing, int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, 0, fmt.Errorf("%w: empty payload", ErrCorruptSnapshot)
	}
	if trimmed[0] == '[' {
		var legacy []model.Listing
		if err := json.Unmarshal(trimmed, &legacy); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
		}
		return legacy, 0, nil
	}
	var s snapshot
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if s.Version < 1 {
		return nil, s.Version, fmt.Errorf("%w: missing version", ErrCorruptSnapshot)
	}
	if s.Version > SnapshotVersion {
		return nil, s.Version, fmt.Errorf("%w: %d", ErrUnsupportedVersion, s.Version)
	}
	if s.Listings == nil {
		s.Listings = []model.Listing{}
	}
	return s.Listings, s.Version, nil
}
