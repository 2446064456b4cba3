package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// FileStorage keeps the snapshot in a single JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage returns a FileStorage writing to path.  Parent
// directories are created on the first save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Name() string { return "file" }

// Load reads and decodes the file.  A missing file is ErrNoSnapshot.
func (s *FileStorage) Load(ctx context.Context) ([]model.Listing, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	listings, _, err := Decode(data)
	return listings, err
}

// Save writes to a temp file in the same directory and renames it over
// the target so a crash mid-write never leaves a truncated snapshot.
func (s *FileStorage) Save(ctx context.Context, listings []model.Listing) error {
	data, err := Encode(listings, time.Now())
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".listings-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	return nil
}
