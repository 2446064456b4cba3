package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// MySQLStorage keeps the snapshot as one row of the listing_snapshots
// table, keyed by storage_key.  The table is created by
// database.Migrate.
type MySQLStorage struct {
	db  *sql.DB
	key string
}

// NewMySQLStorage returns a MySQLStorage reading and writing key.
func NewMySQLStorage(db *sql.DB, key string) *MySQLStorage {
	if key == "" {
		key = DefaultKey
	}
	return &MySQLStorage{db: db, key: key}
}

func (s *MySQLStorage) Name() string { return "mysql" }

func (s *MySQLStorage) Load(ctx context.Context) ([]model.Listing, error) {
	const q = "SELECT payload FROM listing_snapshots WHERE storage_key = ?"
	var payload []byte
	if err := s.db.QueryRowContext(ctx, q, s.key).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("select snapshot: %w", err)
	}
	listings, _, err := Decode(payload)
	return listings, err
}

// Save upserts the row.  version is stored next to the payload so
// operators can spot old snapshots without decoding them.
func (s *MySQLStorage) Save(ctx context.Context, listings []model.Listing) error {
	data, err := Encode(listings, time.Now())
	if err != nil {
		return err
	}
	const q = `INSERT INTO listing_snapshots (storage_key, version, payload)
	           VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE version = VALUES(version), payload = VALUES(payload), updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, q, s.key, SnapshotVersion, data); err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
