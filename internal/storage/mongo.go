package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// snapshotDoc is the document layout in the snapshots collection.
type snapshotDoc struct {
	Key       string    `bson:"_id"`
	Version   int       `bson:"version"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoStorage keeps the snapshot as one document whose _id is the key.
type MongoStorage struct {
	coll *mongo.Collection
	key  string
}

// NewMongoStorage returns a MongoStorage on coll.
func NewMongoStorage(coll *mongo.Collection, key string) *MongoStorage {
	if key == "" {
		key = DefaultKey
	}
	return &MongoStorage{coll: coll, key: key}
}

func (s *MongoStorage) Name() string { return "mongo" }

func (s *MongoStorage) Load(ctx context.Context) ([]model.Listing, error) {
	var doc snapshotDoc
	if err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("find snapshot: %w", err)
	}
	listings, _, err := Decode([]byte(doc.Payload))
	return listings, err
}

func (s *MongoStorage) Save(ctx context.Context, listings []model.Listing) error {
	now := time.Now().UTC()
	data, err := Encode(listings, now)
	if err != nil {
		return err
	}
	doc := snapshotDoc{
		Key:       s.key,
		Version:   SnapshotVersion,
		Payload:   string(data),
		UpdatedAt: now,
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": s.key}, doc, opts); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// ConnectMongo dials uri and pings the primary with a short timeout.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
