// Package mongostore provides a MongoDB-backed implementation of the storage.Store
// interface. The whole snapshot lives in a single document.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mmynk/fintrack/internal/models"
	"github.com/mmynk/fintrack/internal/storage"
)

const (
	collectionName = "snapshots"
	snapshotID     = "ledger"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// New connects to uri and verifies the connection with a ping.
func New(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	slog.Info("Connected to MongoDB", "database", database)
	return &Store{
		client:     client,
		collection: client.Database(database).Collection(collectionName),
	}, nil
}

func (s *Store) Load(ctx context.Context) (*models.Snapshot, error) {
	var doc snapshotDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": snapshotID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find snapshot: %w", err)
	}
	return fromDoc(&doc)
}

// Save replaces the snapshot document, matching on the expected revision.
// The first save inserts; a concurrent first insert fails with a duplicate key.
func (s *Store) Save(ctx context.Context, snap *models.Snapshot) error {
	doc := toDoc(snap)
	doc.Revision = snap.Revision + 1

	if snap.Revision == 0 {
		_, err := s.collection.InsertOne(ctx, doc)
		if mongo.IsDuplicateKeyError(err) {
			return storage.ErrStaleSnapshot
		}
		if err != nil {
			return fmt.Errorf("failed to insert snapshot: %w", err)
		}
		snap.Revision = doc.Revision
		return nil
	}

	res, err := s.collection.ReplaceOne(ctx, bson.M{"_id": snapshotID, "revision": snap.Revision}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	if res.MatchedCount == 0 {
		return storage.ErrStaleSnapshot
	}
	snap.Revision = doc.Revision
	return nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
