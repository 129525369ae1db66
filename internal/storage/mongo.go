package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo stores snapshots as one document per store key. Useful when the
// garage database should live off the machine; everything else about the
// store layer is unchanged.
type Mongo struct {
	Collection *mongo.Collection
}

type mongoSnapshot struct {
	Key     string `bson:"_id"`
	Payload []byte `bson:"payload"`
}

// ConnectMongo connects using the MONGO_URI environment variable and
// returns an adapter over the snapshots collection.
func ConnectMongo(ctx context.Context) (*Mongo, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	// Ping to verify connection
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "garage"
	}
	return &Mongo{Collection: client.Database(dbName).Collection("snapshots")}, nil
}

// Get returns the snapshot stored under key, or ok=false when no
// document exists for it.
func (m *Mongo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.Collection == nil {
		return nil, false, fmt.Errorf("mongo collection is nil")
	}
	var snap mongoSnapshot
	err := m.Collection.FindOne(ctx, bson.M{"_id": key}).Decode(&snap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find %s: %w", key, err)
	}
	return snap.Payload, true, nil
}

// Set replaces the snapshot stored under key.
func (m *Mongo) Set(ctx context.Context, key string, payload []byte) error {
	if m.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	opts := options.Replace().SetUpsert(true)
	_, err := m.Collection.ReplaceOne(ctx, bson.M{"_id": key}, mongoSnapshot{Key: key, Payload: payload}, opts)
	if err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}
