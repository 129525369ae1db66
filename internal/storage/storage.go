// Package storage is the durability boundary for the entity stores: a
// key-value adapter holding one serialized collection snapshot per key.
package storage

import (
	"context"
	"fmt"
	"os"
)

// Adapter reads and writes whole-collection snapshots. Get reports
// absence with ok=false and a nil error; a missing key is an empty
// collection, not a failure.
type Adapter interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Set(ctx context.Context, key string, payload []byte) error
}

// Open picks an adapter from the GARAGE_STORAGE environment variable:
// "sqlite" (default), "mongo", or "memory".
func Open(ctx context.Context) (Adapter, error) {
	backend := os.Getenv("GARAGE_STORAGE")
	switch backend {
	case "", "sqlite":
		path := os.Getenv("GARAGE_DB")
		if path == "" {
			path = "garage.db"
		}
		return OpenSQLite(path)
	case "mongo":
		return ConnectMongo(ctx)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
