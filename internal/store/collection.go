// Package store owns the persisted entity collections: one store per
// entity type, each an ordered in-memory slice snapshotted to the
// storage adapter on every mutation and rehydrated on open.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vwcs/build-tracker/internal/storage"
)

// timeNow is swapped out by tests that need a fixed clock.
var timeNow = time.Now

// today returns the wall-clock date as a plain string, the format every
// record's date fields use.
func today() string {
	return timeNow().Format("2006-01-02")
}

// parseDate reads the ISO-ish date strings records carry. Unparseable
// values sort as the zero time rather than failing the read path.
func parseDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// collection is the shared shape of every entity store: an ordered slice
// of one record type with persist-on-mutation semantics. Mutations apply
// in memory first; a failed write leaves the session state intact and
// surfaces the error to the caller.
type collection[T any] struct {
	key     string
	adapter storage.Adapter
	items   []T
	id      func(T) string
	withID  func(T, string) T
}

func newCollection[T any](adapter storage.Adapter, key string, id func(T) string, withID func(T, string) T) *collection[T] {
	return &collection[T]{key: key, adapter: adapter, id: id, withID: withID}
}

// load rehydrates the collection from the adapter. An absent key is an
// empty collection.
func (c *collection[T]) load(ctx context.Context) error {
	payload, ok, err := c.adapter.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok || len(payload) == 0 {
		c.items = nil
		return nil
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return fmt.Errorf("decode %s: %w", c.key, err)
	}
	c.items = items
	return nil
}

// persist snapshots the whole collection to the adapter.
func (c *collection[T]) persist(ctx context.Context) error {
	items := c.items
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.adapter.Set(ctx, c.key, payload); err != nil {
		return fmt.Errorf("persist %s: %w", c.key, err)
	}
	return nil
}

// add assigns a fresh id, appends, and persists. Insertion order is the
// collection order; display sorting is a read-side concern.
func (c *collection[T]) add(ctx context.Context, item T) (T, error) {
	item = c.withID(item, uuid.NewString())
	c.items = append(c.items, item)
	return item, c.persist(ctx)
}

// mutate applies fn to the record with the given id and persists. A
// missing id is a silent no-op, never an error.
func (c *collection[T]) mutate(ctx context.Context, id string, fn func(T) T) error {
	for i, item := range c.items {
		if c.id(item) == id {
			c.items[i] = fn(item)
			return c.persist(ctx)
		}
	}
	return nil
}

// remove deletes the record with the given id and persists. A missing id
// is a silent no-op.
func (c *collection[T]) remove(ctx context.Context, id string) error {
	for i, item := range c.items {
		if c.id(item) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persist(ctx)
		}
	}
	return nil
}

// find returns the record with the given id.
func (c *collection[T]) find(id string) (T, bool) {
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// all returns a copy of the collection in insertion order.
func (c *collection[T]) all() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) empty() bool {
	return len(c.items) == 0
}

// seed bulk-populates an empty collection with fixture records carrying
// deterministic ids. Once any record exists this is a no-op forever.
func (c *collection[T]) seed(ctx context.Context, items []T) error {
	if !c.empty() {
		return nil
	}
	c.items = append([]T(nil), items...)
	return c.persist(ctx)
}
