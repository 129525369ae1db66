package store

import (
	"context"
	"sort"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// EventStore owns the denormalized activity feed. Events reference their
// source record by RelatedID; edits and deletes of the source never
// cascade here.
type EventStore struct {
	c *collection[models.Event]
}

// NewEventStore returns an empty store bound to the adapter.
func NewEventStore(adapter storage.Adapter) *EventStore {
	return &EventStore{c: newCollection(adapter, "event-data",
		func(e models.Event) string { return e.ID },
		func(e models.Event, id string) models.Event { e.ID = id; return e },
	)}
}

// Load rehydrates the collection.
func (s *EventStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Events returns the full feed in insertion order.
func (s *EventStore) Events() []models.Event { return s.c.all() }

// Add assigns an id, appends, and persists.
func (s *EventStore) Add(ctx context.Context, e models.Event) (models.Event, error) {
	return s.c.add(ctx, e)
}

// Update merges the patch into the matching event.
func (s *EventStore) Update(ctx context.Context, id string, p models.EventPatch) error {
	return s.c.mutate(ctx, id, func(e models.Event) models.Event { return e.Apply(p) })
}

// Delete removes the matching event.
func (s *EventStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// ByType returns the events of one type in insertion order.
func (s *EventStore) ByType(t models.EventType) []models.Event {
	var out []models.Event
	for _, e := range s.c.all() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// ByTag returns the events carrying the given tag.
func (s *EventStore) ByTag(tag string) []models.Event {
	var out []models.Event
	for _, e := range s.c.all() {
		for _, t := range e.Tags {
			if t == tag {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// Recent sorts the feed by date descending and returns the top limit
// entries. A non-positive limit means 10.
func (s *EventStore) Recent(limit int) []models.Event {
	if limit <= 0 {
		limit = 10
	}
	events := s.c.all()
	sort.SliceStable(events, func(i, j int) bool {
		return parseDate(events[i].Date).After(parseDate(events[j].Date))
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events
}
