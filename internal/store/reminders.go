package store

import (
	"context"

	"github.com/vwcs/build-tracker/internal/models"
	"github.com/vwcs/build-tracker/internal/storage"
)

// ReminderStore owns service reminders and the due evaluation.
type ReminderStore struct {
	c *collection[models.Reminder]
}

// NewReminderStore returns an empty store bound to the adapter.
func NewReminderStore(adapter storage.Adapter) *ReminderStore {
	return &ReminderStore{c: newCollection(adapter, "reminder-data",
		func(r models.Reminder) string { return r.ID },
		func(r models.Reminder, id string) models.Reminder { r.ID = id; return r },
	)}
}

// Load rehydrates the collection.
func (s *ReminderStore) Load(ctx context.Context) error { return s.c.load(ctx) }

// Reminders returns all reminders in insertion order.
func (s *ReminderStore) Reminders() []models.Reminder { return s.c.all() }

// Get returns the reminder with the given id.
func (s *ReminderStore) Get(id string) (models.Reminder, bool) { return s.c.find(id) }

// Add assigns an id, appends, and persists.
func (s *ReminderStore) Add(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	return s.c.add(ctx, r)
}

// Update merges the patch into the matching reminder.
func (s *ReminderStore) Update(ctx context.Context, id string, p models.ReminderPatch) error {
	return s.c.mutate(ctx, id, func(r models.Reminder) models.Reminder { return r.Apply(p) })
}

// Delete removes the matching reminder.
func (s *ReminderStore) Delete(ctx context.Context, id string) error { return s.c.remove(ctx, id) }

// Complete marks a reminder done. One-way; there is no uncomplete.
func (s *ReminderStore) Complete(ctx context.Context, id string) error {
	return s.c.mutate(ctx, id, func(r models.Reminder) models.Reminder {
		r.Completed = true
		return r
	})
}

// Active returns the reminders not yet completed.
func (s *ReminderStore) Active() []models.Reminder {
	var out []models.Reminder
	for _, r := range s.c.all() {
		if !r.Completed {
			out = append(out, r)
		}
	}
	return out
}

// Due filters uncompleted reminders whose trigger has fired: odometer at
// or past the mileage trigger, or wall clock at or past the date
// trigger. Pure linear scan, re-evaluated on every call.
func (s *ReminderStore) Due(currentMileage int) []models.Reminder {
	now := timeNow()
	var due []models.Reminder
	for _, r := range s.c.all() {
		if r.Completed {
			continue
		}
		switch r.TriggerType {
		case models.TriggerMileage:
			if currentMileage >= r.TriggerMileage {
				due = append(due, r)
			}
		case models.TriggerDate:
			if t := parseDate(r.TriggerDate); !t.IsZero() && !now.Before(t) {
				due = append(due, r)
			}
		}
	}
	return due
}
