package models

// ReminderTrigger says what fires a reminder.
type ReminderTrigger string

const (
	TriggerMileage ReminderTrigger = "mileage"
	TriggerDate    ReminderTrigger = "date"
)

// Reminder is an upcoming service nudge. Either TriggerMileage or
// TriggerDate is meaningful depending on TriggerType. Completion is
// one-way; there is no uncomplete operation.
type Reminder struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	TriggerType    ReminderTrigger `json:"trigger_type"` // "mileage" or "date"
	TriggerMileage int             `json:"trigger_mileage,omitempty"`
	TriggerDate    string          `json:"trigger_date,omitempty"`
	Completed      bool            `json:"completed"`
	Category       Category        `json:"category"`
	Priority       Priority        `json:"priority"`
	Tags           []string        `json:"tags"`
}

// ReminderPatch carries the fields of a partial update.
type ReminderPatch struct {
	Title          *string          `json:"title,omitempty"`
	Description    *string          `json:"description,omitempty"`
	TriggerType    *ReminderTrigger `json:"trigger_type,omitempty"`
	TriggerMileage *int             `json:"trigger_mileage,omitempty"`
	TriggerDate    *string          `json:"trigger_date,omitempty"`
	Category       *Category        `json:"category,omitempty"`
	Priority       *Priority        `json:"priority,omitempty"`
	Tags           *[]string        `json:"tags,omitempty"`
}

// Apply merges the provided fields into the reminder.
func (r Reminder) Apply(p ReminderPatch) Reminder {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.TriggerType != nil {
		r.TriggerType = *p.TriggerType
	}
	if p.TriggerMileage != nil {
		r.TriggerMileage = *p.TriggerMileage
	}
	if p.TriggerDate != nil {
		r.TriggerDate = *p.TriggerDate
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Priority != nil {
		r.Priority = *p.Priority
	}
	if p.Tags != nil {
		r.Tags = *p.Tags
	}
	return r
}
