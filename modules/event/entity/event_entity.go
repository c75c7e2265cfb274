package entity

// EventKind classifies what an event means for the friend's availability
type EventKind string

const (
	EventKindBusy      EventKind = "busy"
	EventKindAvailable EventKind = "available"
	EventKindHangout   EventKind = "hangout"
)

// Valid reports whether the kind is one of the known values
func (k EventKind) Valid() bool {
	switch k {
	case EventKindBusy, EventKindAvailable, EventKindHangout:
		return true
	}
	return false
}

// RecurrencePattern describes how a template repeats
type RecurrencePattern string

const (
	PatternDaily    RecurrencePattern = "daily"
	PatternWeekdays RecurrencePattern = "weekdays"
)

// Valid reports whether the pattern is one of the known values
func (p RecurrencePattern) Valid() bool {
	return p == PatternDaily || p == PatternWeekdays
}

// EventTemplate is the source of a repeating commitment (daily gym,
// weekday work hours). Templates are consumed by the recurrence expander
// to materialize instances; they are not stored as calendar entities.
type EventTemplate struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	FriendID    string            `json:"friend_id"`
	StartTime   string            `json:"start_time"` // HH:MM
	EndTime     string            `json:"end_time"`   // HH:MM
	Description string            `json:"description"`
	Kind        EventKind         `json:"kind"`
	Pattern     RecurrencePattern `json:"pattern"`
}

// EventInstance is one concrete dated event. Instances come either from
// the recurrence expander (IsRecurring=true) or direct user creation.
// Date is always a YYYY-MM-DD string; a FriendID that no longer resolves
// to a friend is tolerated and treated as "no matching friend".
type EventInstance struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	FriendID    string    `json:"friend_id"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	Description string    `json:"description,omitempty"`
	Kind        EventKind `json:"kind"`
	IsRecurring bool      `json:"is_recurring"`
	// TemplateID links a recurring instance back to its template so a
	// re-expanded horizon never duplicates a day already materialized.
	TemplateID string `json:"template_id,omitempty"`
}
