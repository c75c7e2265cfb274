package dto

import (
	"friendsync-api/core/constants"
	"friendsync-api/modules/event/entity"
	friendEntity "friendsync-api/modules/friend/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest for creating a one-off event on a selected day
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"` // YYYY-MM-DD
	FriendID    string `json:"friend_id" validate:"required"`
	Kind        string `json:"kind"`
	StartTime   string `json:"start_time"` // HH:MM
	EndTime     string `json:"end_time"`   // HH:MM
	Description string `json:"description"`
}

// UpdateEventRequest for editing an event. The event's id and date are
// preserved; an edit never moves an event to another day. Times and the
// description are pointers so an edit can clear them: omitted means keep
// the current value, an empty string means clear it.
type UpdateEventRequest struct {
	Title       string  `json:"title"`
	FriendID    string  `json:"friend_id"`
	Kind        string  `json:"kind"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Description *string `json:"description"`
}

// ===================== Response DTOs =====================

// EventResponse for event details and day drill-down lists
type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	FriendID    string `json:"friend_id"`
	FriendName  string `json:"friend_name"`
	FriendColor string `json:"friend_color,omitempty"`
	Kind        string `json:"kind"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Description string `json:"description,omitempty"`
	IsRecurring bool   `json:"is_recurring"`
}

// ===================== Mapper Functions =====================

// ToEventResponse maps entity to DTO. A nil friend means the event's
// friend reference is dangling; the name falls back to a placeholder.
func ToEventResponse(e *entity.EventInstance, friend *friendEntity.Friend) *EventResponse {
	resp := &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		FriendID:    e.FriendID,
		FriendName:  constants.UnknownFriendName,
		Kind:        string(e.Kind),
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Description: e.Description,
		IsRecurring: e.IsRecurring,
	}

	if friend != nil {
		resp.FriendName = friend.Name
		resp.FriendColor = friend.Color
	}

	return resp
}
