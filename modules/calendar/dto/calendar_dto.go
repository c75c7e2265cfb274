package dto

import (
	eventDto "friendsync-api/modules/event/dto"
)

// Indicator display modes for a day cell
const (
	IndicatorNone  = "none"
	IndicatorDots  = "dots"
	IndicatorBadge = "badge"
)

// EventIndicator tells the renderer how to summarize a cell's events:
// nothing, one colored dot per event, or a single numeric count badge.
type EventIndicator struct {
	Mode   string   `json:"mode"`
	Count  int      `json:"count"`
	Colors []string `json:"colors,omitempty"`
}

// DayCell is one of the 42 grid positions in a month view, bound to
// exactly one calendar date
type DayCell struct {
	Date           string                   `json:"date"`
	DayOfMonth     int                      `json:"day_of_month"`
	IsOutsideMonth bool                     `json:"is_outside_month"`
	IsToday        bool                     `json:"is_today"`
	VisibleEvents  []eventDto.EventResponse `json:"visible_events"`
	Indicator      EventIndicator           `json:"indicator"`
}

// GridResponse is the full month-view description consumed by the renderer.
// Prev/Next carry the shifted reference months for navigation controls.
type GridResponse struct {
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	MonthLabel string    `json:"month_label"`
	Today      string    `json:"today"`
	PrevYear   int       `json:"prev_year"`
	PrevMonth  int       `json:"prev_month"`
	NextYear   int       `json:"next_year"`
	NextMonth  int       `json:"next_month"`
	Cells      []DayCell `json:"cells"`
}
