package service

import (
	"fmt"
	"time"

	"friendsync-api/core/constants"
	"friendsync-api/core/logger"
	"friendsync-api/core/utils"
	"friendsync-api/modules/event/entity"

	"github.com/teambition/rrule-go"
)

// RecurrenceExpander materializes concrete per-day event instances from
// recurring templates over a date window. It holds no state; determinism
// is part of the contract: the same templates and window always produce
// the same (template, date) set in the same order.
type RecurrenceExpander struct{}

// NewRecurrenceExpander creates a new expander
func NewRecurrenceExpander() *RecurrenceExpander {
	return &RecurrenceExpander{}
}

// Expand generates one EventInstance per included day per template.
// The window is inclusive on both ends; an inverted window produces an
// empty result, not an error. Templates with an unknown pattern are
// skipped rather than failing the whole run.
func (x *RecurrenceExpander) Expand(templates []entity.EventTemplate, windowStart, windowEnd time.Time) []entity.EventInstance {
	instances := make([]entity.EventInstance, 0)

	start := startOfDay(windowStart)
	end := startOfDay(windowEnd)
	if end.Before(start) {
		return instances
	}

	for i := range templates {
		days, err := x.OccurrenceDays(&templates[i], start, end)
		if err != nil {
			logger.Error("RecurrenceExpander:Expand:SkippingTemplate", err, "title", templates[i].Title)
			continue
		}
		for _, day := range days {
			instances = append(instances, x.Materialize(&templates[i], day))
		}
	}

	return instances
}

// OccurrenceDays returns the days within [start, end] on which the
// template recurs, ascending. Both bounds must already be day-aligned.
func (x *RecurrenceExpander) OccurrenceDays(template *entity.EventTemplate, start, end time.Time) ([]time.Time, error) {
	opt := rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
	}

	switch template.Pattern {
	case entity.PatternDaily:
		// every calendar day
	case entity.PatternWeekdays:
		opt.Freq = rrule.WEEKLY
		opt.Byweekday = []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR}
	default:
		return nil, fmt.Errorf("unknown recurrence pattern %q", template.Pattern)
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, err
	}

	return r.Between(start, end, true), nil
}

// Materialize synthesizes one instance for a template on a specific day.
// Every field is copied from the template; the id is freshly generated and
// unique for the life of the session.
func (x *RecurrenceExpander) Materialize(template *entity.EventTemplate, day time.Time) entity.EventInstance {
	return entity.EventInstance{
		ID:          utils.GenerateID(),
		Title:       template.Title,
		Date:        day.Format(constants.DateLayout),
		FriendID:    template.FriendID,
		StartTime:   template.StartTime,
		EndTime:     template.EndTime,
		Description: template.Description,
		Kind:        template.Kind,
		IsRecurring: true,
		TemplateID:  template.ID,
	}
}

// startOfDay truncates a time to its calendar date. Dates in this system
// are local calendar days with no timezone semantics, so UTC keeps the
// rrule arithmetic free of DST edges.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
