package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"friendsync-api/core/constants"
	"friendsync-api/core/errors"
	"friendsync-api/core/logger"
	"friendsync-api/core/utils"
	"friendsync-api/modules/event/dto"
	"friendsync-api/modules/event/entity"
	"friendsync-api/modules/event/repository"
	friendEntity "friendsync-api/modules/friend/entity"
	friendService "friendsync-api/modules/friend/service"
)

// EventService handles event business logic: one-off CRUD plus the
// recurring-template horizon.
type EventService struct {
	repo      repository.EventRepositoryInterface
	friendSvc friendService.FriendServiceInterface
	expander  *RecurrenceExpander

	// mu guards the template list and the materialized set against the
	// concurrent HTTP host; the operations themselves are single-writer.
	mu           sync.Mutex
	templates    []entity.EventTemplate
	materialized map[string]struct{}
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, *errors.AppError)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	Delete(ctx context.Context, id string) *errors.AppError
	ListForDate(ctx context.Context, date string) ([]dto.EventResponse, *errors.AppError)

	// RegisterTemplates installs the session's recurring templates.
	RegisterTemplates(ctx context.Context, templates []entity.EventTemplate) int
	// EnsureHorizon materializes recurring instances for the rolling
	// two-month window anchored at the given month, skipping any
	// (template, date) pair already materialized. Returns the number of
	// instances created.
	EnsureHorizon(ctx context.Context, year int, month time.Month) int
	// ListAll exposes the full event collection to the calendar module.
	ListAll(ctx context.Context) []entity.EventInstance
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface, friendSvc friendService.FriendServiceInterface) EventServiceInterface {
	return &EventService{
		repo:         repo,
		friendSvc:    friendSvc,
		expander:     NewRecurrenceExpander(),
		materialized: make(map[string]struct{}),
	}
}

// Create adds a one-off event on the requested day
func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event title is required", nil)
	}
	if req.FriendID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Friend selection is required", nil)
	}
	if _, err := time.Parse(constants.DateLayout, req.Date); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event date must be a valid YYYY-MM-DD date", err)
	}

	kind := entity.EventKind(req.Kind)
	if req.Kind == "" {
		kind = entity.EventKindBusy
	}
	if !kind.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event kind", nil)
	}

	if appErr := validateClockTime(req.StartTime); appErr != nil {
		return nil, appErr
	}
	if appErr := validateClockTime(req.EndTime); appErr != nil {
		return nil, appErr
	}

	event := &entity.EventInstance{
		ID:          utils.GenerateID(),
		Title:       title,
		Date:        req.Date,
		FriendID:    req.FriendID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: strings.TrimSpace(req.Description),
		Kind:        kind,
		IsRecurring: false,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return dto.ToEventResponse(event, s.friendFor(ctx, event.FriendID)), nil
}

// GetByID retrieves one event
func (s *EventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return dto.ToEventResponse(event, s.friendFor(ctx, event.FriendID)), nil
}

// Update edits an event in place. The id and the date the event is
// anchored to never change; empty request fields keep their current value.
func (s *EventService) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if req.Kind != "" && !entity.EventKind(req.Kind).Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown event kind", nil)
	}
	if req.StartTime != nil {
		if appErr := validateClockTime(*req.StartTime); appErr != nil {
			return nil, appErr
		}
	}
	if req.EndTime != nil {
		if appErr := validateClockTime(*req.EndTime); appErr != nil {
			return nil, appErr
		}
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		event.Title = title
	}
	if req.FriendID != "" {
		event.FriendID = req.FriendID
	}
	if req.Kind != "" {
		event.Kind = entity.EventKind(req.Kind)
	}
	// nil keeps the current value, an empty string clears the field
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.Description != nil {
		event.Description = strings.TrimSpace(*req.Description)
	}

	if _, err := s.repo.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	return dto.ToEventResponse(event, s.friendFor(ctx, event.FriendID)), nil
}

// Delete removes an event by id
func (s *EventService) Delete(ctx context.Context, id string) *errors.AppError {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return nil
}

// ListForDate returns the day drill-down detail list: events on the date
// whose friend exists and is currently visible.
func (s *EventService) ListForDate(ctx context.Context, date string) ([]dto.EventResponse, *errors.AppError) {
	if _, err := time.Parse(constants.DateLayout, date); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Date must be a valid YYYY-MM-DD date", err)
	}

	events, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}

	friends := s.friendSvc.MapByID(ctx)
	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		friend, ok := friends[events[i].FriendID]
		if !ok || !friend.Visible {
			continue
		}
		result = append(result, *dto.ToEventResponse(&events[i], &friend))
	}
	return result, nil
}

// RegisterTemplates installs recurring templates for the session.
// Templates with an invalid pattern are rejected and logged.
func (s *EventService) RegisterTemplates(ctx context.Context, templates []entity.EventTemplate) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	registered := 0
	for _, t := range templates {
		if !t.Pattern.Valid() {
			logger.Warn("EventService:RegisterTemplates:InvalidPattern", "title", t.Title, "pattern", t.Pattern)
			continue
		}
		if t.ID == "" {
			t.ID = utils.GenerateID()
		}
		if t.Kind == "" {
			t.Kind = entity.EventKindBusy
		}
		s.templates = append(s.templates, t)
		registered++
	}
	return registered
}

// EnsureHorizon materializes recurring instances from the first day of the
// reference month through the last day of the following month. Days whose
// (template, date) pair was materialized before are skipped, so instances
// the user has since edited or deleted are never resurrected by month
// navigation.
func (s *EventService) EnsureHorizon(ctx context.Context, year int, month time.Month) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	windowStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := windowStart.AddDate(0, 2, -1)

	created := 0
	for i := range s.templates {
		template := &s.templates[i]

		days, err := s.expander.OccurrenceDays(template, windowStart, windowEnd)
		if err != nil {
			logger.Error("EventService:EnsureHorizon:ExpandError", err, "template", template.Title)
			continue
		}

		for _, day := range days {
			key := template.ID + "|" + day.Format(constants.DateLayout)
			if _, seen := s.materialized[key]; seen {
				continue
			}
			s.materialized[key] = struct{}{}

			instance := s.expander.Materialize(template, day)
			if err := s.repo.Create(ctx, &instance); err != nil {
				logger.Error("EventService:EnsureHorizon:CreateError", err, "template", template.Title, "date", instance.Date)
				continue
			}
			created++
		}
	}

	if created > 0 {
		logger.Debug("EventService:EnsureHorizon:Materialized",
			"year", year,
			"month", int(month),
			"created", created,
		)
	}
	return created
}

// ListAll returns the full event collection in insertion order
func (s *EventService) ListAll(ctx context.Context) []entity.EventInstance {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil
	}
	return events
}

func (s *EventService) friendFor(ctx context.Context, friendID string) *friendEntity.Friend {
	friends := s.friendSvc.MapByID(ctx)
	if friend, ok := friends[friendID]; ok {
		return &friend
	}
	return nil
}

func validateClockTime(value string) *errors.AppError {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(constants.TimeLayout, value); err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Times must be in 24-hour HH:MM form", err)
	}
	return nil
}
