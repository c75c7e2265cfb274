package service

import (
	"context"
	"time"

	"friendsync-api/core/constants"
	"friendsync-api/core/errors"
	"friendsync-api/modules/calendar/dto"
	eventDto "friendsync-api/modules/event/dto"
	eventEntity "friendsync-api/modules/event/entity"
	eventService "friendsync-api/modules/event/service"
	friendService "friendsync-api/modules/friend/service"
)

// CalendarService builds the month-view grid from the event collection and
// the friend registry. It never mutates either; month navigation is just a
// rebuild with a shifted reference month.
type CalendarService struct {
	eventSvc  eventService.EventServiceInterface
	friendSvc friendService.FriendServiceInterface
}

// CalendarServiceInterface defines the service contract
type CalendarServiceInterface interface {
	BuildGrid(ctx context.Context, year int, month time.Month, today string) (*dto.GridResponse, *errors.AppError)
}

// NewCalendarService creates a new calendar service
func NewCalendarService(eventSvc eventService.EventServiceInterface, friendSvc friendService.FriendServiceInterface) CalendarServiceInterface {
	return &CalendarService{
		eventSvc:  eventSvc,
		friendSvc: friendSvc,
	}
}

// BuildGrid computes the 42-cell view for the reference month. The range
// starts on the Sunday on or before the 1st and always spans 6 full weeks,
// so the grid height never changes while navigating months.
func (s *CalendarService) BuildGrid(ctx context.Context, year int, month time.Month, today string) (*dto.GridResponse, *errors.AppError) {
	if month < time.January || month > time.December {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Month must be between 1 and 12", nil)
	}
	if _, err := time.Parse(constants.DateLayout, today); err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Today must be a valid YYYY-MM-DD date", err)
	}

	// Viewing a month is what extends the recurring-event horizon.
	s.eventSvc.EnsureHorizon(ctx, year, month)

	events := s.eventSvc.ListAll(ctx)
	friends := s.friendSvc.MapByID(ctx)

	// Index events by date once so every cell is an O(1) lookup.
	byDate := make(map[string][]eventEntity.EventInstance, len(events))
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}

	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))

	cells := make([]dto.DayCell, 0, constants.CalendarGridDays)
	for i := 0; i < constants.CalendarGridDays; i++ {
		day := gridStart.AddDate(0, 0, i)
		date := day.Format(constants.DateLayout)

		dayEvents := byDate[date]
		visible := make([]eventDto.EventResponse, 0, len(dayEvents))
		for j := range dayEvents {
			friend, ok := friends[dayEvents[j].FriendID]
			if !ok || !friend.Visible {
				continue
			}
			visible = append(visible, *eventDto.ToEventResponse(&dayEvents[j], &friend))
		}

		cells = append(cells, dto.DayCell{
			Date:           date,
			DayOfMonth:     day.Day(),
			IsOutsideMonth: day.Month() != month || day.Year() != year,
			IsToday:        date == today,
			VisibleEvents:  visible,
			Indicator:      buildIndicator(visible),
		})
	}

	prevYear, prevMonth := ShiftMonth(year, month, -1)
	nextYear, nextMonth := ShiftMonth(year, month, 1)

	return &dto.GridResponse{
		Year:       year,
		Month:      int(month),
		MonthLabel: firstOfMonth.Format("January 2006"),
		Today:      today,
		PrevYear:   prevYear,
		PrevMonth:  int(prevMonth),
		NextYear:   nextYear,
		NextMonth:  int(nextMonth),
		Cells:      cells,
	}, nil
}

// buildIndicator decides how a cell summarizes its events: up to three
// events render as one colored dot each; four or more collapse into a
// single count badge so small cells never overflow.
func buildIndicator(visible []eventDto.EventResponse) dto.EventIndicator {
	count := len(visible)

	switch {
	case count == 0:
		return dto.EventIndicator{Mode: dto.IndicatorNone}
	case count <= constants.MaxDotIndicators:
		colors := make([]string, 0, count)
		for i := range visible {
			colors = append(colors, visible[i].FriendColor)
		}
		return dto.EventIndicator{Mode: dto.IndicatorDots, Count: count, Colors: colors}
	default:
		return dto.EventIndicator{Mode: dto.IndicatorBadge, Count: count}
	}
}

// ShiftMonth moves a reference month by delta months, carrying the year
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	shifted := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return shifted.Year(), shifted.Month()
}
