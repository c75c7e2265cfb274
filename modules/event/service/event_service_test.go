package service

import (
	"context"
	"testing"
	"time"

	"friendsync-api/core/errors"
	"friendsync-api/modules/event/dto"
	"friendsync-api/modules/event/entity"
	"friendsync-api/modules/event/repository"
	friendDto "friendsync-api/modules/friend/dto"
	friendRepository "friendsync-api/modules/friend/repository"
	friendService "friendsync-api/modules/friend/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func newTestServices(t *testing.T) (EventServiceInterface, friendService.FriendServiceInterface, string) {
	t.Helper()

	friendSvc := friendService.NewFriendService(friendRepository.NewFriendRepository())
	friend, appErr := friendSvc.Create(context.Background(), &friendDto.CreateFriendRequest{Name: "Toby", Color: "#3B82F6"})
	require.Nil(t, appErr)

	eventSvc := NewEventService(repository.NewEventRepository(), friendSvc)
	return eventSvc, friendSvc, friend.ID
}

func TestCreateEventValidation(t *testing.T) {
	eventSvc, _, friendID := newTestServices(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  dto.CreateEventRequest
	}{
		{"missing title", dto.CreateEventRequest{Date: "2025-09-22", FriendID: friendID}},
		{"blank title", dto.CreateEventRequest{Title: "   ", Date: "2025-09-22", FriendID: friendID}},
		{"missing friend", dto.CreateEventRequest{Title: "Hangout", Date: "2025-09-22"}},
		{"bad date", dto.CreateEventRequest{Title: "Hangout", Date: "22/09/2025", FriendID: friendID}},
		{"bad kind", dto.CreateEventRequest{Title: "Hangout", Date: "2025-09-22", FriendID: friendID, Kind: "party"}},
		{"bad time", dto.CreateEventRequest{Title: "Hangout", Date: "2025-09-22", FriendID: friendID, StartTime: "7pm"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, appErr := eventSvc.Create(ctx, &tc.req)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
		})
	}

	// rejected requests never reach the store
	assert.Empty(t, eventSvc.ListAll(ctx))
}

func TestCreateEventDefaultsKindToBusy(t *testing.T) {
	eventSvc, _, friendID := newTestServices(t)

	created, appErr := eventSvc.Create(context.Background(), &dto.CreateEventRequest{
		Title:    "Errand",
		Date:     "2025-09-22",
		FriendID: friendID,
	})
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.EventKindBusy), created.Kind)
	assert.Equal(t, "Toby", created.FriendName)
}

func TestUpdateEventPreservesIdentityAndDate(t *testing.T) {
	eventSvc, _, friendID := newTestServices(t)
	ctx := context.Background()

	created, appErr := eventSvc.Create(ctx, &dto.CreateEventRequest{
		Title:     "Movie night",
		Date:      "2025-09-24",
		FriendID:  friendID,
		Kind:      string(entity.EventKindHangout),
		StartTime: "20:00",
	})
	require.Nil(t, appErr)

	updated, appErr := eventSvc.Update(ctx, created.ID, &dto.UpdateEventRequest{
		Title:     "Movie marathon",
		StartTime: ptr("19:00"),
	})
	require.Nil(t, appErr)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "2025-09-24", updated.Date)
	assert.Equal(t, "Movie marathon", updated.Title)
	assert.Equal(t, "19:00", updated.StartTime)
	// untouched fields keep their values
	assert.Equal(t, string(entity.EventKindHangout), updated.Kind)
}

func TestUpdateEventClearsOptionalFields(t *testing.T) {
	eventSvc, _, friendID := newTestServices(t)
	ctx := context.Background()

	created, appErr := eventSvc.Create(ctx, &dto.CreateEventRequest{
		Title:       "Movie night",
		Date:        "2025-09-24",
		FriendID:    friendID,
		StartTime:   "20:00",
		EndTime:     "22:30",
		Description: "Bring snacks",
	})
	require.Nil(t, appErr)

	// an explicit empty string empties the field; omitted fields survive
	updated, appErr := eventSvc.Update(ctx, created.ID, &dto.UpdateEventRequest{
		EndTime:     ptr(""),
		Description: ptr(""),
	})
	require.Nil(t, appErr)

	assert.Equal(t, "20:00", updated.StartTime)
	assert.Empty(t, updated.EndTime)
	assert.Empty(t, updated.Description)
	assert.Equal(t, "Movie night", updated.Title)
}

func TestUpdateEventRejectsBadTime(t *testing.T) {
	eventSvc, _, friendID := newTestServices(t)
	ctx := context.Background()

	created, appErr := eventSvc.Create(ctx, &dto.CreateEventRequest{
		Title:    "Movie night",
		Date:     "2025-09-24",
		FriendID: friendID,
	})
	require.Nil(t, appErr)

	_, appErr = eventSvc.Update(ctx, created.ID, &dto.UpdateEventRequest{StartTime: ptr("8pm")})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestUpdateEventNotFound(t *testing.T) {
	eventSvc, _, _ := newTestServices(t)

	_, appErr := eventSvc.Update(context.Background(), "missing", &dto.UpdateEventRequest{Title: "X"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestDeleteEventNotFound(t *testing.T) {
	eventSvc, _, _ := newTestServices(t)

	appErr := eventSvc.Delete(context.Background(), "missing")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestEnsureHorizonMaterializesOnce(t *testing.T) {
	eventSvc, _, friendID := newTestServices(t)
	ctx := context.Background()

	registered := eventSvc.RegisterTemplates(ctx, []entity.EventTemplate{
		{Title: "Gym session", FriendID: friendID, StartTime: "06:00", EndTime: "07:00", Pattern: entity.PatternDaily},
	})
	require.Equal(t, 1, registered)

	// September anchor covers September and October: 30 + 31 days
	created := eventSvc.EnsureHorizon(ctx, 2025, time.September)
	assert.Equal(t, 61, created)
	assert.Len(t, eventSvc.ListAll(ctx), 61)

	// repeat navigation creates nothing new
	assert.Equal(t, 0, eventSvc.EnsureHorizon(ctx, 2025, time.September))

	// moving one month forward only fills the uncovered November days
	assert.Equal(t, 30, eventSvc.EnsureHorizon(ctx, 2025, time.October))
}

func TestEnsureHorizonDoesNotResurrectDeletedInstances(t *testing.T) {
	eventSvc, _, friendID := newTestServices(t)
	ctx := context.Background()

	eventSvc.RegisterTemplates(ctx, []entity.EventTemplate{
		{Title: "Gym session", FriendID: friendID, Pattern: entity.PatternDaily},
	})
	eventSvc.EnsureHorizon(ctx, 2025, time.September)

	all := eventSvc.ListAll(ctx)
	require.NotEmpty(t, all)
	require.Nil(t, eventSvc.Delete(ctx, all[0].ID))

	assert.Equal(t, 0, eventSvc.EnsureHorizon(ctx, 2025, time.September))
	assert.Len(t, eventSvc.ListAll(ctx), len(all)-1)
}

func TestRegisterTemplatesRejectsInvalidPattern(t *testing.T) {
	eventSvc, _, friendID := newTestServices(t)

	registered := eventSvc.RegisterTemplates(context.Background(), []entity.EventTemplate{
		{Title: "Valid", FriendID: friendID, Pattern: entity.PatternWeekdays},
		{Title: "Invalid", FriendID: friendID, Pattern: "monthly"},
	})
	assert.Equal(t, 1, registered)
}

func TestListForDateRespectsVisibility(t *testing.T) {
	eventSvc, friendSvc, friendID := newTestServices(t)
	ctx := context.Background()

	_, appErr := eventSvc.Create(ctx, &dto.CreateEventRequest{
		Title:    "Lunch",
		Date:     "2025-09-22",
		FriendID: friendID,
	})
	require.Nil(t, appErr)

	// an event pointing at a friend id that no longer resolves is tolerated
	// and simply excluded
	_, appErr = eventSvc.Create(ctx, &dto.CreateEventRequest{
		Title:    "Orphaned",
		Date:     "2025-09-22",
		FriendID: "no-such-friend",
	})
	require.Nil(t, appErr)

	events, appErr := eventSvc.ListForDate(ctx, "2025-09-22")
	require.Nil(t, appErr)
	require.Len(t, events, 1)
	assert.Equal(t, "Lunch", events[0].Title)

	_, appErr = friendSvc.ToggleVisibility(ctx, friendID)
	require.Nil(t, appErr)

	events, appErr = eventSvc.ListForDate(ctx, "2025-09-22")
	require.Nil(t, appErr)
	assert.Empty(t, events)

	// hiding never deletes; the event is still in the store
	assert.Len(t, eventSvc.ListAll(ctx), 2)
}

func TestListForDateRejectsBadDate(t *testing.T) {
	eventSvc, _, _ := newTestServices(t)

	_, appErr := eventSvc.ListForDate(context.Background(), "not-a-date")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}
