package service

import (
	"context"
	"testing"

	"friendsync-api/core/constants"
	"friendsync-api/core/errors"
	"friendsync-api/modules/friend/dto"
	"friendsync-api/modules/friend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() FriendServiceInterface {
	return NewFriendService(repository.NewFriendRepository())
}

func TestCreateFriendDefaults(t *testing.T) {
	svc := newService()

	created, appErr := svc.Create(context.Background(), &dto.CreateFriendRequest{Name: "Toby"})
	require.Nil(t, appErr)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Toby", created.Name)
	assert.Equal(t, constants.DefaultFriendColor, created.Color)
	assert.True(t, created.Visible)
}

func TestCreateFriendRequiresName(t *testing.T) {
	svc := newService()

	_, appErr := svc.Create(context.Background(), &dto.CreateFriendRequest{Name: "   "})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestListPreservesCreationOrder(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, name := range []string{"Toby", "Sam", "Jacob"} {
		_, appErr := svc.Create(ctx, &dto.CreateFriendRequest{Name: name})
		require.Nil(t, appErr)
	}

	friends, appErr := svc.List(ctx)
	require.Nil(t, appErr)
	require.Len(t, friends, 3)
	assert.Equal(t, "Toby", friends[0].Name)
	assert.Equal(t, "Sam", friends[1].Name)
	assert.Equal(t, "Jacob", friends[2].Name)
}

func TestToggleVisibility(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, appErr := svc.Create(ctx, &dto.CreateFriendRequest{Name: "Sam"})
	require.Nil(t, appErr)

	toggled, appErr := svc.ToggleVisibility(ctx, created.ID)
	require.Nil(t, appErr)
	assert.False(t, toggled.Visible)

	toggled, appErr = svc.ToggleVisibility(ctx, created.ID)
	require.Nil(t, appErr)
	assert.True(t, toggled.Visible)
}

func TestToggleVisibilityNotFound(t *testing.T) {
	svc := newService()

	_, appErr := svc.ToggleVisibility(context.Background(), "missing")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newService()

	_, appErr := svc.GetByID(context.Background(), "missing")
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
