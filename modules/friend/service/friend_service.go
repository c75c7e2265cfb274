package service

import (
	"context"
	"strings"
	"time"

	"friendsync-api/core/constants"
	coreEntity "friendsync-api/core/entity"
	"friendsync-api/core/errors"
	"friendsync-api/modules/friend/dto"
	"friendsync-api/modules/friend/entity"
	"friendsync-api/modules/friend/repository"

	"github.com/google/uuid"
)

// FriendService handles friend registry business logic
type FriendService struct {
	repo repository.FriendRepositoryInterface
}

// FriendServiceInterface defines the service contract
type FriendServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateFriendRequest) (*dto.FriendResponse, *errors.AppError)
	GetByID(ctx context.Context, id string) (*dto.FriendResponse, *errors.AppError)
	List(ctx context.Context) ([]dto.FriendResponse, *errors.AppError)
	ToggleVisibility(ctx context.Context, id string) (*dto.FriendResponse, *errors.AppError)

	// MapByID exposes the registry snapshot to the event and calendar modules
	MapByID(ctx context.Context) map[string]entity.Friend
}

// NewFriendService creates a new friend service
func NewFriendService(repo repository.FriendRepositoryInterface) FriendServiceInterface {
	return &FriendService{repo: repo}
}

// Create adds a friend to the registry. New friends start visible.
func (s *FriendService) Create(ctx context.Context, req *dto.CreateFriendRequest) (*dto.FriendResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Friend name is required", nil)
	}

	color := req.Color
	if color == "" {
		color = constants.DefaultFriendColor
	}

	now := time.Now()
	friend := &entity.Friend{
		Name:    name,
		Color:   color,
		Visible: true,
		BaseEntity: coreEntity.BaseEntity{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.repo.Create(ctx, friend); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create friend", err)
	}

	return dto.ToFriendResponse(friend), nil
}

// GetByID retrieves one friend
func (s *FriendService) GetByID(ctx context.Context, id string) (*dto.FriendResponse, *errors.AppError) {
	friend, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get friend", err)
	}
	if friend == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Friend not found", nil)
	}
	return dto.ToFriendResponse(friend), nil
}

// List returns all friends in creation order for the sidebar
func (s *FriendService) List(ctx context.Context) ([]dto.FriendResponse, *errors.AppError) {
	friends, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list friends", err)
	}

	result := make([]dto.FriendResponse, 0, len(friends))
	for i := range friends {
		result = append(result, *dto.ToFriendResponse(&friends[i]))
	}
	return result, nil
}

// ToggleVisibility flips whether a friend's events appear in calendar views.
// The friend's events stay in the event store either way.
func (s *FriendService) ToggleVisibility(ctx context.Context, id string) (*dto.FriendResponse, *errors.AppError) {
	friend, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get friend", err)
	}
	if friend == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Friend not found", nil)
	}

	friend.Visible = !friend.Visible
	friend.UpdatedAt = time.Now()

	if _, err := s.repo.Update(ctx, friend); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update friend", err)
	}

	return dto.ToFriendResponse(friend), nil
}

// MapByID returns the id-keyed registry snapshot
func (s *FriendService) MapByID(ctx context.Context) map[string]entity.Friend {
	friends, err := s.repo.MapByID(ctx)
	if err != nil {
		return map[string]entity.Friend{}
	}
	return friends
}
