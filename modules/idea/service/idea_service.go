package service

import (
	"context"
	"strings"
	"time"

	"friendsync-api/core/constants"
	coreEntity "friendsync-api/core/entity"
	"friendsync-api/core/errors"
	"friendsync-api/core/logger"
	"friendsync-api/modules/idea/dto"
	"friendsync-api/modules/idea/entity"
	"friendsync-api/modules/idea/repository"
	friendService "friendsync-api/modules/friend/service"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// IdeaService handles activity idea business logic
type IdeaService struct {
	repo      repository.IdeaRepositoryInterface
	friendSvc friendService.FriendServiceInterface
}

// IdeaServiceInterface defines the service contract
type IdeaServiceInterface interface {
	Create(ctx context.Context, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, *errors.AppError)
	List(ctx context.Context, filter string) ([]dto.IdeaResponse, *errors.AppError)
	Vote(ctx context.Context, id string, req *dto.VoteRequest) (*dto.IdeaResponse, *errors.AppError)
}

// NewIdeaService creates a new idea service
func NewIdeaService(repo repository.IdeaRepositoryInterface, friendSvc friendService.FriendServiceInterface) IdeaServiceInterface {
	return &IdeaService{
		repo:      repo,
		friendSvc: friendSvc,
	}
}

// Create suggests a new activity idea. The suggester is recorded but does
// not count as interested until they vote.
func (s *IdeaService) Create(ctx context.Context, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, *errors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Idea title is required", nil)
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Idea category is required", nil)
	}

	timeframe := strings.TrimSpace(req.Timeframe)
	if timeframe == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Idea timeframe is required", nil)
	}

	if req.SuggestedBy == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Suggester id is required", nil)
	}

	now := time.Now()
	idea := &entity.Idea{
		Title:        title,
		Description:  strings.TrimSpace(req.Description),
		SuggestedBy:  req.SuggestedBy,
		Timeframe:    timeframe,
		Category:     category,
		CategorySlug: slug.Make(category),
		Interested:   []string{},
		Status:       constants.IdeaStatusSuggested,
		DateCreated:  now.UTC().Format(constants.DateLayout),
		BaseEntity: coreEntity.BaseEntity{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.repo.Create(ctx, idea); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create idea", err)
	}

	logger.Info("IdeaService:Create:Suggested", "id", idea.ID, "category", idea.CategorySlug)

	return dto.ToIdeaResponse(idea, s.suggesterName(ctx, idea.SuggestedBy)), nil
}

// List returns ideas in suggestion order, optionally narrowed to one
// category. The filter matches on category slug; "all" or an empty filter
// returns everything.
func (s *IdeaService) List(ctx context.Context, filter string) ([]dto.IdeaResponse, *errors.AppError) {
	var (
		ideas []entity.Idea
		err   error
	)

	normalized := slug.Make(strings.TrimSpace(filter))
	if normalized == "" || normalized == constants.IdeaFilterAll {
		ideas, err = s.repo.List(ctx)
	} else {
		ideas, err = s.repo.ListByCategorySlug(ctx, normalized)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list ideas", err)
	}

	friends := s.friendSvc.MapByID(ctx)
	result := make([]dto.IdeaResponse, 0, len(ideas))
	for i := range ideas {
		name := constants.UnknownFriendName
		if friend, ok := friends[ideas[i].SuggestedBy]; ok {
			name = friend.Name
		}
		result = append(result, *dto.ToIdeaResponse(&ideas[i], name))
	}
	return result, nil
}

// Vote marks or clears a voter's interest. Both directions are idempotent:
// an up vote from an already-interested voter and a down vote from a voter
// who never voted both leave the idea unchanged.
func (s *IdeaService) Vote(ctx context.Context, id string, req *dto.VoteRequest) (*dto.IdeaResponse, *errors.AppError) {
	if req.VoterID == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Voter id is required", nil)
	}
	if req.Direction != dto.VoteUp && req.Direction != dto.VoteDown {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Direction must be up or down", nil)
	}

	idea, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get idea", err)
	}
	if idea == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Idea not found", nil)
	}

	changed := false
	switch req.Direction {
	case dto.VoteUp:
		if !idea.HasInterest(req.VoterID) {
			idea.Interested = append(idea.Interested, req.VoterID)
			changed = true
		}
	case dto.VoteDown:
		// removal builds a fresh slice; shifting in place would write into
		// the stored idea's backing array outside the store's lock
		if idea.HasInterest(req.VoterID) {
			remaining := make([]string, 0, len(idea.Interested)-1)
			for _, voter := range idea.Interested {
				if voter != req.VoterID {
					remaining = append(remaining, voter)
				}
			}
			idea.Interested = remaining
			changed = true
		}
	}

	if changed {
		idea.UpdatedAt = time.Now()
		if _, err := s.repo.Update(ctx, idea); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update idea", err)
		}
	}

	return dto.ToIdeaResponse(idea, s.suggesterName(ctx, idea.SuggestedBy)), nil
}

func (s *IdeaService) suggesterName(ctx context.Context, friendID string) string {
	if friend, ok := s.friendSvc.MapByID(ctx)[friendID]; ok {
		return friend.Name
	}
	return constants.UnknownFriendName
}
