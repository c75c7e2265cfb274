package server

import (
	"context"
	"time"

	"friendsync-api/core/config"
	"friendsync-api/core/constants"
	"friendsync-api/core/logger"
	eventDto "friendsync-api/modules/event/dto"
	eventEntity "friendsync-api/modules/event/entity"
	eventService "friendsync-api/modules/event/service"
	friendDto "friendsync-api/modules/friend/dto"
	friendService "friendsync-api/modules/friend/service"
	ideaDto "friendsync-api/modules/idea/dto"
	ideaService "friendsync-api/modules/idea/service"
)

// seedDemoData populates the in-memory stores with a small demo session:
// four friends, three recurring commitments, two one-off events and two
// activity ideas. The recurring horizon is materialized for the reference
// month up front so the first grid request already has instances.
func seedDemoData(
	ctx context.Context,
	friendSvc friendService.FriendServiceInterface,
	eventSvc eventService.EventServiceInterface,
	ideaSvc ideaService.IdeaServiceInterface,
	cfg *config.Config,
) {
	friends := map[string]string{}
	for _, f := range []friendDto.CreateFriendRequest{
		{Name: "Toby", Color: "#3B82F6"},
		{Name: "Sam", Color: "#EF4444"},
		{Name: "Jacob", Color: "#10B981"},
		{Name: "Ben", Color: "#F59E0B"},
	} {
		created, appErr := friendSvc.Create(ctx, &f)
		if appErr != nil {
			logger.Error("Seed:Friend:CreateError", appErr, "name", f.Name)
			continue
		}
		friends[f.Name] = created.ID
	}

	registered := eventSvc.RegisterTemplates(ctx, []eventEntity.EventTemplate{
		{
			Title:     "College",
			FriendID:  friends["Toby"],
			StartTime: "09:00",
			EndTime:   "17:00",
			Kind:      eventEntity.EventKindBusy,
			Pattern:   eventEntity.PatternWeekdays,
		},
		{
			Title:     "Work",
			FriendID:  friends["Sam"],
			StartTime: "08:30",
			EndTime:   "17:30",
			Kind:      eventEntity.EventKindBusy,
			Pattern:   eventEntity.PatternWeekdays,
		},
		{
			Title:     "Gym session",
			FriendID:  friends["Jacob"],
			StartTime: "06:00",
			EndTime:   "07:00",
			Kind:      eventEntity.EventKindBusy,
			Pattern:   eventEntity.PatternDaily,
		},
	})

	for _, req := range []eventDto.CreateEventRequest{
		{
			Title:     "Available for hangout",
			Date:      "2025-09-22",
			FriendID:  friends["Toby"],
			Kind:      string(eventEntity.EventKindAvailable),
			StartTime: "19:00",
		},
		{
			Title:     "Movie night",
			Date:      "2025-09-24",
			FriendID:  friends["Ben"],
			Kind:      string(eventEntity.EventKindHangout),
			StartTime: "20:00",
		},
	} {
		if _, appErr := eventSvc.Create(ctx, &req); appErr != nil {
			logger.Error("Seed:Event:CreateError", appErr, "title", req.Title)
		}
	}

	seedIdea(ctx, ideaSvc, &ideaDto.CreateIdeaRequest{
		Title:       "Cinema trip",
		Description: "Catch the new release together",
		SuggestedBy: friends["Sam"],
		Timeframe:   "This weekend",
		Category:    "Entertainment",
	}, []string{friends["Toby"], friends["Jacob"]})

	seedIdea(ctx, ideaSvc, &ideaDto.CreateIdeaRequest{
		Title:       "Italian restaurant",
		Description: "Try the new place downtown",
		SuggestedBy: friends["Jacob"],
		Timeframe:   "Next week",
		Category:    "Food & Drink",
	}, []string{friends["Toby"], friends["Sam"]})

	// Materialize the reference month so the first grid view is populated
	refMonth := time.Now().UTC()
	if cfg.App.ReferenceDate != "" {
		if parsed, err := time.Parse(constants.DateLayout, cfg.App.ReferenceDate); err == nil {
			refMonth = parsed
		}
	}
	created := eventSvc.EnsureHorizon(ctx, refMonth.Year(), refMonth.Month())

	logger.Info("Seed:Done",
		"friends", len(friends),
		"templates", registered,
		"instances", created,
	)
}

func seedIdea(ctx context.Context, ideaSvc ideaService.IdeaServiceInterface, req *ideaDto.CreateIdeaRequest, interested []string) {
	created, appErr := ideaSvc.Create(ctx, req)
	if appErr != nil {
		logger.Error("Seed:Idea:CreateError", appErr, "title", req.Title)
		return
	}
	for _, voterID := range interested {
		vote := &ideaDto.VoteRequest{VoterID: voterID, Direction: ideaDto.VoteUp}
		if _, appErr := ideaSvc.Vote(ctx, created.ID, vote); appErr != nil {
			logger.Error("Seed:Idea:VoteError", appErr, "title", req.Title)
		}
	}
}
