package dto

import (
	"friendsync-api/modules/idea/entity"
)

// Vote directions
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// CreateIdeaRequest is the payload for suggesting an activity
type CreateIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SuggestedBy string `json:"suggested_by"`
	Timeframe   string `json:"timeframe"`
	Category    string `json:"category"`
}

// VoteRequest marks or clears a voter's interest in an idea
type VoteRequest struct {
	VoterID   string `json:"voter_id"`
	Direction string `json:"direction"`
}

// IdeaResponse is the API representation of an idea
type IdeaResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SuggestedBy     string   `json:"suggested_by"`
	SuggestedByName string   `json:"suggested_by_name"`
	Timeframe       string   `json:"timeframe"`
	Category        string   `json:"category"`
	CategorySlug    string   `json:"category_slug"`
	Interested      []string `json:"interested"`
	InterestedCount int      `json:"interested_count"`
	Status          string   `json:"status"`
	DateCreated     string   `json:"date_created"`
}

// ToIdeaResponse maps an idea to its response shape. suggestedByName is
// resolved by the service so deleted or unknown suggesters still render.
func ToIdeaResponse(i *entity.Idea, suggestedByName string) *IdeaResponse {
	interested := make([]string, len(i.Interested))
	copy(interested, i.Interested)

	return &IdeaResponse{
		ID:              i.ID,
		Title:           i.Title,
		Description:     i.Description,
		SuggestedBy:     i.SuggestedBy,
		SuggestedByName: suggestedByName,
		Timeframe:       i.Timeframe,
		Category:        i.Category,
		CategorySlug:    i.CategorySlug,
		Interested:      interested,
		InterestedCount: len(interested),
		Status:          i.Status,
		DateCreated:     i.DateCreated,
	}
}
