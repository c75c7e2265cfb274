package entity

import (
	coreEntity "friendsync-api/core/entity"
)

// Idea is an activity suggestion friends can mark interest in. Interested
// holds friend ids; a friend appears at most once regardless of how many
// times they vote.
type Idea struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	SuggestedBy  string   `json:"suggested_by"`
	Timeframe    string   `json:"timeframe"`
	Category     string   `json:"category"`
	CategorySlug string   `json:"category_slug"`
	Interested   []string `json:"interested"`
	Status       string   `json:"status"`
	DateCreated  string   `json:"date_created"`
	coreEntity.BaseEntity
}

// HasInterest reports whether the friend already voted up
func (i *Idea) HasInterest(friendID string) bool {
	for _, id := range i.Interested {
		if id == friendID {
			return true
		}
	}
	return false
}
