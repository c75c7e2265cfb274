package dto

import (
	"friendsync-api/modules/friend/entity"
)

// ===================== Request DTOs =====================

// CreateFriendRequest for adding a friend to the group
type CreateFriendRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// ===================== Response DTOs =====================

// FriendResponse for friend details and the sidebar list
type FriendResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Visible bool   `json:"visible"`
}

// ===================== Mapper Functions =====================

// ToFriendResponse maps entity to DTO
func ToFriendResponse(f *entity.Friend) *FriendResponse {
	return &FriendResponse{
		ID:      f.ID,
		Name:    f.Name,
		Color:   f.Color,
		Visible: f.Visible,
	}
}
