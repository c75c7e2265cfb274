package entity

import (
	coreEntity "friendsync-api/core/entity"
)

// Friend is one member of the group sharing the calendar. Friends are
// created by user action and never deleted; hiding one only toggles
// Visible, their events stay in the store.
type Friend struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Visible bool   `json:"visible"`
	coreEntity.BaseEntity
}
