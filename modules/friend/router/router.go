package router

import (
	"friendsync-api/modules/friend/controller"

	"github.com/labstack/echo/v4"
)

// FriendRouter handles friend routes
type FriendRouter struct {
	FriendController *controller.FriendController
}

// NewFriendRouter creates a new router
func NewFriendRouter(friendController *controller.FriendController) *FriendRouter {
	return &FriendRouter{
		FriendController: friendController,
	}
}

// Setup registers friend routes
func (r *FriendRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	friendRoutes := v1.Group("/friends")
	friendRoutes.POST("", r.FriendController.CreateFriend)
	friendRoutes.GET("", r.FriendController.ListFriends)
	friendRoutes.GET("/:id", r.FriendController.GetFriend)
	friendRoutes.PATCH("/:id/visibility", r.FriendController.ToggleVisibility)
}
