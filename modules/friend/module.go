package friend

import (
	"friendsync-api/modules/friend/controller"
	"friendsync-api/modules/friend/repository"
	"friendsync-api/modules/friend/router"
	"friendsync-api/modules/friend/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the friend module, registers routes and returns the
// service for use by the event, calendar and idea modules
func Init(e *echo.Echo) service.FriendServiceInterface {
	repo := repository.NewFriendRepository()
	svc := service.NewFriendService(repo)
	ctrl := controller.NewFriendController(svc)
	rtr := router.NewFriendRouter(ctrl)

	rtr.Setup(e)

	return svc
}
