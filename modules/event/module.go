package event

import (
	"friendsync-api/modules/event/controller"
	"friendsync-api/modules/event/repository"
	"friendsync-api/modules/event/router"
	"friendsync-api/modules/event/service"
	friendService "friendsync-api/modules/friend/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module, registers routes and returns the
// service for use by the calendar module
func Init(e *echo.Echo, friendSvc friendService.FriendServiceInterface) service.EventServiceInterface {
	repo := repository.NewEventRepository()
	svc := service.NewEventService(repo, friendSvc)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e)

	return svc
}
