package calendar

import (
	"friendsync-api/modules/calendar/controller"
	"friendsync-api/modules/calendar/router"
	"friendsync-api/modules/calendar/service"
	eventService "friendsync-api/modules/event/service"
	friendService "friendsync-api/modules/friend/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the calendar module and registers routes
func Init(e *echo.Echo, eventSvc eventService.EventServiceInterface, friendSvc friendService.FriendServiceInterface) service.CalendarServiceInterface {
	svc := service.NewCalendarService(eventSvc, friendSvc)
	ctrl := controller.NewCalendarController(svc)
	rtr := router.NewCalendarRouter(ctrl)

	rtr.Setup(e)

	return svc
}
