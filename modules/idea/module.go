package idea

import (
	"friendsync-api/modules/idea/controller"
	"friendsync-api/modules/idea/repository"
	"friendsync-api/modules/idea/router"
	"friendsync-api/modules/idea/service"
	friendService "friendsync-api/modules/friend/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the idea module and registers routes
func Init(e *echo.Echo, friendSvc friendService.FriendServiceInterface) service.IdeaServiceInterface {
	repo := repository.NewIdeaRepository()
	svc := service.NewIdeaService(repo, friendSvc)
	ctrl := controller.NewIdeaController(svc)
	rtr := router.NewIdeaRouter(ctrl)

	rtr.Setup(e)

	return svc
}
