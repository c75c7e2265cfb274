package router

import (
	"friendsync-api/modules/idea/controller"

	"github.com/labstack/echo/v4"
)

// IdeaRouter handles idea routes
type IdeaRouter struct {
	IdeaController *controller.IdeaController
}

// NewIdeaRouter creates a new router
func NewIdeaRouter(ideaController *controller.IdeaController) *IdeaRouter {
	return &IdeaRouter{
		IdeaController: ideaController,
	}
}

// Setup registers idea routes
func (r *IdeaRouter) Setup(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	ideaRoutes := v1.Group("/ideas")
	ideaRoutes.POST("", r.IdeaController.CreateIdea)
	ideaRoutes.GET("", r.IdeaController.ListIdeas)
	ideaRoutes.POST("/:id/vote", r.IdeaController.VoteIdea)
}
