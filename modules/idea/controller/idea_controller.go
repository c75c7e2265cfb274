package controller

import (
	"friendsync-api/core/controller"
	"friendsync-api/core/errors"
	"friendsync-api/modules/idea/dto"
	"friendsync-api/modules/idea/service"

	"github.com/labstack/echo/v4"
)

// IdeaController handles idea HTTP requests
type IdeaController struct {
	controller.BaseController
	IdeaService service.IdeaServiceInterface
}

// NewIdeaController creates a new controller
func NewIdeaController(svc service.IdeaServiceInterface) *IdeaController {
	return &IdeaController{
		BaseController: controller.NewBaseController(),
		IdeaService:    svc,
	}
}

// CreateIdea handles POST /ideas
// @Summary Suggest an activity idea
// @Tags Idea
// @Accept json
// @Produce json
// @Param request body dto.CreateIdeaRequest true "Idea details"
// @Success 200 {object} dto.IdeaResponse
// @Failure 400 {object} errors.AppError
// @Router /ideas [post]
func (c *IdeaController) CreateIdea(ctx echo.Context) error {
	var req dto.CreateIdeaRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.IdeaService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Idea created successfully")
}

// ListIdeas handles GET /ideas?filter=
// @Summary List activity ideas
// @Description List ideas in suggestion order, optionally filtered by category
// @Tags Idea
// @Produce json
// @Param filter query string false "Category filter (slug or name; 'all' for everything)"
// @Success 200 {array} dto.IdeaResponse
// @Router /ideas [get]
func (c *IdeaController) ListIdeas(ctx echo.Context) error {
	result, appErr := c.IdeaService.List(ctx.Request().Context(), ctx.QueryParam("filter"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// VoteIdea handles POST /ideas/:id/vote
// @Summary Vote on an idea
// @Description Mark or clear a voter's interest; repeat votes in the same direction are no-ops
// @Tags Idea
// @Accept json
// @Produce json
// @Param id path string true "Idea ID"
// @Param request body dto.VoteRequest true "Vote"
// @Success 200 {object} dto.IdeaResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /ideas/{id}/vote [post]
func (c *IdeaController) VoteIdea(ctx echo.Context) error {
	var req dto.VoteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.IdeaService.Vote(ctx.Request().Context(), ctx.Param("id"), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Vote recorded")
}
