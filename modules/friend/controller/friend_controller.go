package controller

import (
	"friendsync-api/core/controller"
	"friendsync-api/core/errors"
	"friendsync-api/modules/friend/dto"
	"friendsync-api/modules/friend/service"

	"github.com/labstack/echo/v4"
)

// FriendController handles friend HTTP requests
type FriendController struct {
	controller.BaseController
	FriendService service.FriendServiceInterface
}

// NewFriendController creates a new controller
func NewFriendController(svc service.FriendServiceInterface) *FriendController {
	return &FriendController{
		BaseController: controller.NewBaseController(),
		FriendService:  svc,
	}
}

// CreateFriend handles POST /friends
// @Summary Add a friend
// @Description Add a friend to the group with a display color
// @Tags Friend
// @Accept json
// @Produce json
// @Param request body dto.CreateFriendRequest true "Friend details"
// @Success 200 {object} dto.FriendResponse
// @Failure 400 {object} errors.AppError
// @Router /friends [post]
func (c *FriendController) CreateFriend(ctx echo.Context) error {
	var req dto.CreateFriendRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.FriendService.Create(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Friend added successfully")
}

// ListFriends handles GET /friends
// @Summary List friends
// @Description List all friends for the sidebar
// @Tags Friend
// @Produce json
// @Success 200 {array} dto.FriendResponse
// @Router /friends [get]
func (c *FriendController) ListFriends(ctx echo.Context) error {
	result, appErr := c.FriendService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetFriend handles GET /friends/:id
// @Summary Get a friend
// @Tags Friend
// @Produce json
// @Param id path string true "Friend ID"
// @Success 200 {object} dto.FriendResponse
// @Failure 404 {object} errors.AppError
// @Router /friends/{id} [get]
func (c *FriendController) GetFriend(ctx echo.Context) error {
	result, appErr := c.FriendService.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ToggleVisibility handles PATCH /friends/:id/visibility
// @Summary Toggle friend visibility
// @Description Toggle whether a friend's events appear in calendar views
// @Tags Friend
// @Produce json
// @Param id path string true "Friend ID"
// @Success 200 {object} dto.FriendResponse
// @Failure 404 {object} errors.AppError
// @Router /friends/{id}/visibility [patch]
func (c *FriendController) ToggleVisibility(ctx echo.Context) error {
	result, appErr := c.FriendService.ToggleVisibility(ctx.Request().Context(), ctx.Param("id"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Friend visibility updated")
}
