package controller

import (
	"strconv"
	"time"

	"friendsync-api/core/config"
	"friendsync-api/core/constants"
	"friendsync-api/core/controller"
	"friendsync-api/core/errors"
	"friendsync-api/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

// CalendarController handles calendar HTTP requests
type CalendarController struct {
	controller.BaseController
	CalendarService service.CalendarServiceInterface
}

// NewCalendarController creates a new controller
func NewCalendarController(svc service.CalendarServiceInterface) *CalendarController {
	return &CalendarController{
		BaseController:  controller.NewBaseController(),
		CalendarService: svc,
	}
}

// GetGrid handles GET /calendar/grid?year=&month=&today=
// @Summary Get the month grid
// @Description Build the 42-cell month view with per-day event indicators
// @Tags Calendar
// @Produce json
// @Param year query int false "Reference year (defaults to today's year)"
// @Param month query int false "Reference month 1-12 (defaults to today's month)"
// @Param today query string false "Override for the current day (YYYY-MM-DD)"
// @Success 200 {object} dto.GridResponse
// @Failure 400 {object} errors.AppError
// @Router /calendar/grid [get]
func (c *CalendarController) GetGrid(ctx echo.Context) error {
	today := ctx.QueryParam("today")
	if today == "" {
		today = defaultToday()
	}

	now, err := time.Parse(constants.DateLayout, today)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "today must be a valid YYYY-MM-DD date")
	}

	year := now.Year()
	if raw := ctx.QueryParam("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "year must be an integer")
		}
	}

	month := now.Month()
	if raw := ctx.QueryParam("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "month must be an integer")
		}
		month = time.Month(m)
	}

	result, appErr := c.CalendarService.BuildGrid(ctx.Request().Context(), year, month, today)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// defaultToday prefers the configured reference date so demo data lines up
// with the month being viewed, falling back to the server clock.
func defaultToday() string {
	if cfg, ok := config.GetSafe(); ok && cfg.App.ReferenceDate != "" {
		return cfg.App.ReferenceDate
	}
	return time.Now().UTC().Format(constants.DateLayout)
}
