package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskboard.com/taskboard/internal/errors"
	"taskboard.com/taskboard/internal/services"
)

type Handler struct {
	auth       *services.AuthService
	teams      *services.TeamService
	boards     *services.BoardService
	lists      *services.ListService
	tasks      *services.TaskService
	milestones *services.MilestoneService
	timers     *services.TimerService
}

func NewHandler(
	auth *services.AuthService,
	teams *services.TeamService,
	boards *services.BoardService,
	lists *services.ListService,
	tasks *services.TaskService,
	milestones *services.MilestoneService,
	timers *services.TimerService,
) *Handler {
	return &Handler{
		auth:       auth,
		teams:      teams,
		boards:     boards,
		lists:      lists,
		tasks:      tasks,
		milestones: milestones,
		timers:     timers,
	}
}

// fail logs the cause server-side and returns the uniform response. Clients
// get "not found" whether the row was missing, access was denied or the
// store broke; only the server-error class says anything different.
func fail(c echo.Context, err error) error {
	log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		return echo.NewHTTPError(status, "internal server error")
	}
	return echo.NewHTTPError(status, "not found")
}
