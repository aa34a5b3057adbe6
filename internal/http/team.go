package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/dto"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/http/validators"
)

func (h *Handler) CreateTeam(c echo.Context) error {
	var req dto.TeamData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTeam(&req); err != nil {
		return err
	}

	err := h.teams.Create(c.Request().Context(), req.Name, req.Members, middleware.Username(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) OwnedTeams(c echo.Context) error {
	teams, err := h.teams.Owned(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, teams)
}
