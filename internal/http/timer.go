package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/dto"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/http/validators"
)

func (h *Handler) CreateTimer(c echo.Context) error {
	var req dto.TimerData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTimer(&req); err != nil {
		return err
	}

	err := h.timers.Create(c.Request().Context(), middleware.Username(c), req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) ToggleTimer(c echo.Context) error {
	if err := h.timers.Toggle(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) GetTimers(c echo.Context) error {
	timers, err := h.timers.List(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, timers)
}

func (h *Handler) DeleteTimer(c echo.Context) error {
	if err := h.timers.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}
