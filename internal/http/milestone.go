package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/http/validators"
	model "taskboard.com/taskboard/internal/models"
)

func (h *Handler) CreateMilestone(c echo.Context) error {
	var req model.Milestone
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateMilestone(&req); err != nil {
		return err
	}

	if err := h.milestones.Create(c.Request().Context(), &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) GetMilestones(c echo.Context) error {
	ref := model.BoardRef{
		ID:   c.Param("id"),
		Kind: model.BoardKind(c.Param("board_type")),
	}

	stats, err := h.milestones.Stats(c.Request().Context(), ref)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
