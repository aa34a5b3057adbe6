package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/http/validators"
	model "taskboard.com/taskboard/internal/models"
)

func (h *Handler) CreateList(c echo.Context) error {
	var req model.List
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateList(&req); err != nil {
		return err
	}

	if err := h.lists.Create(c.Request().Context(), &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) GetLists(c echo.Context) error {
	ref := model.BoardRef{
		ID:   c.Param("id"),
		Kind: model.BoardKind(c.Param("board_type")),
	}

	lists, err := h.lists.Get(c.Request().Context(), ref)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, lists)
}

func (h *Handler) DeleteList(c echo.Context) error {
	if err := h.lists.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}
