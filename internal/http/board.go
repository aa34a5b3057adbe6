package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/dto"
	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/http/validators"
)

func (h *Handler) CreatePrivateBoard(c echo.Context) error {
	var req dto.PrivateBoardData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidatePrivateBoard(&req); err != nil {
		return err
	}

	err := h.boards.CreatePrivate(c.Request().Context(), middleware.Username(c), req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) GetPrivateBoards(c echo.Context) error {
	boards, err := h.boards.PrivateBoards(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, boards)
}

func (h *Handler) CreateTeamBoard(c echo.Context) error {
	var req dto.TeamBoardData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTeamBoard(&req); err != nil {
		return err
	}

	err := h.boards.CreateTeam(c.Request().Context(), middleware.Username(c), req.Owner, req.Name)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) GetTeamBoards(c echo.Context) error {
	boards, err := h.boards.TeamBoards(c.Request().Context(), middleware.Username(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, boards)
}

func (h *Handler) UpdatePrivateBoard(c echo.Context) error {
	var req dto.BoardUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateBoardUpdate(&req); err != nil {
		return err
	}

	if err := h.boards.UpdatePrivate(c.Request().Context(), c.Param("id"), req.Name); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) UpdateTeamBoard(c echo.Context) error {
	var req dto.BoardUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateBoardUpdate(&req); err != nil {
		return err
	}

	if err := h.boards.UpdateTeam(c.Request().Context(), c.Param("id"), req.Name); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) DeletePrivateBoard(c echo.Context) error {
	if err := h.boards.DeletePrivate(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) DeleteTeamBoard(c echo.Context) error {
	if err := h.boards.DeleteTeam(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}
