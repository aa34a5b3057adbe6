package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/dto"
	"taskboard.com/taskboard/internal/http/validators"
)

func (h *Handler) Register(c echo.Context) error {
	var req dto.Credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCredentials(&req); err != nil {
		return err
	}

	if err := h.auth.Register(c.Request().Context(), req.Username, req.Password); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.Credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCredentials(&req); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto.TokenResponse{Success: true, Token: token})
}
