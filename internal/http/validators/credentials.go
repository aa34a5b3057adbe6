package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/dto"
)

func ValidateCredentials(c *dto.Credentials) error {
	if c.Username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	if c.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}
