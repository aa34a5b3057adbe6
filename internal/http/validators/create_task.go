package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	model "taskboard.com/taskboard/internal/models"
)

func ValidateTask(t *model.Task) error {
	if t.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if t.List == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "list is required")
	}
	if t.Done != 0 && t.Done != 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "done must be 0 or 1")
	}
	return nil
}
