package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	model "taskboard.com/taskboard/internal/models"
)

func ValidateMilestone(m *model.Milestone) error {
	if m.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if m.BoardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board_id is required")
	}
	if m.BoardType != model.BoardPrivate && m.BoardType != model.BoardTeam {
		return echo.NewHTTPError(http.StatusBadRequest, "board_type must be private or team")
	}
	return nil
}
