package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	model "taskboard.com/taskboard/internal/models"
)

func ValidateList(l *model.List) error {
	if l.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if l.Board == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "board is required")
	}
	if l.BoardType != model.BoardPrivate && l.BoardType != model.BoardTeam {
		return echo.NewHTTPError(http.StatusBadRequest, "board_type must be private or team")
	}
	return nil
}
