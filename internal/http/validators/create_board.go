package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/dto"
)

func ValidatePrivateBoard(b *dto.PrivateBoardData) error {
	if b.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return nil
}

func ValidateTeamBoard(b *dto.TeamBoardData) error {
	if b.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if b.Owner == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "owner is required")
	}
	return nil
}

func ValidateBoardUpdate(b *dto.BoardUpdate) error {
	if b.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return nil
}
