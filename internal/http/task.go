package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskboard.com/taskboard/internal/http/validators"
	model "taskboard.com/taskboard/internal/models"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req model.Task
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTask(&req); err != nil {
		return err
	}

	if err := h.tasks.Create(c.Request().Context(), &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req model.Task
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.ID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is required")
	}
	if err := validators.ValidateTask(&req); err != nil {
		return err
	}

	if err := h.tasks.Update(c.Request().Context(), &req); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) GetTasks(c echo.Context) error {
	tasks, err := h.tasks.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

// FilterTasks narrows the list's tasks by the posted criteria. The criteria
// themselves are never invalid; unset fields just do not constrain.
func (h *Handler) FilterTasks(c echo.Context) error {
	var filter model.TaskFilter
	if err := c.Bind(&filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	tasks, err := h.tasks.Filter(c.Request().Context(), c.Param("id"), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.tasks.Single(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.tasks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, true)
}

func (h *Handler) GetLogs(c echo.Context) error {
	logs, err := h.tasks.Logs(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}
