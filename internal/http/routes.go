package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "taskboard.com/taskboard/internal/http/middlewares"
	"taskboard.com/taskboard/internal/ratelimit"
)

// Register wires the full route table. Everything except register/login sits
// behind the auth middleware; verify turns a presented token back into a
// username.
func Register(e *echo.Echo, h *Handler, verify func(token string) (string, error), limiter ratelimit.Limiter) {
	e.Use(echomw.CORS())
	e.Use(middleware.RateLimiter(limiter))

	e.POST("/register", h.Register)
	e.POST("/login", h.Login)

	g := e.Group("", middleware.Auth(verify))

	g.POST("/private_board/create", h.CreatePrivateBoard)
	g.GET("/private_board/get", h.GetPrivateBoards)
	g.GET("/private/delete/:id", h.DeletePrivateBoard)
	g.POST("/private/update/:id", h.UpdatePrivateBoard)

	g.POST("/team_board/create", h.CreateTeamBoard)
	g.GET("/team_board/get", h.GetTeamBoards)
	g.GET("/team_board/delete/:id", h.DeleteTeamBoard)
	g.POST("/team/update/:id", h.UpdateTeamBoard)

	g.POST("/team/create", h.CreateTeam)
	g.GET("/owned", h.OwnedTeams)

	g.POST("/new_list", h.CreateList)
	g.GET("/list/:board_type/:id", h.GetLists)
	g.GET("/list_delete/:id", h.DeleteList)

	g.POST("/task/create", h.CreateTask)
	g.POST("/task/update", h.UpdateTask)
	g.GET("/task/get/:id", h.GetTasks)
	g.POST("/task/get/:id", h.FilterTasks)
	g.GET("/task/:id", h.GetTask)
	g.GET("/task/delete/:id", h.DeleteTask)

	g.GET("/logs/get/:id", h.GetLogs)

	g.POST("/milestone/create", h.CreateMilestone)
	g.GET("/milestone/get/:id/:board_type", h.GetMilestones)

	g.POST("/timer/create", h.CreateTimer)
	g.GET("/timer/update/:id", h.ToggleTimer)
	g.GET("/timers/get", h.GetTimers)
	g.GET("/timer/delete/:id", h.DeleteTimer)
}
