package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "taskboard.com/taskboard/internal/configs"
	httpapi "taskboard.com/taskboard/internal/http"
	"taskboard.com/taskboard/internal/ratelimit"
	repository "taskboard.com/taskboard/internal/repositories"
	"taskboard.com/taskboard/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)

		users := repository.NewUserRepository(database)
		teams := repository.NewTeamRepository(database)
		boards := repository.NewBoardRepository(database)
		lists := repository.NewListRepository(database)
		tasks := repository.NewTaskRepository(database)
		milestones := repository.NewMilestoneRepository(database)
		logs := repository.NewLogRepository(database)
		timers := repository.NewTimerRepository(database)

		tokenTTL := time.Duration(cfg.TokenTTLHours) * time.Hour
		authService := services.NewAuthService(users, cfg.SecretKey, tokenTTL)
		teamService := services.NewTeamService(teams, users)
		boardService := services.NewBoardService(boards, teams, users)
		listService := services.NewListService(lists)
		taskService := services.NewTaskService(tasks, logs)
		milestoneService := services.NewMilestoneService(milestones, lists, tasks)
		timerService := services.NewTimerService(timers, users)

		var limiter ratelimit.Limiter = ratelimit.NewMemoryLimiter(cfg.RateLimit, time.Minute)
		if cfg.RedisAddr != "" {
			redisClient := config.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()
			limiter = ratelimit.NewRedisLimiter(redisClient, cfg.RateLimit, time.Minute)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(
			authService,
			teamService,
			boardService,
			listService,
			taskService,
			milestoneService,
			timerService,
		)
		httpapi.Register(e, handler, authService.VerifyToken, limiter)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
