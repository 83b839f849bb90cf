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

	config "task-planner.com/task-planner/internal/configs"
	httpapi "task-planner.com/task-planner/internal/http"
	repository "task-planner.com/task-planner/internal/repositories"
	"task-planner.com/task-planner/internal/services"
	"task-planner.com/task-planner/internal/settings"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task planner HTTP API over sqlite and redis",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)
		taskRepo := repository.NewTaskRepository(database)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		settingsStore := settings.NewRedisStore(redisClient, cfg.RedisSettingsPrefix)

		defaults, err := settings.LoadDefaults(cfg.SettingsDefaultsPath)
		if err != nil {
			log.Printf("settings defaults: %v, using built-ins", err)
		}

		taskService := services.NewTaskService(taskRepo)
		scheduleService := services.NewScheduleService(taskRepo, settingsStore, defaults)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(taskService, scheduleService)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
