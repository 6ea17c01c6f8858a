package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-manager/config"
	_ "todo-manager/docs" // Swagger docs
	"todo-manager/internal/httpserver"
	kvRepo "todo-manager/internal/task/repository/kv"
	"todo-manager/internal/task/usecase"
	"todo-manager/pkg/duedate"
	"todo-manager/pkg/gcalendar"
	"todo-manager/pkg/kvstore"
	"todo-manager/pkg/log"
)

// @title       Todo Manager API
// @description To-do list manager: add, edit, complete, filter and delete tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Manager...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Storage
	store, err := kvstore.Open(ctx, kvstore.Config{
		Driver: cfg.Storage.Driver,
		Path:   cfg.Storage.Path,
		DSN:    cfg.Storage.DSN,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer store.Close()

	taskRepo := kvRepo.New(store, cfg.Storage.Key, logger)

	// 4. Due date parser
	dueParser, err := duedate.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dueParser, _ = duedate.NewParser("UTC")
	}

	// 5. Google Calendar (optional)
	var cal usecase.Calendar
	if cfg.GoogleCalendar.Enabled() {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			cal = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, cal, usecase.CalendarOptions{
		CalendarID:    cfg.GoogleCalendar.CalendarID,
		Timezone:      dueParser.Location().String(),
		EventDuration: cfg.GoogleCalendar.EventDuration,
	})
	taskUC.Load(ctx)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		RequestsPerMin:  cfg.RateLimit.RequestsPerMin,
		TaskUseCase:     taskUC,
		DueParser:       dueParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
