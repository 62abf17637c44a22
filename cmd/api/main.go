package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-todo/config"
	_ "smart-todo/docs" // Swagger docs
	"smart-todo/internal/engine"
	"smart-todo/internal/httpserver"
	"smart-todo/internal/reminder/dispatcher"
	reminderMemory "smart-todo/internal/reminder/repository/memory"
	taskMemory "smart-todo/internal/task/repository/memory"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
	"smart-todo/pkg/mailer"
)

// @title       Smart To-Do API
// @description Task management with rule-based natural language parsing, schedule and deadline suggestions, reminders, and productivity insights.
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

	logger.Info(ctx, "Starting Smart To-Do API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Task intelligence engine
	resolver, err := datemath.NewResolver(cfg.Engine.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Engine.Timezone, err)
		resolver, _ = datemath.NewResolver("UTC")
	}
	eng := engine.New(resolver)

	// 4. Stores
	taskRepo := taskMemory.New(logger, nil)
	reminderRepo := reminderMemory.New(logger, nil)

	// 5. Mailer and reminder dispatcher (optional, require SMTP)
	var smtpMailer mailer.Mailer
	if cfg.SMTP.Enabled {
		interval, err := time.ParseDuration(cfg.Reminder.PollInterval)
		if err != nil {
			logger.Warnf(ctx, "Invalid reminder poll interval %q, using 1m: %v", cfg.Reminder.PollInterval, err)
			interval = time.Minute
		}

		smtpMailer = mailer.New(mailer.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})

		d := dispatcher.New(dispatcher.Config{
			Logger:    logger,
			Reminders: reminderRepo,
			Tasks:     taskRepo,
			Mailer:    smtpMailer,
			To:        cfg.SMTP.To,
			Interval:  interval,
		})
		go d.Run(ctx)
		logger.Info(ctx, "Reminder dispatcher started")
	} else {
		logger.Warn(ctx, "SMTP disabled, reminders will be stored but not delivered")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Config:       cfg,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Engine:       eng,
		TaskRepo:     taskRepo,
		ReminderRepo: reminderRepo,
		Mailer:       smtpMailer,
		NotifyTo:     cfg.SMTP.To,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
