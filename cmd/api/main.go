package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"smartodo/config"
	"smartodo/internal/httpserver"
	"smartodo/internal/middleware"
	"smartodo/internal/reminder"
	"smartodo/internal/task/repository/jsonfile"
	"smartodo/internal/task/usecase"
	"smartodo/pkg/log"
)

// @title       Smartodo API
// @description Turns free-form Chinese/English sentences into structured tasks
// @description with due dates, time ranges, categories and extracted links.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional, real env vars win
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting smartodo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task store: %s", cfg.Storage.FilePath)

	// 3. Storage
	repo, err := jsonfile.New(cfg.Storage.FilePath, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open task store: %v", err)
	}

	// 4. Task domain
	taskUC := usecase.New(logger, repo, cfg.API.ParseCacheSize)

	// 5. Reminder scanner
	var wg sync.WaitGroup
	if cfg.Reminder.Enabled {
		notifiers := []reminder.Notifier{reminder.NewLogNotifier(logger)}
		if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
			tg, tgErr := reminder.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
			if tgErr != nil {
				logger.Warnf(ctx, "Telegram notifier not available (optional): %v", tgErr)
			} else {
				notifiers = append(notifiers, tg)
				logger.Info(ctx, "Telegram notifier initialized")
			}
		}

		scanner := reminder.NewScanner(logger, repo, cfg.Reminder.Interval, notifiers...)
		wg.Add(1)
		go func() {
			defer wg.Done()
			scanner.Run(ctx)
		}()
	} else {
		logger.Info(ctx, "Reminder scanner disabled")
	}

	// 6. HTTP server
	mw := middleware.New(logger, cfg.API)
	srv, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TaskUC:      taskUC,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		logger.Errorf(ctx, "HTTP server: %v", err)
	}

	stop()
	wg.Wait()
	logger.Info(context.Background(), "Shutdown complete")
}
