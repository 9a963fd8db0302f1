package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"decidr/config"
	"decidr/internal/httpserver"
	"decidr/internal/middleware"
	"decidr/internal/task/repository"
	kvRepo "decidr/internal/task/repository/kv"
	"decidr/internal/task/store"
	"decidr/internal/task/usecase"
	"decidr/pkg/datemath"
	"decidr/pkg/kvstore"
	"decidr/pkg/log"
)

// @title       Decidr API
// @description Task prioritisation and what-to-do-next suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting decidr...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 3. Storage
	kv, err := kvstore.New(kvstore.Config{
		Driver:  cfg.Storage.Driver,
		FileDir: cfg.Storage.File.Dir,
		Redis: kvstore.RedisConfig{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		},
		SQLitePath: cfg.Storage.SQLite.Path,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open storage: ", err)
		return
	}
	defer func() {
		if cerr := kv.Close(); cerr != nil {
			logger.Warnf(ctx, "Failed to close storage: %v", cerr)
		}
	}()

	if err := kv.Ping(ctx); err != nil {
		logger.Warnf(ctx, "Storage not reachable yet: %v", err)
	}

	// 4. DateMath parser
	dateMathParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 5. Task domain
	taskRepo := kvRepo.New(kv, repository.Options{Key: cfg.Storage.Key}, dateMathParser, logger)
	taskUC := usecase.New(logger, taskRepo, store.New(), dateMathParser, nil, nil)
	if err := taskUC.Init(ctx); err != nil {
		logger.Error(ctx, "Failed to load tasks: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.Config{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitPerMin:  cfg.RateLimit.PerMin,
			RateLimitBurst:   cfg.RateLimit.Burst,
		},
		TaskUseCase: taskUC,
		Dates:       dateMathParser,
		Store:       kv,
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
