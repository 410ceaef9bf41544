package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"smartstudy/config"
	_ "smartstudy/docs" // Swagger docs
	"smartstudy/internal/httpserver"
	"smartstudy/pkg/jwt"
	"smartstudy/pkg/log"
	"smartstudy/pkg/postgres"
	"smartstudy/pkg/upload"
)

// @title       SmartStudy API
// @description Study task tracker with auto-prioritization, streaks, and activity analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
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

	logger.Info(ctx, "Starting SmartStudy...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgres.Open(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error(ctx, "Failed to ensure schema: ", err)
		return
	}

	// 4. Shared infrastructure
	jwtManager := jwt.New(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute)

	uploads, err := upload.New(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		logger.Error(ctx, "Failed to initialize upload storage: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		PostgresDB:     db,
		JWTManager:     jwtManager,
		Uploads:        uploads,
		AuthRateLimit:  cfg.RateLimit.AuthPerMinute,
		StatsCacheSize: cfg.StatsCache.Size,
		StatsCacheTTL:  cfg.StatsCache.TTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
