package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gallery/internal/auth"
	"gallery/internal/cache"
	"gallery/internal/config"
	"gallery/internal/db"
	"gallery/internal/handler"
	"gallery/internal/model"
	"gallery/internal/repository"
	"gallery/internal/router"
	"gallery/internal/service"
)

// @title Gallery API
// @version 1.0
// @description Painting catalog with signup, login and admin-only catalog changes.
// @host localhost:4000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		logger.Warn("redis unavailable, serving without cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	paintingRepo := repository.NewPaintingRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService, cacheClient)
	catalogService := service.NewCatalogService(paintingRepo, cacheClient)

	if cfg.SeedOnStart {
		seeded, err := catalogService.SeedIfEmpty(context.Background(), model.DefaultPaintings())
		if err != nil {
			logger.Error("seed catalog", zap.Error(err))
		} else if seeded > 0 {
			logger.Info("catalog seeded", zap.Int("paintings", seeded))
		}
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, logger)
	paintingHandler := handler.NewPaintingHandler(catalogService, logger)

	router.Register(e, cfg, logger, jwtService, authService, authHandler, paintingHandler)

	addr := ":" + cfg.ServerPort
	go func() {
		logger.Info("gallery server listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
}
