package main

import (
	"context"

	"go.uber.org/zap"

	"gallery/internal/auth"
	"gallery/internal/config"
	"gallery/internal/db"
	"gallery/internal/model"
	"gallery/internal/repository"
	"gallery/internal/service"
)

// The seed tool loads the default collection into an empty catalog and, when
// ADMIN_EMAIL and ADMIN_PASSWORD are set, creates the bootstrap admin account.
// Signup only ever creates regular users, so this is the way in for the first admin.
func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Info("connected to database", zap.String("driver", cfg.DBDriver))

	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()

	catalog := service.NewCatalogService(repository.NewPaintingRepository(gormDB), nil)
	seeded, err := catalog.SeedIfEmpty(ctx, model.DefaultPaintings())
	if err != nil {
		logger.Fatal("failed to seed paintings", zap.Error(err))
	}
	if seeded == 0 {
		logger.Info("catalog already populated, skipping paintings")
	} else {
		logger.Info("paintings seeded", zap.Int("count", seeded))
	}

	if cfg.AdminEmail == "" || cfg.AdminPass == "" {
		logger.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	accounts := service.NewAuthService(repository.NewUserRepository(gormDB), auth.NewJWTService(cfg.JWTSecret), nil)
	created, err := accounts.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPass)
	if err != nil {
		logger.Fatal("failed to create admin account", zap.Error(err))
	}
	if created {
		logger.Info("admin account created", zap.String("email", cfg.AdminEmail))
	} else {
		logger.Info("account already exists, role left unchanged", zap.String("email", cfg.AdminEmail))
	}
}
