package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/DhavalSuthar-24/clubhub/config"
	_ "github.com/DhavalSuthar-24/clubhub/docs"
	"github.com/DhavalSuthar-24/clubhub/internal/models"
	"github.com/DhavalSuthar-24/clubhub/internal/seed"
	"github.com/DhavalSuthar-24/clubhub/pkg/clock"
	"github.com/DhavalSuthar-24/clubhub/pkg/logging"
	"github.com/DhavalSuthar-24/clubhub/pkg/metrics"
	"github.com/DhavalSuthar-24/clubhub/pkg/storage"
	"github.com/DhavalSuthar-24/clubhub/pkg/validator"
	"github.com/DhavalSuthar-24/clubhub/routes"
)

// @title ClubHub REST API
// @version 1.0
// @description Administration backend for sports leagues: clubs, athletes, transfers, events, matches and statistics.
// @host localhost:8088
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := config.Initialize(); err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	cfg := config.GetConfig()

	logger := logging.New(cfg.App.Env)
	slog.SetDefault(logger)
	ctx := logging.ContextWithLogger(context.Background(), logger)

	if err := models.Migrate(config.DB); err != nil {
		logger.Error("auto-migrate failed", "error", err)
		os.Exit(1)
	}
	logger.Info("auto-migrate successful")

	if err := seed.Run(ctx, config.DB, seed.Admin{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	if err := validator.Register(); err != nil {
		logger.Error("validator registration failed", "error", err)
		os.Exit(1)
	}
	metrics.Init()

	store, err := storage.NewLocalStore(cfg.App.UploadDir, cfg.App.PublicBaseURL)
	if err != nil {
		logger.Error("object storage unavailable", "error", err)
		os.Exit(1)
	}

	r := routes.SetupRoutes(routes.Deps{
		DB:     config.DB,
		Config: cfg,
		Store:  store,
		Clock:  clock.System(),
		Logger: logger,
	})

	logger.Info("starting server", "port", cfg.App.Port, "env", cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		logger.Error("failed to run server", "error", err)
		os.Exit(1)
	}
}
