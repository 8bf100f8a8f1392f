package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/manivarun57/support-portal/config"
	"github.com/manivarun57/support-portal/db"
	"github.com/manivarun57/support-portal/handlers"
	"github.com/manivarun57/support-portal/logger"
	"github.com/manivarun57/support-portal/repositories"
	"github.com/manivarun57/support-portal/routes"
	"github.com/manivarun57/support-portal/services"
	"github.com/manivarun57/support-portal/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	database, err := db.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.New(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to initialize blob storage", "error", err)
		os.Exit(1)
	}

	repos := repositories.New(database)
	svc := services.New(repos, blobs)
	h := handlers.New(svc, cfg.Debug)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	routes.Register(r, h, cfg)

	slog.Info("starting server", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
