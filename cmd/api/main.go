package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/bot"
	"github.com/BruksfildServices01/salon-scheduler/internal/botlog"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg.Env)
	defer log.Sync()

	if err := timezone.Configure(cfg.Timezone); err != nil {
		log.Warn("invalid TIMEZONE, keeping default",
			zap.String("timezone", cfg.Timezone),
			zap.String("default", timezone.DefaultTimezone),
			zap.Error(err))
	}

	db := dbpkg.NewDB(cfg)

	events := botlog.NewDispatcher(botlog.New(db), log)
	masters := cache.NewMasters(cfg, log)
	storage := media.NewStorage(cfg)
	manager := bot.NewManager(cfg, db, events, log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	routes.RegisterRoutes(r, db, cfg, masters, storage, manager, log)

	// The bot is optional: a missing token or a Telegram outage must not
	// keep the HTTP API down.
	if err := manager.Start(context.Background()); err != nil {
		log.Warn("bot not started", zap.Error(err))
	}

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
