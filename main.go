package main

import (
	"fmt"
	"os"

	"food-cart-api/config"
	"food-cart-api/middleware"
	"food-cart-api/routes"
	"food-cart-api/session"
	"food-cart-api/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := config.NewLogger(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	db, err := config.InitDB(cfg.DB, log)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	if err := config.SeedMenu(db); err != nil {
		log.Fatal("seed menu", zap.Error(err))
	}

	var backend storage.Backend
	switch cfg.Storage {
	case "memory":
		backend = storage.NewMemory()
	case "db":
		backend = storage.NewGorm(db)
	default:
		log.Fatal("unsupported STORAGE", zap.String("storage", cfg.Storage))
	}

	r := routes.NewRouter(routes.Deps{
		DB:          db,
		Storage:     backend,
		Tokens:      middleware.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL),
		Auth:        session.AnyNonEmpty{},
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})

	log.Info("server running", zap.String("addr", "http://localhost:"+cfg.Port), zap.String("storage", cfg.Storage))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
