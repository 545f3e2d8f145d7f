package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aiauto/dashboard-api/internal/api"
	"github.com/aiauto/dashboard-api/internal/core/service"
	mongodb "github.com/aiauto/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/aiauto/dashboard-api/internal/infrastructure/db/redis"
	"github.com/aiauto/dashboard-api/internal/pkg/config"
	"github.com/aiauto/dashboard-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        AI-AUTO Dashboard API
// @version      1.0
// @description  Login and user-directory backend for the construction-management dashboard.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	if cfg.IsProduction() && cfg.JWTSecret == config.DefaultJWTSecret {
		log.Warn().Msg("running in production with the fallback JWT secret; set JWT_SECRET")
	}

	demoTable := service.DefaultDemoTable()
	if cfg.DemoAccountsPath != "" {
		loaded, err := service.LoadDemoTable(cfg.DemoAccountsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DemoAccountsPath).Msg("failed to load demo accounts")
		}
		demoTable = loaded
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	e := api.NewRouter(db, rdb, api.RouterConfig{
		DemoTable: demoTable,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
