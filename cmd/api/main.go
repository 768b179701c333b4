package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/api"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/infrastructure/config"
	mongodb "github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/infrastructure/db/redis"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/pkg/logger"
)

// @title           Techutsav25 Admin API
// @version         1.0
// @description     Administrative backend for Techutsav25 event registration: department-scoped registrant listing, payment verification, and CSV export.
// @BasePath        /
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewRegistrantRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	// Redis only backs the login throttle; the service runs without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
		rdb = nil
	}

	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
