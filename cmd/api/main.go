// @title          Hostel Complaint API
// @version        1.0
// @description    Students file complaints against their room; caretakers triage and resolve them.
// @BasePath       /api
// @securityDefinitions.apikey CookieAuth
// @in             cookie
// @name           token
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindslate/hostel-complaints/internal/api"
	"github.com/mindslate/hostel-complaints/internal/api/handler"
	"github.com/mindslate/hostel-complaints/internal/core/service"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/config"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/db/redis"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/http/handlers"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/storage"
	"github.com/mindslate/hostel-complaints/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{Pretty: true})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "hostel-complaints-api",
	})

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Storage).Msg("failed to open storage")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := backend.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("storage close")
		}
	}()

	var checks []handlers.Check
	if backend.Check != nil {
		checks = append(checks, *backend.Check)
	}

	deps := api.Dependencies{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Session: handler.SessionCookie{
			Name:   cfg.Session.CookieName,
			Secure: cfg.IsProduction(),
		},
		HSTS:       cfg.IsProduction(),
		TrustProxy: cfg.TrustProxy,
	}

	if cfg.RateLimit.Enabled {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rdb.Close()

		deps.RateLimitStore = redis.NewRateLimitStore(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, log)
		checks = append(checks, handlers.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	deps.HealthChecks = checks

	tokens := service.NewTokenService(cfg.Session.JWTSecret, cfg.Session.TTL)
	deps.Auth = service.NewAuthService(backend.Users, tokens, log)
	deps.Complaints = service.NewComplaintService(backend.Complaints, backend.Users, log)
	deps.Queries = service.NewComplaintQueryService(backend.Complaints, log)

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Str("storage", cfg.Storage).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
