// Command seed creates or replaces the caretaker account named by
// SEED_CARETAKER_EMAIL and SEED_CARETAKER_PASSWORD.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/mindslate/hostel-complaints/internal/core/service"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/config"
	"github.com/mindslate/hostel-complaints/internal/infrastructure/storage"
	"github.com/mindslate/hostel-complaints/pkg/logger"
)

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
		Service: "hostel-complaints-seed",
	})

	if cfg.Seed.Email == "" || cfg.Seed.Password == "" {
		log.Fatal().Msg("SEED_CARETAKER_EMAIL and SEED_CARETAKER_PASSWORD must be set")
	}
	if cfg.Storage == config.StorageMemory {
		log.Warn().Msg("seeding the in-memory store; the account is lost when this process exits")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.Close(context.Background())

	tokens := service.NewTokenService(cfg.Session.JWTSecret, cfg.Session.TTL)
	auth := service.NewAuthService(backend.Users, tokens, log)

	user, err := auth.SeedCaretaker(ctx, cfg.Seed.Name, cfg.Seed.Email, cfg.Seed.Password)
	if err != nil {
		return err
	}
	log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("caretaker ready")
	return nil
}
