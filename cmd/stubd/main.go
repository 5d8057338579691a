// Command stubd runs the local stub session API used for development and
// end-to-end testing of the client.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zenstudio/sessions-client/internal/infrastructure/config"
	"github.com/zenstudio/sessions-client/internal/stub"
	"github.com/zenstudio/sessions-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	store := stub.NewStore()
	if err := store.Seed(); err != nil {
		log.Fatal().Err(err).Msg("seeding fixture data failed")
	}
	tokens := stub.NewTokenManager(cfg.Stub.JWTSecret, cfg.Stub.TokenTTL)
	e := stub.NewRouter(store, tokens, log)

	go func() {
		if err := e.Start(":" + cfg.Stub.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Stub.Port).Msg("stub session api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
