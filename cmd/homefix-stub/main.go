// homefix-stub runs the in-memory development backend on the
// configured port.
package main

import (
	"github.com/joho/godotenv"

	"github.com/homefix/marketplace-client/internal/infrastructure/config"
	"github.com/homefix/marketplace-client/internal/stubserver"
	"github.com/homefix/marketplace-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	e := stubserver.New(cfg.Stub.JWTSecret, log)

	log.Info().Str("port", cfg.Stub.Port).Msg("stub backend listening")
	if err := e.Start(":" + cfg.Stub.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
