// seeduser creates or refreshes the administrator from SEED_ADMIN_* settings.
// Usage: go run ./cmd/seeduser
package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/auth"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/config"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/infra"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/logger"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/repository"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	closer, err := logger.Setup(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure logger")
	}
	defer closer.Close()

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := infra.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate schema")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin := seed.AdminFromConfig(cfg)
	created, err := seed.EnsureAdmin(ctx, repository.NewUserRepository(db), auth.NewPasswordHasher(cfg.BcryptCost), admin)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Str("email", admin.Email).Bool("created", created).Msg("administrator ready")
}
