// Package seed provisions the bootstrap administrator account.
package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/auth"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/config"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/model"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/repository"
)

// Admin describes the account EnsureAdmin creates or refreshes.
type Admin struct {
	Email    string
	Password string
	FullName string
	Code     string
	NUIT     string
	MSISDN   string
	Address  string
}

// AdminFromConfig reads the SEED_ADMIN_* settings.
func AdminFromConfig(cfg *config.Config) Admin {
	return Admin{
		Email:    cfg.SeedAdminEmail,
		Password: cfg.SeedAdminPassword,
		FullName: cfg.SeedAdminName,
		Code:     cfg.SeedAdminCode,
		NUIT:     cfg.SeedAdminNUIT,
		MSISDN:   cfg.SeedAdminMSISDN,
		Address:  cfg.SeedAdminAddress,
	}
}

// EnsureAdmin creates the administrator, or when the email already exists
// resets its password, promotes it to Administrador and reactivates it.
// It reports whether a new row was inserted.
func EnsureAdmin(ctx context.Context, repo repository.UserRepository, hasher *auth.PasswordHasher, a Admin) (bool, error) {
	if a.Email == "" || a.Password == "" {
		return false, errors.New("seed: admin email and password are required")
	}
	email := strings.ToLower(strings.TrimSpace(a.Email))

	hash, err := hasher.Hash(a.Password)
	if err != nil {
		return false, err
	}

	existing, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if err := repo.Update(ctx, existing.ID, map[string]interface{}{
			"password":  hash,
			"role":      model.RoleAdministrador,
			"is_active": true,
		}); err != nil {
			return false, err
		}
		log.Info().Str("user_id", existing.ID).Msg("seed: administrator refreshed")
		return false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, err
	}

	u := &model.User{
		FullName:     a.FullName,
		Email:        email,
		PasswordHash: hash,
		Code:         a.Code,
		NUIT:         a.NUIT,
		MSISDN:       a.MSISDN,
		Address:      a.Address,
		Role:         model.RoleAdministrador,
		IsActive:     true,
	}
	if err := repo.Create(ctx, u); err != nil {
		return false, err
	}
	log.Info().Str("user_id", u.ID).Msg("seed: administrator created")
	return true, nil
}
