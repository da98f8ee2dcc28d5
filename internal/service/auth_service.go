package service

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/apierror"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/auth"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/dto"
)

const msgBadCredentials = "Credenciais inválidas, verifica suas informações!"

type AuthService interface {
	AuthenticateUser(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)
}

type authService struct {
	users  UserService
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
}

func NewAuthService(users UserService, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer) AuthService {
	return &authService{users: users, hasher: hasher, tokens: tokens}
}

// AuthenticateUser answers every credential failure (unknown email, inactive
// account, wrong password) with the same error so callers cannot probe
// which emails are registered.
func (s *authService) AuthenticateUser(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if apierror.StatusOf(err) == http.StatusNotFound {
			log.Debug().Str("reason", "unknown_email").Msg("login rejected")
			return nil, apierror.BadCredentials(msgBadCredentials)
		}
		return nil, err
	}

	if !user.IsActive {
		log.Debug().Str("user_id", user.ID).Str("reason", "inactive").Msg("login rejected")
		return nil, apierror.BadCredentials(msgBadCredentials)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("stored password hash is unreadable")
		return nil, apierror.BadCredentials(msgBadCredentials)
	}
	if !ok {
		log.Debug().Str("user_id", user.ID).Str("reason", "bad_password").Msg("login rejected")
		return nil, apierror.BadCredentials(msgBadCredentials)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResult{Token: token, User: toUserResponse(user)}, nil
}
