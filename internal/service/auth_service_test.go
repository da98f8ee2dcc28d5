package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/auth"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/dto"
)

func newTestAuth(t *testing.T) (AuthService, UserService, *auth.TokenIssuer) {
	t.Helper()
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	tokens := auth.NewTokenIssuer("test-secret", 48*time.Hour)
	users := NewUserService(newStubUserRepo(), hasher, nil, time.Minute)
	return NewAuthService(users, hasher, tokens), users, tokens
}

func TestAuthenticateUser_Success(t *testing.T) {
	authSvc, users, tokens := newTestAuth(t)
	created, err := users.Create(context.Background(), anaRequest())
	require.NoError(t, err)

	res, err := authSvc.AuthenticateUser(context.Background(), dto.LoginRequest{Email: "ana@x.com", Password: "abc12345"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ana@x.com", res.User.Email)

	claims, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
}

func TestAuthenticateUser_UniformFailure(t *testing.T) {
	authSvc, users, _ := newTestAuth(t)
	ctx := context.Background()
	created, err := users.Create(ctx, anaRequest())
	require.NoError(t, err)

	_, unknownErr := authSvc.AuthenticateUser(ctx, dto.LoginRequest{Email: "nobody@x.com", Password: "abc12345"})
	_, wrongErr := authSvc.AuthenticateUser(ctx, dto.LoginRequest{Email: "ana@x.com", Password: "nope1234"})

	require.NoError(t, users.Deactivate(ctx, created.ID))
	_, inactiveErr := authSvc.AuthenticateUser(ctx, dto.LoginRequest{Email: "ana@x.com", Password: "abc12345"})

	for _, err := range []error{unknownErr, wrongErr, inactiveErr} {
		requireStatus(t, err, http.StatusUnauthorized)
		assert.Equal(t, msgBadCredentials, err.Error())
	}
}

func TestAuthenticateUser_PasswordRoundTrip(t *testing.T) {
	authSvc, users, _ := newTestAuth(t)
	ctx := context.Background()
	created, err := users.Create(ctx, anaRequest())
	require.NoError(t, err)

	require.NoError(t, users.UpdatePassword(ctx, created.ID, dto.UpdatePasswordRequest{
		CurrentPassword: "abc12345", NewPassword: "novaSenha9",
	}))

	_, err = authSvc.AuthenticateUser(ctx, dto.LoginRequest{Email: "ana@x.com", Password: "novaSenha9"})
	assert.NoError(t, err)

	_, err = authSvc.AuthenticateUser(ctx, dto.LoginRequest{Email: "ana@x.com", Password: "abc12345"})
	requireStatus(t, err, http.StatusUnauthorized)
}
