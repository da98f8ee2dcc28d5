package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// LoginResult is what the auth service hands back to the handler.
type LoginResult struct {
	Token string
	User  UserResponse
}

// TokenEnvelope is the login response: the standard envelope plus the token.
type TokenEnvelope struct {
	StatusCode int          `json:"statusCode"`
	Token      string       `json:"token"`
	Message    string       `json:"message"`
	Data       UserResponse `json:"data"`
}
