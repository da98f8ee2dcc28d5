package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/apierror"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/auth"
)

const ClaimsKey = "claims"

// JWTAuth validates the Bearer token on every protected route. A missing
// token is 401; one that is present but malformed, expired or badly signed
// is 403.
func JWTAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			_ = c.Error(apierror.Unauthorized("Token de acesso não fornecido"))
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			_ = c.Error(apierror.Forbidden("Token inválido ou expirado"))
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the verified claims, or nil outside JWTAuth-protected routes.
func GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
