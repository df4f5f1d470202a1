package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campustrack/campustrack-backend/internal/response"
	"github.com/campustrack/campustrack-backend/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"
)

// RequireAuth validates the JWT from the Authorization header and checks
// that its session is still active, so sign-out takes effect immediately.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractAndValidateClaims(c, authService)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		if err := authService.ValidateSession(c.Request.Context(), claims.ProfileID, claims.ID); err != nil {
			if errors.Is(err, service.ErrSessionInvalidated) {
				response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionInvalidated)
				return
			}
			response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractAndValidateClaims(c *gin.Context, authService *service.AuthService) (*service.Claims, error) {
	tokenStr := ""

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			tokenStr = parts[1]
		}
	}

	if tokenStr == "" {
		return nil, fmt.Errorf("authorization header required")
	}

	return authService.ValidateToken(tokenStr)
}
