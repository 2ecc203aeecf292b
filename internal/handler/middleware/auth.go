package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/handler/httperr"
	"lounge-billing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPrincipalKey = "principal"
	ctxClaimsKey    = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Abort(c, http.StatusUnauthorized, "Access token required")
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(required staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			// should be used after RequireAuth()
			httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		if !principal.Role.AtLeast(required) {
			httperr.Abort(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > len("Bearer ") && strings.EqualFold(authHeader[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetPrincipal stores the caller; tests use it to stand in for RequireAuth.
func SetPrincipal(c *gin.Context, p staff.Principal) {
	c.Set(ctxPrincipalKey, p)
	c.Set(ctxClaimsKey, map[string]any{
		"tenant_id": p.TenantID.String(),
		"staff_id":  p.StaffID.String(),
		"role":      p.Role.String(),
	})
}

func GetPrincipal(c *gin.Context) (staff.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return staff.Principal{}, false
	}
	p, ok := v.(staff.Principal)
	return p, ok
}
