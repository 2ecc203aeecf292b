//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/pkg/config"
	"lounge-billing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, ttl time.Duration) *jwt.Service {
	t.Helper()
	if ttl == 0 {
		d, err := time.ParseDuration(h.cfg.Duration)
		require.NoError(t, err)
		ttl = d
	}
	return jwt.NewService(h.cfg.Secret, ttl, h.cfg.Issuer)
}

func (h *JWTHelper) GenerateToken(t *testing.T, tenantID uuid.UUID, role staff.Role) string {
	t.Helper()
	token, err := h.service(t, 0).GenerateToken(tenantID, uuid.New(), role.String())
	require.NoError(t, err)
	return token
}

// StaffToken returns a token and the principal it encodes.
func (h *JWTHelper) StaffToken(t *testing.T, tenantID uuid.UUID, role staff.Role) (string, staff.Principal) {
	t.Helper()
	staffID := uuid.New()
	token, err := h.service(t, 0).GenerateToken(tenantID, staffID, role.String())
	require.NoError(t, err)
	return token, staff.NewPrincipal(tenantID, staffID, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, tenantID uuid.UUID, role staff.Role) string {
	t.Helper()
	issued := time.Now().Add(-2 * time.Hour)
	token, err := h.service(t, time.Hour).GenerateTokenAt(tenantID, uuid.New(), role.String(), issued, time.Hour)
	require.NoError(t, err)
	return token
}
