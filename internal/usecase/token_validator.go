package usecase

import (
	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (staff.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (staff.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return staff.Principal{}, err
	}
	if claims.TenantID == uuid.Nil {
		return staff.Principal{}, jwt.ErrInvalidToken
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return staff.Principal{}, err
	}

	return staff.NewPrincipal(claims.TenantID, claims.StaffID, role), nil
}
