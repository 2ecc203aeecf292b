package staff

import "github.com/google/uuid"

// Principal is the authenticated caller: a staff member acting for one lounge.
type Principal struct {
	TenantID uuid.UUID
	StaffID  uuid.UUID
	Role     Role
}

func NewPrincipal(tenantID, staffID uuid.UUID, role Role) Principal {
	return Principal{TenantID: tenantID, StaffID: staffID, Role: role}
}

func (p Principal) CanManagePricing() bool {
	return p.Role.AtLeast(RoleAdmin)
}
