//go:build unit

package staff_test

import (
	"testing"

	"lounge-billing/internal/domain/staff"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("known roles parse", func(t *testing.T) {
		for _, s := range []string{"staff", "manager", "admin"} {
			role, err := staff.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("unknown roles are rejected", func(t *testing.T) {
		for _, s := range []string{"", "Admin", "owner", "viewer"} {
			_, err := staff.NewRole(s)
			assert.ErrorIs(t, err, staff.ErrInvalidRole, s)
		}
	})

	t.Run("hierarchy", func(t *testing.T) {
		assert.True(t, staff.RoleAdmin.AtLeast(staff.RoleStaff))
		assert.True(t, staff.RoleManager.AtLeast(staff.RoleManager))
		assert.False(t, staff.RoleStaff.AtLeast(staff.RoleManager))
		assert.False(t, staff.Role("owner").AtLeast(staff.RoleStaff))
		assert.False(t, staff.RoleAdmin.AtLeast(staff.Role("owner")))
	})

	t.Run("only admins manage pricing", func(t *testing.T) {
		tenant := uuid.New()
		assert.True(t, staff.NewPrincipal(tenant, uuid.New(), staff.RoleAdmin).CanManagePricing())
		assert.False(t, staff.NewPrincipal(tenant, uuid.New(), staff.RoleManager).CanManagePricing())
	})
}
