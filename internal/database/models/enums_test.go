package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrganisationRole(t *testing.T) {
	t.Run("IsValid", func(t *testing.T) {
		for _, role := range AllRoles {
			assert.True(t, role.IsValid(), role)
		}
		assert.False(t, OrganisationRole("OWNER").IsValid())
		assert.False(t, OrganisationRole("").IsValid())
	})

	t.Run("privilege ordering", func(t *testing.T) {
		assert.True(t, RoleOwner.Outranks(RoleAdmin))
		assert.True(t, RoleAdmin.Outranks(RoleMember))
		assert.True(t, RoleMember.Outranks(RoleViewer))
		assert.False(t, RoleViewer.Outranks(RoleViewer))
	})

	t.Run("AtLeast", func(t *testing.T) {
		assert.True(t, RoleMember.AtLeast(RoleMember))
		assert.True(t, RoleOwner.AtLeast(RoleMember))
		assert.False(t, RoleViewer.AtLeast(RoleMember))
		assert.False(t, OrganisationRole("ghost").AtLeast(RoleViewer))
	})
}
