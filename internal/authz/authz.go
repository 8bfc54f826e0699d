package authz

import (
	"fmt"
	"slices"

	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
)

// Action represents an operation class guarded by an organisation role
type Action string

const (
	ActionManageOrganisation Action = "organisation:manage"
	ActionManageMembers      Action = "members:manage"
	ActionManageProjects     Action = "projects:manage"
	ActionViewOnly           Action = "organisation:view"
)

// AllActions lists every action the policy knows about
var AllActions = []Action{
	ActionManageOrganisation,
	ActionManageMembers,
	ActionManageProjects,
	ActionViewOnly,
}

// RolePermissions maps organisation roles to allowed actions
var RolePermissions = map[models.OrganisationRole][]Action{
	models.RoleOwner: {
		ActionManageOrganisation,
		ActionManageMembers,
		ActionManageProjects,
		ActionViewOnly,
	},
	models.RoleAdmin: {
		ActionManageMembers,
		ActionManageProjects,
		ActionViewOnly,
	},
	models.RoleMember: {
		ActionManageProjects,
		ActionViewOnly,
	},
	models.RoleViewer: {
		ActionViewOnly,
	},
}

// Authorize reports whether role may perform action. Unknown roles and
// unknown actions are denied.
func Authorize(role models.OrganisationRole, action Action) bool {
	actions, ok := RolePermissions[role]
	if !ok {
		return false
	}
	return slices.Contains(actions, action)
}

// RolesAllowed returns the roles permitted to perform action, most privileged first
func RolesAllowed(action Action) []models.OrganisationRole {
	roles := make([]models.OrganisationRole, 0, len(models.AllRoles))
	for _, role := range models.AllRoles {
		if Authorize(role, action) {
			roles = append(roles, role)
		}
	}
	return roles
}

// Require returns an authorization error when member may not perform action.
// A nil or inactive member is treated as a non-member.
func Require(member *models.OrganisationMember, action Action) error {
	if member == nil || !member.IsActive {
		return apperrors.ErrNotMember
	}
	if !Authorize(member.Role, action) {
		return fmt.Errorf("%w: %s cannot %s", apperrors.ErrInsufficientRole, member.Role, action)
	}
	return nil
}
