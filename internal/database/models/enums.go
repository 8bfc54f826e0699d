package models

// OrganisationRole is the privilege tier a member holds within one organisation.
// Ordered owner > admin > member > viewer.
type OrganisationRole string

const (
	RoleOwner  OrganisationRole = "owner"
	RoleAdmin  OrganisationRole = "admin"
	RoleMember OrganisationRole = "member"
	RoleViewer OrganisationRole = "viewer"
)

// AllRoles lists every role from most to least privileged
var AllRoles = []OrganisationRole{RoleOwner, RoleAdmin, RoleMember, RoleViewer}

// IsValid checks if the OrganisationRole is valid
func (r OrganisationRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleViewer:
		return true
	}
	return false
}

// Rank returns the privilege rank of the role; unknown roles rank 0
func (r OrganisationRole) Rank() int {
	switch r {
	case RoleOwner:
		return 4
	case RoleAdmin:
		return 3
	case RoleMember:
		return 2
	case RoleViewer:
		return 1
	}
	return 0
}

// AtLeast reports whether r is as privileged as other
func (r OrganisationRole) AtLeast(other OrganisationRole) bool {
	return r.IsValid() && r.Rank() >= other.Rank()
}

// Outranks reports whether r is strictly more privileged than other
func (r OrganisationRole) Outranks(other OrganisationRole) bool {
	return r.Rank() > other.Rank()
}
