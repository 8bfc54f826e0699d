package testutils

import (
	"fmt"
	"time"

	"control-plane-backend/internal/database/models"

	"github.com/google/uuid"
)

func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// OrganisationFactory provides methods to create test Organisation data
type OrganisationFactory struct{}

// NewOrganisationFactory creates a new OrganisationFactory
func NewOrganisationFactory() *OrganisationFactory {
	return &OrganisationFactory{}
}

// Create creates a test Organisation with default values
func (f *OrganisationFactory) Create() *models.Organisation {
	now := timestamp()
	description := "A test organisation for testing purposes"
	return &models.Organisation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        "Test Organisation",
		Description: &description,
		IsActive:    true,
		CreatedBy:   uuid.New(),
	}
}

// WithName sets a custom name for the organisation
func (f *OrganisationFactory) WithName(name string) *models.Organisation {
	org := f.Create()
	org.Name = name
	return org
}

// CreatedBy sets the creating principal
func (f *OrganisationFactory) CreatedBy(identityID uuid.UUID) *models.Organisation {
	org := f.Create()
	org.CreatedBy = identityID
	return org
}

// MemberFactory provides methods to create test OrganisationMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates an active viewer membership in orgID
func (f *MemberFactory) Create(orgID uuid.UUID) *models.OrganisationMember {
	now := timestamp()
	identityID := uuid.New()
	return &models.OrganisationMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrganisationID:       orgID,
		IdentityID:           identityID,
		Role:                 models.RoleViewer,
		IsActive:             true,
		JoinedAt:             now,
		InvitedBy:            identityID,
		InvitedAt:            now,
		InvitationAcceptedAt: now,
	}
}

// WithRole creates a membership in orgID with a custom role
func (f *MemberFactory) WithRole(orgID uuid.UUID, role models.OrganisationRole) *models.OrganisationMember {
	member := f.Create(orgID)
	member.Role = role
	return member
}

// ForIdentity creates a membership for a specific identity
func (f *MemberFactory) ForIdentity(orgID, identityID uuid.UUID, role models.OrganisationRole) *models.OrganisationMember {
	member := f.WithRole(orgID, role)
	member.IdentityID = identityID
	member.InvitedBy = identityID
	return member
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project in orgID owned by ownerID
func (f *ProjectFactory) Create(orgID, ownerID uuid.UUID) *models.Project {
	now := timestamp()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           "Test Project",
		OrganisationID: orgID,
		OwnerID:        ownerID,
	}
}

// CreatedAt creates a project with a fixed creation time, for ordering tests
func (f *ProjectFactory) CreatedAt(orgID, ownerID uuid.UUID, at time.Time, index int) *models.Project {
	project := f.Create(orgID, ownerID)
	project.Name = fmt.Sprintf("project-%02d", index)
	project.CreatedAt = at
	project.UpdatedAt = at
	return project
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organisation *OrganisationFactory
	Member       *MemberFactory
	Project      *ProjectFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organisation: NewOrganisationFactory(),
		Member:       NewMemberFactory(),
		Project:      NewProjectFactory(),
	}
}

// OrganisationWithOwner builds an organisation and the Owner membership of its creator
func (fs *FactorySet) OrganisationWithOwner() (*models.Organisation, *models.OrganisationMember) {
	org := fs.Organisation.Create()
	owner := fs.Member.ForIdentity(org.ID, org.CreatedBy, models.RoleOwner)
	return org, owner
}
