package repository

import (
	"context"

	"control-plane-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TransactionManagerInterface defines the unit-of-work boundary used by services
type TransactionManagerInterface interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrganisationRepositoryInterface defines the interface for organisation repository operations
type OrganisationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organisation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Organisation, error)
	ListByIdentity(ctx context.Context, identityID uuid.UUID) ([]models.Organisation, error)
	Update(ctx context.Context, org *models.Organisation) error
}

// OrganisationMemberRepositoryInterface defines the interface for membership repository operations
type OrganisationMemberRepositoryInterface interface {
	Create(ctx context.Context, member *models.OrganisationMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.OrganisationMember, error)
	GetByIdentity(ctx context.Context, orgID, identityID uuid.UUID) (*models.OrganisationMember, error)
	GetActiveByIdentity(ctx context.Context, orgID, identityID uuid.UUID) (*models.OrganisationMember, error)
	CountActiveOwners(ctx context.Context, orgID uuid.UUID) (int64, error)
	ListActiveByOrganisation(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.OrganisationMember, int64, error)
	Update(ctx context.Context, member *models.OrganisationMember) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	DeleteAuthorized(ctx context.Context, id, identityID uuid.UUID, roles []models.OrganisationRole) (int64, error)
	List(ctx context.Context, filter ProjectFilter, limit, offset int) ([]models.Project, int64, error)
}

// ProjectFilter narrows project listings. A nil field means no restriction.
type ProjectFilter struct {
	OrganisationID *uuid.UUID
	// MemberIdentityID restricts results to organisations where the identity is an active member
	MemberIdentityID *uuid.UUID
}
