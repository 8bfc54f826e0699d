package repository

import (
	"context"

	"control-plane-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrganisationMemberRepository handles database operations for organisation memberships
type OrganisationMemberRepository struct {
	db *gorm.DB
}

// NewOrganisationMemberRepository creates a new membership repository
func NewOrganisationMemberRepository(db *gorm.DB) *OrganisationMemberRepository {
	return &OrganisationMemberRepository{db: db}
}

// Create creates a new membership
func (r *OrganisationMemberRepository) Create(ctx context.Context, member *models.OrganisationMember) error {
	return mapError("create", "organisation member", conn(ctx, r.db).Create(member).Error)
}

// GetByID retrieves a membership by ID regardless of its active flag
func (r *OrganisationMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.OrganisationMember, error) {
	var member models.OrganisationMember
	err := conn(ctx, r.db).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, mapError("get", "organisation member", err)
	}
	return &member, nil
}

// GetByIdentity retrieves the membership of an identity in an organisation, active or not
func (r *OrganisationMemberRepository) GetByIdentity(ctx context.Context, orgID, identityID uuid.UUID) (*models.OrganisationMember, error) {
	var member models.OrganisationMember
	err := conn(ctx, r.db).
		Where("organisation_id = ? AND identity_id = ?", orgID, identityID).
		First(&member).Error
	if err != nil {
		return nil, mapError("get", "organisation member", err)
	}
	return &member, nil
}

// GetActiveByIdentity retrieves the active membership of an identity in an
// organisation. Inside a transaction the row is locked FOR SHARE so the role
// cannot change until the transaction ends.
func (r *OrganisationMemberRepository) GetActiveByIdentity(ctx context.Context, orgID, identityID uuid.UUID) (*models.OrganisationMember, error) {
	var member models.OrganisationMember
	query := conn(ctx, r.db)
	if inTransaction(ctx) {
		query = query.Clauses(clause.Locking{Strength: "SHARE"})
	}
	err := query.
		Where("organisation_id = ? AND identity_id = ? AND is_active = ?", orgID, identityID, true).
		First(&member).Error
	if err != nil {
		return nil, mapError("get", "organisation member", err)
	}
	return &member, nil
}

// CountActiveOwners counts the active owner memberships of an organisation
func (r *OrganisationMemberRepository) CountActiveOwners(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := conn(ctx, r.db).
		Model(&models.OrganisationMember{}).
		Where("organisation_id = ? AND role = ? AND is_active = ?", orgID, models.RoleOwner, true).
		Count(&count).Error
	if err != nil {
		return 0, mapError("count", "organisation member", err)
	}
	return count, nil
}

// ListActiveByOrganisation retrieves active memberships for an organisation with pagination
func (r *OrganisationMemberRepository) ListActiveByOrganisation(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.OrganisationMember, int64, error) {
	var members []models.OrganisationMember
	var total int64

	query := conn(ctx, r.db).Model(&models.OrganisationMember{}).
		Where("organisation_id = ? AND is_active = ?", orgID, true)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, mapError("count", "organisation member", err)
	}

	// Get paginated results
	err := query.
		Order("joined_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&members).Error
	if err != nil {
		return nil, 0, mapError("list", "organisation member", err)
	}

	return members, total, nil
}

// Update updates a membership
func (r *OrganisationMemberRepository) Update(ctx context.Context, member *models.OrganisationMember) error {
	return mapError("update", "organisation member", conn(ctx, r.db).Save(member).Error)
}
