package repository

import (
	"context"

	"control-plane-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrganisationRepository handles database operations for organisations
type OrganisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository creates a new organisation repository
func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

// Create creates a new organisation
func (r *OrganisationRepository) Create(ctx context.Context, org *models.Organisation) error {
	return mapError("create", "organisation", conn(ctx, r.db).Create(org).Error)
}

// GetByID retrieves an organisation by ID
func (r *OrganisationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	err := conn(ctx, r.db).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, mapError("get", "organisation", err)
	}
	return &org, nil
}

// GetByIDForUpdate retrieves an organisation and, inside a transaction, locks
// its row FOR NO KEY UPDATE. Membership mutations take this lock first so they
// are serialized per organisation. NO KEY UPDATE leaves foreign-key inserts
// (projects, memberships) unblocked.
func (r *OrganisationRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	query := conn(ctx, r.db)
	if inTransaction(ctx) {
		query = query.Clauses(clause.Locking{Strength: "NO KEY UPDATE"})
	}
	if err := query.First(&org, "id = ?", id).Error; err != nil {
		return nil, mapError("lock", "organisation", err)
	}
	return &org, nil
}

// ListByIdentity retrieves the organisations where the identity holds an active membership, newest first
func (r *OrganisationRepository) ListByIdentity(ctx context.Context, identityID uuid.UUID) ([]models.Organisation, error) {
	var orgs []models.Organisation
	err := conn(ctx, r.db).
		Joins("JOIN organisation_members m ON m.organisation_id = organisations.id").
		Where("m.identity_id = ? AND m.is_active = ?", identityID, true).
		Order("organisations.created_at DESC, organisations.id DESC").
		Find(&orgs).Error
	if err != nil {
		return nil, mapError("list", "organisation", err)
	}
	return orgs, nil
}

// Update updates an organisation
func (r *OrganisationRepository) Update(ctx context.Context, org *models.Organisation) error {
	return mapError("update", "organisation", conn(ctx, r.db).Save(org).Error)
}
