package repository

import (
	"context"

	"control-plane-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return mapError("create", "project", conn(ctx, r.db).Create(project).Error)
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := conn(ctx, r.db).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, mapError("get", "project", err)
	}
	return &project, nil
}

// GetByIDForUpdate retrieves a project and, inside a transaction, locks its
// row until the transaction ends
func (r *ProjectRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	query := conn(ctx, r.db)
	if inTransaction(ctx) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, mapError("get", "project", err)
	}
	return &project, nil
}

// Update updates a project
func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	return mapError("update", "project", conn(ctx, r.db).Save(project).Error)
}

// DeleteAuthorized deletes a project only when identityID holds an active
// membership with one of roles in the project's organisation. It returns the
// number of rows removed; zero means the project is absent or not permitted.
func (r *ProjectRepository) DeleteAuthorized(ctx context.Context, id, identityID uuid.UUID, roles []models.OrganisationRole) (int64, error) {
	if len(roles) == 0 {
		return 0, nil
	}

	allowed := conn(ctx, r.db).
		Model(&models.OrganisationMember{}).
		Select("organisation_id").
		Where("identity_id = ? AND is_active = ? AND role IN ?", identityID, true, roles)

	result := conn(ctx, r.db).
		Where("id = ? AND organisation_id IN (?)", id, allowed).
		Delete(&models.Project{})
	if result.Error != nil {
		return 0, mapError("delete", "project", result.Error)
	}
	return result.RowsAffected, nil
}

// List retrieves projects matching filter, newest first, with pagination.
// Ties on created_at are broken by id so pages never overlap.
func (r *ProjectRepository) List(ctx context.Context, filter ProjectFilter, limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	query := conn(ctx, r.db).Model(&models.Project{})
	if filter.OrganisationID != nil {
		query = query.Where("organisation_id = ?", *filter.OrganisationID)
	}
	if filter.MemberIdentityID != nil {
		memberships := conn(ctx, r.db).
			Model(&models.OrganisationMember{}).
			Select("organisation_id").
			Where("identity_id = ? AND is_active = ?", *filter.MemberIdentityID, true)
		query = query.Where("organisation_id IN (?)", memberships)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, mapError("count", "project", err)
	}

	// Get paginated results
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error
	if err != nil {
		return nil, 0, mapError("list", "project", err)
	}

	return projects, total, nil
}
