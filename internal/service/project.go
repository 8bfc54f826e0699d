package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"control-plane-backend/internal/authz"
	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/logger"
	"control-plane-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	tx          repository.TransactionManagerInterface
	projectRepo repository.ProjectRepositoryInterface
	orgRepo     repository.OrganisationRepositoryInterface
	memberRepo  repository.OrganisationMemberRepositoryInterface
	validator   *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(tx repository.TransactionManagerInterface, projectRepo repository.ProjectRepositoryInterface, orgRepo repository.OrganisationRepositoryInterface, memberRepo repository.OrganisationMemberRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		tx:          tx,
		projectRepo: projectRepo,
		orgRepo:     orgRepo,
		memberRepo:  memberRepo,
		validator:   validator,
	}
}

// CreateProjectRequest represents the request to create a project.
// OwnerID defaults to the calling principal.
type CreateProjectRequest struct {
	Name           string     `json:"name" validate:"required,max=255" example:"billing"`
	Description    *string    `json:"description,omitempty" validate:"omitempty,max=2000"`
	OrganisationID uuid.UUID  `json:"organisation_id" validate:"required" swaggertype:"string" format:"uuid"`
	OwnerID        *uuid.UUID `json:"owner_id,omitempty" swaggertype:"string" format:"uuid"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsArchived  *bool   `json:"is_archived,omitempty"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description,omitempty"`
	OrganisationID uuid.UUID `json:"organisation_id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	IsArchived     bool      `json:"is_archived"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// CreateProject creates a project in an active organisation. The owner must be
// an active member holding at least the member role.
func (s *ProjectService) CreateProject(ctx context.Context, principalID uuid.UUID, req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ownerID := principalID
	if req.OwnerID != nil && *req.OwnerID != uuid.Nil {
		ownerID = *req.OwnerID
	}

	var project *models.Project
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		org, err := loadOrganisation(ctx, s.orgRepo.GetByID, req.OrganisationID)
		if err != nil {
			return err
		}
		if !org.IsActive {
			return apperrors.ErrOrganisationInactive
		}

		actor, err := actingMember(ctx, s.memberRepo, org.ID, principalID)
		if err != nil {
			return err
		}
		if err := authz.Require(actor, authz.ActionManageProjects); err != nil {
			return err
		}

		owner := actor
		if ownerID != principalID {
			owner, err = s.memberRepo.GetActiveByIdentity(ctx, org.ID, ownerID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrOwnerNotMember
				}
				return fmt.Errorf("failed to resolve project owner: %w", err)
			}
		}
		if !owner.Role.AtLeast(models.RoleMember) {
			return apperrors.ErrOwnerNotMember
		}

		ts := now()
		project = &models.Project{
			BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
			Name:           req.Name,
			Description:    trimmedOrNil(req.Description),
			OrganisationID: org.ID,
			OwnerID:        ownerID,
		}
		if err := s.projectRepo.Create(ctx, project); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organisation_id": project.OrganisationID.String(),
		"project_id":      project.ID.String(),
	}).Info("project created")

	return toProjectResponse(project), nil
}

// GetProject returns a project visible to the principal
func (s *ProjectService) GetProject(ctx context.Context, principalID, id uuid.UUID) (*ProjectResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}

	project, err := loadProject(ctx, s.projectRepo.GetByID, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, project, principalID, authz.ActionViewOnly); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

// UpdateProject applies a partial update, including the archived flag
func (s *ProjectService) UpdateProject(ctx context.Context, principalID, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name", "must not be empty")
		}
		req.Name = &name
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var project *models.Project
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		project, err = loadProject(ctx, s.projectRepo.GetByIDForUpdate, id)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, project, principalID, authz.ActionManageProjects); err != nil {
			return err
		}

		if req.Name != nil {
			project.Name = *req.Name
		}
		if req.Description != nil {
			project.Description = trimmedOrNil(req.Description)
		}
		if req.IsArchived != nil {
			project.IsArchived = *req.IsArchived
		}
		project.UpdatedAt = now()

		if err := s.projectRepo.Update(ctx, project); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("project_id", id.String()).Info("project updated")

	return toProjectResponse(project), nil
}

// ArchiveProject marks a project archived. Archiving an archived project
// returns it unchanged.
func (s *ProjectService) ArchiveProject(ctx context.Context, principalID, id uuid.UUID) (*ProjectResponse, error) {
	return s.setArchived(ctx, principalID, id, true)
}

// UnarchiveProject clears the archived flag. Unarchiving an active project
// returns it unchanged.
func (s *ProjectService) UnarchiveProject(ctx context.Context, principalID, id uuid.UUID) (*ProjectResponse, error) {
	return s.setArchived(ctx, principalID, id, false)
}

func (s *ProjectService) setArchived(ctx context.Context, principalID, id uuid.UUID, archived bool) (*ProjectResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}

	var project *models.Project
	changed := false
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		project, err = loadProject(ctx, s.projectRepo.GetByIDForUpdate, id)
		if err != nil {
			return err
		}
		if err := s.authorize(ctx, project, principalID, authz.ActionManageProjects); err != nil {
			return err
		}

		if project.IsArchived == archived {
			return nil
		}

		project.IsArchived = archived
		project.UpdatedAt = now()
		if err := s.projectRepo.Update(ctx, project); err != nil {
			return fmt.Errorf("failed to update project: %w", err)
		}
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"project_id": id.String(),
			"archived":   archived,
		}).Info("project archive state changed")
	}

	return toProjectResponse(project), nil
}

// DeleteProject removes a project. The delete only matches when the principal
// may manage projects in its organisation; when nothing matched, a lookup
// tells an absent project from a forbidden one.
func (s *ProjectService) DeleteProject(ctx context.Context, principalID, id uuid.UUID) error {
	if err := requirePrincipal(principalID); err != nil {
		return err
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		rows, err := s.projectRepo.DeleteAuthorized(ctx, id, principalID, authz.RolesAllowed(authz.ActionManageProjects))
		if err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		if rows > 0 {
			return nil
		}

		if _, err := loadProject(ctx, s.projectRepo.GetByID, id); err != nil {
			return err
		}
		return apperrors.ErrProjectNotAllowed
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithField("project_id", id.String()).Info("project deleted")
	return nil
}

// ListProjects returns a page of projects, newest first. With orgID the page
// covers that organisation; without it, every organisation the principal
// actively belongs to.
func (s *ProjectService) ListProjects(ctx context.Context, principalID uuid.UUID, orgID *uuid.UUID, page, perPage int) (*PaginatedResponse[ProjectResponse], error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}
	page, perPage = NormalizePagination(page, perPage)

	filter := repository.ProjectFilter{MemberIdentityID: &principalID}
	if orgID != nil {
		if _, err := loadOrganisation(ctx, s.orgRepo.GetByID, *orgID); err != nil {
			return nil, err
		}
		actor, err := actingMember(ctx, s.memberRepo, *orgID, principalID)
		if err != nil {
			return nil, err
		}
		if err := authz.Require(actor, authz.ActionViewOnly); err != nil {
			return nil, err
		}
		filter = repository.ProjectFilter{OrganisationID: orgID}
	}

	projects, total, err := s.projectRepo.List(ctx, filter, perPage, Offset(page, perPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = *toProjectResponse(&projects[i])
	}
	return NewPaginatedResponse(responses, total, page, perPage), nil
}

func (s *ProjectService) authorize(ctx context.Context, project *models.Project, principalID uuid.UUID, action authz.Action) error {
	actor, err := actingMember(ctx, s.memberRepo, project.OrganisationID, principalID)
	if err != nil {
		return err
	}
	return authz.Require(actor, action)
}

func toProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		ID:             project.ID,
		Name:           project.Name,
		Description:    project.Description,
		OrganisationID: project.OrganisationID,
		OwnerID:        project.OwnerID,
		IsArchived:     project.IsArchived,
		CreatedAt:      formatTime(project.CreatedAt),
		UpdatedAt:      formatTime(project.UpdatedAt),
	}
}
