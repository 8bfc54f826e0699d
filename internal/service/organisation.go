package service

import (
	"context"
	"fmt"
	"strings"

	"control-plane-backend/internal/authz"
	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/logger"
	"control-plane-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrganisationService handles business logic for organisations and their memberships
type OrganisationService struct {
	tx         repository.TransactionManagerInterface
	orgRepo    repository.OrganisationRepositoryInterface
	memberRepo repository.OrganisationMemberRepositoryInterface
	validator  *validator.Validate
}

// NewOrganisationService creates a new organisation service
func NewOrganisationService(tx repository.TransactionManagerInterface, orgRepo repository.OrganisationRepositoryInterface, memberRepo repository.OrganisationMemberRepositoryInterface, validator *validator.Validate) *OrganisationService {
	return &OrganisationService{
		tx:         tx,
		orgRepo:    orgRepo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreateOrganisationRequest represents the request to create an organisation
type CreateOrganisationRequest struct {
	Name        string  `json:"name" validate:"required,max=255" example:"Acme"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// UpdateOrganisationRequest represents a partial organisation update
type UpdateOrganisationRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// OrganisationResponse represents the response for organisation operations
type OrganisationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// CreateOrganisationResponse carries the new organisation and its owner membership
type CreateOrganisationResponse struct {
	Organisation       OrganisationResponse       `json:"organisation"`
	OrganisationMember OrganisationMemberResponse `json:"organisation_member"`
}

// CreateOrganisation creates an organisation together with an Owner membership
// for the principal. Either both rows are written or neither is.
func (s *OrganisationService) CreateOrganisation(ctx context.Context, principalID uuid.UUID, req *CreateOrganisationRequest) (*CreateOrganisationResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ts := now()
	org := &models.Organisation{
		BaseModel:   models.BaseModel{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
		Name:        req.Name,
		Description: trimmedOrNil(req.Description),
		AvatarURL:   trimmedOrNil(req.AvatarURL),
		IsActive:    true,
		CreatedBy:   principalID,
	}
	owner := &models.OrganisationMember{
		BaseModel:            models.BaseModel{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
		OrganisationID:       org.ID,
		IdentityID:           principalID,
		Role:                 models.RoleOwner,
		IsActive:             true,
		JoinedAt:             ts,
		InvitedBy:            principalID,
		InvitedAt:            ts,
		InvitationAcceptedAt: ts,
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.orgRepo.Create(ctx, org); err != nil {
			return fmt.Errorf("failed to create organisation: %w", err)
		}
		if err := s.memberRepo.Create(ctx, owner); err != nil {
			return fmt.Errorf("failed to create owner membership: %w", err)
		}
		return nil
	})
	if err != nil {
		logger.WithContext(ctx).WithError(err).Error("organisation creation rolled back")
		return nil, err
	}

	logger.WithContext(ctx).WithField("organisation_id", org.ID.String()).Info("organisation created")

	return &CreateOrganisationResponse{
		Organisation:       *toOrganisationResponse(org),
		OrganisationMember: *toOrganisationMemberResponse(owner),
	}, nil
}

// GetOrganisation returns an organisation the principal is an active member of
func (s *OrganisationService) GetOrganisation(ctx context.Context, principalID, id uuid.UUID) (*OrganisationResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}

	org, err := loadOrganisation(ctx, s.orgRepo.GetByID, id)
	if err != nil {
		return nil, err
	}

	actor, err := actingMember(ctx, s.memberRepo, id, principalID)
	if err != nil {
		return nil, err
	}
	if err := authz.Require(actor, authz.ActionViewOnly); err != nil {
		return nil, err
	}

	return toOrganisationResponse(org), nil
}

// ListOrganisations returns every organisation the principal actively belongs to
func (s *OrganisationService) ListOrganisations(ctx context.Context, principalID uuid.UUID) ([]OrganisationResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}

	orgs, err := s.orgRepo.ListByIdentity(ctx, principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organisations: %w", err)
	}

	responses := make([]OrganisationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *toOrganisationResponse(&orgs[i])
	}
	return responses, nil
}

// UpdateOrganisation applies a partial update. Deactivation is one-way.
func (s *OrganisationService) UpdateOrganisation(ctx context.Context, principalID, id uuid.UUID, req *UpdateOrganisationRequest) (*OrganisationResponse, error) {
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

	var org *models.Organisation
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		org, err = loadOrganisation(ctx, s.orgRepo.GetByIDForUpdate, id)
		if err != nil {
			return err
		}

		actor, err := actingMember(ctx, s.memberRepo, id, principalID)
		if err != nil {
			return err
		}
		if err := authz.Require(actor, authz.ActionManageOrganisation); err != nil {
			return err
		}

		if !org.IsActive {
			return apperrors.ErrOrganisationInactive
		}

		if req.Name != nil {
			org.Name = *req.Name
		}
		if req.Description != nil {
			org.Description = trimmedOrNil(req.Description)
		}
		if req.AvatarURL != nil {
			org.AvatarURL = trimmedOrNil(req.AvatarURL)
		}
		if req.IsActive != nil {
			org.IsActive = *req.IsActive
		}
		org.UpdatedAt = now()

		if err := s.orgRepo.Update(ctx, org); err != nil {
			return fmt.Errorf("failed to update organisation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	entry := logger.WithContext(ctx).WithField("organisation_id", id.String())
	if !org.IsActive {
		entry.Warn("organisation deactivated")
	} else {
		entry.Info("organisation updated")
	}

	return toOrganisationResponse(org), nil
}

func toOrganisationResponse(org *models.Organisation) *OrganisationResponse {
	return &OrganisationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		AvatarURL:   org.AvatarURL,
		IsActive:    org.IsActive,
		CreatedBy:   org.CreatedBy,
		CreatedAt:   formatTime(org.CreatedAt),
		UpdatedAt:   formatTime(org.UpdatedAt),
	}
}
