package service

import (
	"context"
	"errors"
	"fmt"

	"control-plane-backend/internal/authz"
	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InviteMemberRequest represents the request to add an identity to an organisation
type InviteMemberRequest struct {
	IdentityID uuid.UUID               `json:"identity_id" validate:"required" swaggertype:"string" format:"uuid"`
	Role       models.OrganisationRole `json:"role" validate:"required,org_role" enums:"owner,admin,member,viewer"`
}

// ChangeRoleRequest represents the request to change a member's role
type ChangeRoleRequest struct {
	Role models.OrganisationRole `json:"role" validate:"required,org_role" enums:"owner,admin,member,viewer"`
}

// OrganisationMemberResponse represents the response for membership operations
type OrganisationMemberResponse struct {
	ID                   uuid.UUID               `json:"id"`
	OrganisationID       uuid.UUID               `json:"organisation_id"`
	IdentityID           uuid.UUID               `json:"identity_id"`
	Role                 models.OrganisationRole `json:"role"`
	IsActive             bool                    `json:"is_active"`
	JoinedAt             string                  `json:"joined_at"`
	InvitedBy            uuid.UUID               `json:"invited_by"`
	InvitedAt            string                  `json:"invited_at"`
	InvitationAcceptedAt string                  `json:"invitation_accepted_at"`
}

// InviteMember adds an identity to an organisation. A previously removed
// membership is reactivated with the new role.
func (s *OrganisationService) InviteMember(ctx context.Context, principalID, orgID uuid.UUID, req *InviteMemberRequest) (*OrganisationMemberResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var member *models.OrganisationMember
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.lockForMembershipChange(ctx, orgID, principalID, true)
		if err != nil {
			return err
		}
		if err := authz.Require(actor, authz.ActionManageMembers); err != nil {
			return err
		}
		if req.Role.Outranks(actor.Role) {
			return apperrors.ErrRoleCeiling
		}

		ts := now()
		existing, err := s.memberRepo.GetByIdentity(ctx, orgID, req.IdentityID)
		switch {
		case err == nil && existing.IsActive:
			return apperrors.ErrMembershipExists
		case err == nil:
			existing.Role = req.Role
			existing.IsActive = true
			existing.JoinedAt = ts
			existing.InvitedBy = principalID
			existing.InvitedAt = ts
			existing.InvitationAcceptedAt = ts
			existing.UpdatedAt = ts
			if err := s.memberRepo.Update(ctx, existing); err != nil {
				return fmt.Errorf("failed to reactivate membership: %w", err)
			}
			member = existing
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			member = &models.OrganisationMember{
				BaseModel:            models.BaseModel{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
				OrganisationID:       orgID,
				IdentityID:           req.IdentityID,
				Role:                 req.Role,
				IsActive:             true,
				JoinedAt:             ts,
				InvitedBy:            principalID,
				InvitedAt:            ts,
				InvitationAcceptedAt: ts,
			}
			if err := s.memberRepo.Create(ctx, member); err != nil {
				return fmt.Errorf("failed to create membership: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("failed to check existing membership: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organisation_id": orgID.String(),
		"identity_id":     req.IdentityID.String(),
		"role":            string(req.Role),
	}).Info("member invited")

	return toOrganisationMemberResponse(member), nil
}

// ChangeRole changes a member's role. Demoting the last active owner fails.
func (s *OrganisationService) ChangeRole(ctx context.Context, principalID, orgID, memberID uuid.UUID, req *ChangeRoleRequest) (*OrganisationMemberResponse, error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var target *models.OrganisationMember
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.lockForMembershipChange(ctx, orgID, principalID, true)
		if err != nil {
			return err
		}
		if err := authz.Require(actor, authz.ActionManageMembers); err != nil {
			return err
		}

		target, err = s.targetMember(ctx, orgID, memberID)
		if err != nil {
			return err
		}
		if target.Role.Outranks(actor.Role) || req.Role.Outranks(actor.Role) {
			return apperrors.ErrRoleCeiling
		}
		if target.Role == req.Role {
			return nil
		}
		if target.Role == models.RoleOwner {
			if err := s.ensureAnotherOwner(ctx, orgID); err != nil {
				return err
			}
		}

		target.Role = req.Role
		target.UpdatedAt = now()
		if err := s.memberRepo.Update(ctx, target); err != nil {
			return fmt.Errorf("failed to update membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organisation_id": orgID.String(),
		"member_id":       memberID.String(),
		"role":            string(req.Role),
	}).Info("member role changed")

	return toOrganisationMemberResponse(target), nil
}

// RemoveMember deactivates a membership. Principals may remove themselves;
// removing anyone else needs member management rights. The last active owner
// can never be removed.
func (s *OrganisationService) RemoveMember(ctx context.Context, principalID, orgID, memberID uuid.UUID) error {
	if err := requirePrincipal(principalID); err != nil {
		return err
	}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		actor, err := s.lockForMembershipChange(ctx, orgID, principalID, false)
		if err != nil {
			return err
		}

		target, err := s.targetMember(ctx, orgID, memberID)
		if err != nil {
			return err
		}

		if target.IdentityID != principalID {
			if err := authz.Require(actor, authz.ActionManageMembers); err != nil {
				return err
			}
			if target.Role.Outranks(actor.Role) {
				return apperrors.ErrRoleCeiling
			}
		}

		if target.Role == models.RoleOwner {
			if err := s.ensureAnotherOwner(ctx, orgID); err != nil {
				return err
			}
		}

		target.IsActive = false
		target.UpdatedAt = now()
		if err := s.memberRepo.Update(ctx, target); err != nil {
			return fmt.Errorf("failed to remove membership: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"organisation_id": orgID.String(),
		"member_id":       memberID.String(),
	}).Info("member removed")

	return nil
}

// ListMembers returns a page of the organisation's active members, oldest first
func (s *OrganisationService) ListMembers(ctx context.Context, principalID, orgID uuid.UUID, page, perPage int) (*PaginatedResponse[OrganisationMemberResponse], error) {
	if err := requirePrincipal(principalID); err != nil {
		return nil, err
	}
	page, perPage = NormalizePagination(page, perPage)

	if _, err := loadOrganisation(ctx, s.orgRepo.GetByID, orgID); err != nil {
		return nil, err
	}
	actor, err := actingMember(ctx, s.memberRepo, orgID, principalID)
	if err != nil {
		return nil, err
	}
	if err := authz.Require(actor, authz.ActionViewOnly); err != nil {
		return nil, err
	}

	members, total, err := s.memberRepo.ListActiveByOrganisation(ctx, orgID, perPage, Offset(page, perPage))
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]OrganisationMemberResponse, len(members))
	for i := range members {
		responses[i] = *toOrganisationMemberResponse(&members[i])
	}
	return NewPaginatedResponse(responses, total, page, perPage), nil
}

// lockForMembershipChange locks the organisation row, which serialises every
// membership mutation of the organisation, and resolves the acting member.
func (s *OrganisationService) lockForMembershipChange(ctx context.Context, orgID, principalID uuid.UUID, requireActive bool) (*models.OrganisationMember, error) {
	org, err := loadOrganisation(ctx, s.orgRepo.GetByIDForUpdate, orgID)
	if err != nil {
		return nil, err
	}
	if requireActive && !org.IsActive {
		return nil, apperrors.ErrOrganisationInactive
	}
	return actingMember(ctx, s.memberRepo, orgID, principalID)
}

// targetMember loads an active membership that belongs to orgID
func (s *OrganisationService) targetMember(ctx context.Context, orgID, memberID uuid.UUID) (*models.OrganisationMember, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if member.OrganisationID != orgID || !member.IsActive {
		return nil, apperrors.ErrMembershipNotFound
	}
	return member, nil
}

// ensureAnotherOwner fails unless at least two active owners exist, so one
// owner can be demoted or removed.
func (s *OrganisationService) ensureAnotherOwner(ctx context.Context, orgID uuid.UUID) error {
	owners, err := s.memberRepo.CountActiveOwners(ctx, orgID)
	if err != nil {
		return fmt.Errorf("failed to count owners: %w", err)
	}
	if owners <= 1 {
		return apperrors.ErrCannotRemoveLastOwner
	}
	return nil
}

func toOrganisationMemberResponse(member *models.OrganisationMember) *OrganisationMemberResponse {
	return &OrganisationMemberResponse{
		ID:                   member.ID,
		OrganisationID:       member.OrganisationID,
		IdentityID:           member.IdentityID,
		Role:                 member.Role,
		IsActive:             member.IsActive,
		JoinedAt:             formatTime(member.JoinedAt),
		InvitedBy:            member.InvitedBy,
		InvitedAt:            formatTime(member.InvitedAt),
		InvitationAcceptedAt: formatTime(member.InvitationAcceptedAt),
	}
}
