package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// now is truncated to the database's timestamp precision so responses match stored rows
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// trimmedOrNil trims s and maps a blank result to nil
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// actingMember resolves the principal's active membership. A principal with
// no active membership is reported as a non-member.
func actingMember(ctx context.Context, repo repository.OrganisationMemberRepositoryInterface, orgID, principalID uuid.UUID) (*models.OrganisationMember, error) {
	member, err := repo.GetActiveByIdentity(ctx, orgID, principalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotMember
		}
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	}
	return member, nil
}

func loadOrganisation(ctx context.Context, get func(context.Context, uuid.UUID) (*models.Organisation, error), id uuid.UUID) (*models.Organisation, error) {
	org, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to get organisation: %w", err)
	}
	return org, nil
}

func loadProject(ctx context.Context, get func(context.Context, uuid.UUID) (*models.Project, error), id uuid.UUID) (*models.Project, error) {
	project, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func requirePrincipal(principalID uuid.UUID) error {
	if principalID == uuid.Nil {
		return apperrors.ErrMissingPrincipal
	}
	return nil
}
