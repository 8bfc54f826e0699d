package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// HookService reacts to identity provider lifecycle events
type HookService struct {
	organisations OrganisationServiceInterface
	validator     *validator.Validate
}

// NewHookService creates a new hook service
func NewHookService(organisations OrganisationServiceInterface, validator *validator.Validate) *HookService {
	return &HookService{
		organisations: organisations,
		validator:     validator,
	}
}

// AfterRegistrationRequest is the payload the identity provider posts once a
// registration flow completes
type AfterRegistrationRequest struct {
	FlowID   string               `json:"flow_id"`
	Identity RegistrationIdentity `json:"identity"`
}

// RegistrationIdentity is the registered identity
type RegistrationIdentity struct {
	ID     string         `json:"id" validate:"required,uuid"`
	Traits IdentityTraits `json:"traits"`
}

// IdentityTraits holds the profile traits collected at registration
type IdentityTraits struct {
	Email string       `json:"email" validate:"omitempty,email"`
	Name  IdentityName `json:"name"`
}

// IdentityName is the name trait
type IdentityName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// AfterRegistrationResponse reports the personal organisation created for the identity
type AfterRegistrationResponse struct {
	OrganisationID uuid.UUID `json:"organisation_id"`
	MembershipID   uuid.UUID `json:"membership_id"`
}

// AfterRegistration provisions a personal organisation owned by the newly
// registered identity
func (s *HookService) AfterRegistration(ctx context.Context, req *AfterRegistrationRequest) (*AfterRegistrationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	identityID, err := uuid.Parse(req.Identity.ID)
	if err != nil {
		return nil, apperrors.NewValidationError("identity.id", "must be a UUID")
	}

	name := PersonalOrganisationName(req.Identity.Traits)
	if name == "" {
		return nil, apperrors.NewValidationError("identity.traits", "a name or email is required")
	}

	ctx = logger.NewContext(ctx, map[string]interface{}{
		"principal_id": identityID.String(),
		"flow_id":      req.FlowID,
	})

	created, err := s.organisations.CreateOrganisation(ctx, identityID, &CreateOrganisationRequest{Name: name})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithField("organisation_id", created.Organisation.ID.String()).Info("personal organisation provisioned")

	return &AfterRegistrationResponse{
		OrganisationID: created.Organisation.ID,
		MembershipID:   created.OrganisationMember.ID,
	}, nil
}

// PersonalOrganisationName derives the organisation name from the identity
// traits: the full name when present, otherwise the local part of the email.
func PersonalOrganisationName(traits IdentityTraits) string {
	name := strings.TrimSpace(strings.TrimSpace(traits.Name.First) + " " + strings.TrimSpace(traits.Name.Last))
	if name != "" {
		return name
	}

	email := strings.TrimSpace(traits.Email)
	if at := strings.Index(email, "@"); at >= 0 {
		email = email[:at]
	}
	return email
}
