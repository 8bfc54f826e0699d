package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganisationServiceInterface defines the interface for organisation and membership operations
type OrganisationServiceInterface interface {
	CreateOrganisation(ctx context.Context, principalID uuid.UUID, req *CreateOrganisationRequest) (*CreateOrganisationResponse, error)
	GetOrganisation(ctx context.Context, principalID, id uuid.UUID) (*OrganisationResponse, error)
	ListOrganisations(ctx context.Context, principalID uuid.UUID) ([]OrganisationResponse, error)
	UpdateOrganisation(ctx context.Context, principalID, id uuid.UUID, req *UpdateOrganisationRequest) (*OrganisationResponse, error)
	InviteMember(ctx context.Context, principalID, orgID uuid.UUID, req *InviteMemberRequest) (*OrganisationMemberResponse, error)
	ChangeRole(ctx context.Context, principalID, orgID, memberID uuid.UUID, req *ChangeRoleRequest) (*OrganisationMemberResponse, error)
	RemoveMember(ctx context.Context, principalID, orgID, memberID uuid.UUID) error
	ListMembers(ctx context.Context, principalID, orgID uuid.UUID, page, perPage int) (*PaginatedResponse[OrganisationMemberResponse], error)
}

// ProjectServiceInterface defines the interface for project operations
type ProjectServiceInterface interface {
	CreateProject(ctx context.Context, principalID uuid.UUID, req *CreateProjectRequest) (*ProjectResponse, error)
	GetProject(ctx context.Context, principalID, id uuid.UUID) (*ProjectResponse, error)
	UpdateProject(ctx context.Context, principalID, id uuid.UUID, req *UpdateProjectRequest) (*ProjectResponse, error)
	ArchiveProject(ctx context.Context, principalID, id uuid.UUID) (*ProjectResponse, error)
	UnarchiveProject(ctx context.Context, principalID, id uuid.UUID) (*ProjectResponse, error)
	DeleteProject(ctx context.Context, principalID, id uuid.UUID) error
	ListProjects(ctx context.Context, principalID uuid.UUID, orgID *uuid.UUID, page, perPage int) (*PaginatedResponse[ProjectResponse], error)
}

// HookServiceInterface defines the interface for identity provider webhooks
type HookServiceInterface interface {
	AfterRegistration(ctx context.Context, req *AfterRegistrationRequest) (*AfterRegistrationResponse, error)
}
