package service_test

import (
	"context"
	"testing"
	"time"

	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/mocks"
	"control-plane-backend/internal/repository"
	"control-plane-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ProjectServiceTestSuite defines the test suite for ProjectService
type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockTx          *mocks.MockTransactionManagerInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockOrgRepo     *mocks.MockOrganisationRepositoryInterface
	mockMemberRepo  *mocks.MockOrganisationMemberRepositoryInterface
	service         *service.ProjectService
	ctx             context.Context
	org             *models.Organisation
	principalID     uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTx = mocks.NewMockTransactionManagerInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockOrgRepo = mocks.NewMockOrganisationRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockOrganisationMemberRepositoryInterface(suite.ctrl)
	passThroughTx(suite.mockTx)

	suite.service = service.NewProjectService(suite.mockTx, suite.mockProjectRepo, suite.mockOrgRepo, suite.mockMemberRepo, service.NewValidator())
	suite.ctx = context.Background()
	suite.org = newOrganisation(true)
	suite.principalID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) newProject(archived bool) *models.Project {
	ts := time.Now().UTC()
	return &models.Project{
		BaseModel:      models.BaseModel{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts},
		Name:           "billing",
		OrganisationID: suite.org.ID,
		OwnerID:        suite.principalID,
		IsArchived:     archived,
	}
}

func (suite *ProjectServiceTestSuite) expectMember(identityID uuid.UUID, role models.OrganisationRole) *models.OrganisationMember {
	member := newMember(suite.org.ID, identityID, role)
	suite.mockMemberRepo.EXPECT().GetActiveByIdentity(gomock.Any(), suite.org.ID, identityID).Return(member, nil).Times(1)
	return member
}

func (suite *ProjectServiceTestSuite) TestCreateProjectDefaultsOwnerToPrincipal() {
	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.org.ID).Return(suite.org, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleMember)
	suite.mockProjectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	response, err := suite.service.CreateProject(suite.ctx, suite.principalID, &service.CreateProjectRequest{
		Name:           " billing ",
		OrganisationID: suite.org.ID,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "billing", response.Name)
	assert.Equal(suite.T(), suite.principalID, response.OwnerID)
	assert.Equal(suite.T(), suite.org.ID, response.OrganisationID)
	assert.False(suite.T(), response.IsArchived)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectOwnerNotMember() {
	outsider := uuid.New()

	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.org.ID).Return(suite.org, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleOwner)
	suite.mockMemberRepo.EXPECT().GetActiveByIdentity(gomock.Any(), suite.org.ID, outsider).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockProjectRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.service.CreateProject(suite.ctx, suite.principalID, &service.CreateProjectRequest{
		Name:           "billing",
		OrganisationID: suite.org.ID,
		OwnerID:        &outsider,
	})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerNotMember)
	assert.True(suite.T(), apperrors.IsInvariantViolation(err))
}

func (suite *ProjectServiceTestSuite) TestCreateProjectViewerCannotOwn() {
	viewer := uuid.New()

	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.org.ID).Return(suite.org, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleAdmin)
	suite.expectMember(viewer, models.RoleViewer)

	_, err := suite.service.CreateProject(suite.ctx, suite.principalID, &service.CreateProjectRequest{
		Name:           "billing",
		OrganisationID: suite.org.ID,
		OwnerID:        &viewer,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerNotMember)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectViewerForbidden() {
	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.org.ID).Return(suite.org, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleViewer)

	_, err := suite.service.CreateProject(suite.ctx, suite.principalID, &service.CreateProjectRequest{
		Name:           "billing",
		OrganisationID: suite.org.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientRole)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectInactiveOrganisation() {
	suite.org.IsActive = false
	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.org.ID).Return(suite.org, nil).Times(1)

	_, err := suite.service.CreateProject(suite.ctx, suite.principalID, &service.CreateProjectRequest{
		Name:           "billing",
		OrganisationID: suite.org.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganisationInactive)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectOrganisationNotFound() {
	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.org.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.CreateProject(suite.ctx, suite.principalID, &service.CreateProjectRequest{
		Name:           "billing",
		OrganisationID: suite.org.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganisationNotFound)
}

func (suite *ProjectServiceTestSuite) TestCreateProjectValidationError() {
	_, err := suite.service.CreateProject(suite.ctx, suite.principalID, &service.CreateProjectRequest{Name: "billing"})

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *ProjectServiceTestSuite) TestGetProject() {
	project := suite.newProject(false)
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleViewer)

	response, err := suite.service.GetProject(suite.ctx, suite.principalID, project.ID)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), project.ID, response.ID)
}

func (suite *ProjectServiceTestSuite) TestGetProjectNotFound() {
	id := uuid.New()
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.GetProject(suite.ctx, suite.principalID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestUpdateProject() {
	project := suite.newProject(false)
	name := "invoicing"
	archived := true

	suite.mockProjectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), project.ID).Return(project, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleMember)
	suite.mockProjectRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	response, err := suite.service.UpdateProject(suite.ctx, suite.principalID, project.ID, &service.UpdateProjectRequest{
		Name:       &name,
		IsArchived: &archived,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "invoicing", response.Name)
	assert.True(suite.T(), response.IsArchived)
}

func (suite *ProjectServiceTestSuite) TestArchiveProject() {
	project := suite.newProject(false)

	suite.mockProjectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), project.ID).Return(project, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleAdmin)
	suite.mockProjectRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	response, err := suite.service.ArchiveProject(suite.ctx, suite.principalID, project.ID)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), response.IsArchived)
}

func (suite *ProjectServiceTestSuite) TestArchiveProjectIsIdempotent() {
	project := suite.newProject(true)
	updatedAt := project.UpdatedAt

	suite.mockProjectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), project.ID).Return(project, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleAdmin)
	suite.mockProjectRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.service.ArchiveProject(suite.ctx, suite.principalID, project.ID)

	require.NoError(suite.T(), err)
	assert.True(suite.T(), response.IsArchived)
	assert.Equal(suite.T(), updatedAt, project.UpdatedAt)
}

func (suite *ProjectServiceTestSuite) TestUnarchiveProjectIsIdempotent() {
	project := suite.newProject(false)

	suite.mockProjectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), project.ID).Return(project, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleMember)
	suite.mockProjectRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	response, err := suite.service.UnarchiveProject(suite.ctx, suite.principalID, project.ID)

	require.NoError(suite.T(), err)
	assert.False(suite.T(), response.IsArchived)
}

func (suite *ProjectServiceTestSuite) TestArchiveProjectViewerForbidden() {
	project := suite.newProject(false)

	suite.mockProjectRepo.EXPECT().GetByIDForUpdate(gomock.Any(), project.ID).Return(project, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleViewer)

	_, err := suite.service.ArchiveProject(suite.ctx, suite.principalID, project.ID)

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *ProjectServiceTestSuite) TestDeleteProject() {
	id := uuid.New()
	suite.mockProjectRepo.EXPECT().
		DeleteAuthorized(gomock.Any(), id, suite.principalID, []models.OrganisationRole{models.RoleOwner, models.RoleAdmin, models.RoleMember}).
		Return(int64(1), nil).
		Times(1)

	assert.NoError(suite.T(), suite.service.DeleteProject(suite.ctx, suite.principalID, id))
}

func (suite *ProjectServiceTestSuite) TestDeleteProjectNotFound() {
	id := uuid.New()
	suite.mockProjectRepo.EXPECT().DeleteAuthorized(gomock.Any(), id, suite.principalID, gomock.Any()).Return(int64(0), nil).Times(1)
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound).Times(1)

	err := suite.service.DeleteProject(suite.ctx, suite.principalID, id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *ProjectServiceTestSuite) TestDeleteProjectForbidden() {
	project := suite.newProject(false)
	suite.mockProjectRepo.EXPECT().DeleteAuthorized(gomock.Any(), project.ID, suite.principalID, gomock.Any()).Return(int64(0), nil).Times(1)
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil).Times(1)

	err := suite.service.DeleteProject(suite.ctx, suite.principalID, project.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotAllowed)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *ProjectServiceTestSuite) TestListProjectsForOrganisation() {
	projects := []models.Project{*suite.newProject(false), *suite.newProject(true)}

	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.org.ID).Return(suite.org, nil).Times(1)
	suite.expectMember(suite.principalID, models.RoleViewer)
	suite.mockProjectRepo.EXPECT().
		List(gomock.Any(), repository.ProjectFilter{OrganisationID: &suite.org.ID}, 10, 0).
		Return(projects, int64(2), nil).
		Times(1)

	response, err := suite.service.ListProjects(suite.ctx, suite.principalID, &suite.org.ID, 0, 10)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), 1, response.Pagination.Page)
	assert.Equal(suite.T(), int64(1), response.Pagination.TotalPages)
}

func (suite *ProjectServiceTestSuite) TestListProjectsAcrossMemberships() {
	suite.mockProjectRepo.EXPECT().
		List(gomock.Any(), repository.ProjectFilter{MemberIdentityID: &suite.principalID}, 1, 2).
		Return(nil, int64(0), nil).
		Times(1)

	response, err := suite.service.ListProjects(suite.ctx, suite.principalID, nil, 3, -4)

	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response.Data)
	assert.Empty(suite.T(), response.Data)
	assert.Equal(suite.T(), int64(0), response.Pagination.Total)
	assert.Equal(suite.T(), 1, response.Pagination.PerPage)
}

func (suite *ProjectServiceTestSuite) TestListProjectsNonMember() {
	suite.mockOrgRepo.EXPECT().GetByID(gomock.Any(), suite.org.ID).Return(suite.org, nil).Times(1)
	suite.mockMemberRepo.EXPECT().GetActiveByIdentity(gomock.Any(), suite.org.ID, suite.principalID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.service.ListProjects(suite.ctx, suite.principalID, &suite.org.ID, 1, 10)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotMember)
}

// TestProjectServiceTestSuite runs the test suite
func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
