//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"control-plane-backend/internal/authz"
	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	orgRepo       *OrganisationRepository
	memberRepo    *OrganisationMemberRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	org           *models.Organisation
	owner         *models.OrganisationMember
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganisationRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewOrganisationMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org, suite.owner = suite.factories.OrganisationWithOwner()
	suite.Require().NoError(suite.orgRepo.Create(suite.ctx, suite.org))
	suite.Require().NoError(suite.memberRepo.Create(suite.ctx, suite.owner))
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) createProjects(orgID uuid.UUID, n int, base time.Time) []*models.Project {
	projects := make([]*models.Project, 0, n)
	for i := 0; i < n; i++ {
		p := suite.factories.Project.CreatedAt(orgID, suite.owner.IdentityID, base.Add(time.Duration(i)*time.Second), i)
		suite.Require().NoError(suite.repo.Create(suite.ctx, p))
		projects = append(projects, p)
	}
	return projects
}

func (suite *ProjectRepositoryTestSuite) TestCreateAndGetByID() {
	project := suite.factories.Project.Create(suite.org.ID, suite.owner.IdentityID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, project))

	found, err := suite.repo.GetByID(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.Equal(project.Name, found.Name)
	suite.Equal(suite.org.ID, found.OrganisationID)
	suite.Equal(suite.owner.IdentityID, found.OwnerID)
	suite.False(found.IsArchived)

	_, err = suite.repo.GetByID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProjectRepositoryTestSuite) TestCreateUnknownOrganisation() {
	project := suite.factories.Project.Create(uuid.New(), suite.owner.IdentityID)
	suite.ErrorIs(suite.repo.Create(suite.ctx, project), apperrors.ErrOrganisationNotFound)
}

func (suite *ProjectRepositoryTestSuite) TestUpdate() {
	project := suite.factories.Project.Create(suite.org.ID, suite.owner.IdentityID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, project))

	project.IsArchived = true
	project.Name = "renamed"
	suite.Require().NoError(suite.repo.Update(suite.ctx, project))

	found, err := suite.repo.GetByIDForUpdate(suite.ctx, project.ID)
	suite.Require().NoError(err)
	suite.True(found.IsArchived)
	suite.Equal("renamed", found.Name)
}

func (suite *ProjectRepositoryTestSuite) TestDeleteAuthorized() {
	allowed := authz.RolesAllowed(authz.ActionManageProjects)

	suite.Run("member with allowed role deletes", func() {
		project := suite.factories.Project.Create(suite.org.ID, suite.owner.IdentityID)
		suite.Require().NoError(suite.repo.Create(suite.ctx, project))

		rows, err := suite.repo.DeleteAuthorized(suite.ctx, project.ID, suite.owner.IdentityID, allowed)
		suite.Require().NoError(err)
		suite.Equal(int64(1), rows)

		_, err = suite.repo.GetByID(suite.ctx, project.ID)
		suite.ErrorIs(err, gorm.ErrRecordNotFound)
	})

	suite.Run("viewer cannot delete", func() {
		project := suite.factories.Project.Create(suite.org.ID, suite.owner.IdentityID)
		suite.Require().NoError(suite.repo.Create(suite.ctx, project))
		viewer := suite.factories.Member.WithRole(suite.org.ID, models.RoleViewer)
		suite.Require().NoError(suite.memberRepo.Create(suite.ctx, viewer))

		rows, err := suite.repo.DeleteAuthorized(suite.ctx, project.ID, viewer.IdentityID, allowed)
		suite.Require().NoError(err)
		suite.Zero(rows)

		_, err = suite.repo.GetByID(suite.ctx, project.ID)
		suite.NoError(err)
	})

	suite.Run("removed member cannot delete", func() {
		project := suite.factories.Project.Create(suite.org.ID, suite.owner.IdentityID)
		suite.Require().NoError(suite.repo.Create(suite.ctx, project))
		admin := suite.factories.Member.WithRole(suite.org.ID, models.RoleAdmin)
		admin.IsActive = false
		suite.Require().NoError(suite.memberRepo.Create(suite.ctx, admin))

		rows, err := suite.repo.DeleteAuthorized(suite.ctx, project.ID, admin.IdentityID, allowed)
		suite.Require().NoError(err)
		suite.Zero(rows)
	})

	suite.Run("owner of another organisation cannot delete", func() {
		project := suite.factories.Project.Create(suite.org.ID, suite.owner.IdentityID)
		suite.Require().NoError(suite.repo.Create(suite.ctx, project))
		otherOrg, otherOwner := suite.factories.OrganisationWithOwner()
		suite.Require().NoError(suite.orgRepo.Create(suite.ctx, otherOrg))
		suite.Require().NoError(suite.memberRepo.Create(suite.ctx, otherOwner))

		rows, err := suite.repo.DeleteAuthorized(suite.ctx, project.ID, otherOwner.IdentityID, allowed)
		suite.Require().NoError(err)
		suite.Zero(rows)
	})

	suite.Run("absent project", func() {
		rows, err := suite.repo.DeleteAuthorized(suite.ctx, uuid.New(), suite.owner.IdentityID, allowed)
		suite.Require().NoError(err)
		suite.Zero(rows)
	})

	suite.Run("no roles allowed", func() {
		project := suite.factories.Project.Create(suite.org.ID, suite.owner.IdentityID)
		suite.Require().NoError(suite.repo.Create(suite.ctx, project))

		rows, err := suite.repo.DeleteAuthorized(suite.ctx, project.ID, suite.owner.IdentityID, nil)
		suite.Require().NoError(err)
		suite.Zero(rows)
	})
}

func (suite *ProjectRepositoryTestSuite) TestListByOrganisationPages() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	projects := suite.createProjects(suite.org.ID, 5, base)

	otherOrg := suite.factories.Organisation.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.ctx, otherOrg))
	suite.createProjects(otherOrg.ID, 2, base)

	filter := ProjectFilter{OrganisationID: &suite.org.ID}
	seen := map[uuid.UUID]bool{}
	var ordered []uuid.UUID
	for offset := 0; offset < 6; offset += 2 {
		page, total, err := suite.repo.List(suite.ctx, filter, 2, offset)
		suite.Require().NoError(err)
		suite.Equal(int64(5), total)
		for _, p := range page {
			suite.False(seen[p.ID], "project %s returned twice", p.ID)
			seen[p.ID] = true
			ordered = append(ordered, p.ID)
		}
	}

	// newest first
	suite.Require().Len(ordered, 5)
	for i, id := range ordered {
		suite.Equal(projects[4-i].ID, id)
	}
}

func (suite *ProjectRepositoryTestSuite) TestListTiesBrokenByID() {
	at := time.Now().UTC().Truncate(time.Microsecond)
	for i := 0; i < 4; i++ {
		p := suite.factories.Project.CreatedAt(suite.org.ID, suite.owner.IdentityID, at, i)
		suite.Require().NoError(suite.repo.Create(suite.ctx, p))
	}

	filter := ProjectFilter{OrganisationID: &suite.org.ID}
	first, _, err := suite.repo.List(suite.ctx, filter, 2, 0)
	suite.Require().NoError(err)
	second, _, err := suite.repo.List(suite.ctx, filter, 2, 2)
	suite.Require().NoError(err)

	suite.Require().Len(first, 2)
	suite.Require().Len(second, 2)
	ids := map[uuid.UUID]bool{first[0].ID: true, first[1].ID: true, second[0].ID: true, second[1].ID: true}
	suite.Len(ids, 4)
	suite.Greater(first[0].ID.String(), first[1].ID.String())
	suite.Greater(first[1].ID.String(), second[0].ID.String())
}

func (suite *ProjectRepositoryTestSuite) TestListByMembership() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	suite.createProjects(suite.org.ID, 2, base)

	joined := suite.factories.Organisation.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.ctx, joined))
	suite.Require().NoError(suite.memberRepo.Create(suite.ctx, suite.factories.Member.ForIdentity(joined.ID, suite.owner.IdentityID, models.RoleViewer)))
	suite.createProjects(joined.ID, 1, base)

	left := suite.factories.Organisation.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.ctx, left))
	removed := suite.factories.Member.ForIdentity(left.ID, suite.owner.IdentityID, models.RoleAdmin)
	removed.IsActive = false
	suite.Require().NoError(suite.memberRepo.Create(suite.ctx, removed))
	suite.createProjects(left.ID, 3, base)

	identity := suite.owner.IdentityID
	projects, total, err := suite.repo.List(suite.ctx, ProjectFilter{MemberIdentityID: &identity}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(projects, 3)
	for _, p := range projects {
		suite.NotEqual(left.ID, p.OrganisationID)
	}

	stranger := uuid.New()
	projects, total, err = suite.repo.List(suite.ctx, ProjectFilter{MemberIdentityID: &stranger}, 10, 0)
	suite.Require().NoError(err)
	suite.Zero(total)
	suite.Empty(projects)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
