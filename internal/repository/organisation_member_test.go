//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganisationMemberRepositoryTestSuite tests the OrganisationMemberRepository
type OrganisationMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganisationMemberRepository
	orgRepo       *OrganisationRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	org           *models.Organisation
}

// SetupSuite runs before all tests in the suite
func (suite *OrganisationMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganisationMemberRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganisationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganisationMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganisationMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.org = suite.factories.Organisation.Create()
	suite.Require().NoError(suite.orgRepo.Create(suite.ctx, suite.org))
}

// TearDownTest runs after each test
func (suite *OrganisationMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *OrganisationMemberRepositoryTestSuite) TestCreateAndGet() {
	member := suite.factories.Member.WithRole(suite.org.ID, models.RoleAdmin)
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))

	byID, err := suite.repo.GetByID(suite.ctx, member.ID)
	suite.Require().NoError(err)
	suite.Equal(models.RoleAdmin, byID.Role)
	suite.Equal(member.IdentityID, byID.IdentityID)

	byIdentity, err := suite.repo.GetByIdentity(suite.ctx, suite.org.ID, member.IdentityID)
	suite.Require().NoError(err)
	suite.Equal(member.ID, byIdentity.ID)
}

func (suite *OrganisationMemberRepositoryTestSuite) TestCreateDuplicateIdentity() {
	identity := uuid.New()
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Member.ForIdentity(suite.org.ID, identity, models.RoleViewer)))

	err := suite.repo.Create(suite.ctx, suite.factories.Member.ForIdentity(suite.org.ID, identity, models.RoleAdmin))
	suite.Require().Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
	suite.ErrorIs(err, apperrors.ErrMembershipExists)
}

func (suite *OrganisationMemberRepositoryTestSuite) TestCreateUnknownOrganisation() {
	err := suite.repo.Create(suite.ctx, suite.factories.Member.Create(uuid.New()))
	suite.ErrorIs(err, apperrors.ErrOrganisationNotFound)
}

func (suite *OrganisationMemberRepositoryTestSuite) TestCreateInvalidRole() {
	member := suite.factories.Member.WithRole(suite.org.ID, models.OrganisationRole("superuser"))

	err := suite.repo.Create(suite.ctx, member)
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *OrganisationMemberRepositoryTestSuite) TestGetActiveByIdentity() {
	member := suite.factories.Member.Create(suite.org.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))

	found, err := suite.repo.GetActiveByIdentity(suite.ctx, suite.org.ID, member.IdentityID)
	suite.Require().NoError(err)
	suite.Equal(member.ID, found.ID)

	member.IsActive = false
	suite.Require().NoError(suite.repo.Update(suite.ctx, member))

	_, err = suite.repo.GetActiveByIdentity(suite.ctx, suite.org.ID, member.IdentityID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// the soft-removed row is still addressable
	stale, err := suite.repo.GetByIdentity(suite.ctx, suite.org.ID, member.IdentityID)
	suite.Require().NoError(err)
	suite.False(stale.IsActive)
}

func (suite *OrganisationMemberRepositoryTestSuite) TestCountActiveOwners() {
	count, err := suite.repo.CountActiveOwners(suite.ctx, suite.org.ID)
	suite.Require().NoError(err)
	suite.Zero(count)

	first := suite.factories.Member.WithRole(suite.org.ID, models.RoleOwner)
	second := suite.factories.Member.WithRole(suite.org.ID, models.RoleOwner)
	removed := suite.factories.Member.WithRole(suite.org.ID, models.RoleOwner)
	removed.IsActive = false
	admin := suite.factories.Member.WithRole(suite.org.ID, models.RoleAdmin)
	for _, m := range []*models.OrganisationMember{first, second, removed, admin} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, m))
	}

	count, err = suite.repo.CountActiveOwners(suite.ctx, suite.org.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *OrganisationMemberRepositoryTestSuite) TestListActiveByOrganisation() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		m := suite.factories.Member.Create(suite.org.ID)
		m.JoinedAt = base.Add(time.Duration(i) * time.Minute)
		suite.Require().NoError(suite.repo.Create(suite.ctx, m))
		ids = append(ids, m.ID)
	}
	removed := suite.factories.Member.Create(suite.org.ID)
	removed.IsActive = false
	suite.Require().NoError(suite.repo.Create(suite.ctx, removed))

	page, total, err := suite.repo.ListActiveByOrganisation(suite.ctx, suite.org.ID, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Require().Len(page, 2)
	suite.Equal(ids[0], page[0].ID)
	suite.Equal(ids[1], page[1].ID)

	last, total, err := suite.repo.ListActiveByOrganisation(suite.ctx, suite.org.ID, 2, 4)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)
	suite.Require().Len(last, 1)
	suite.Equal(ids[4], last[0].ID)

	beyond, _, err := suite.repo.ListActiveByOrganisation(suite.ctx, suite.org.ID, 2, 10)
	suite.NoError(err)
	suite.Empty(beyond)
}

// TestOrganisationMemberRepositoryTestSuite runs the test suite
func TestOrganisationMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganisationMemberRepositoryTestSuite))
}
