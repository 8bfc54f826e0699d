//go:build integration
// +build integration

package service_test

import (
	"context"
	"sync"
	"testing"

	"control-plane-backend/internal/database/models"
	apperrors "control-plane-backend/internal/errors"
	"control-plane-backend/internal/repository"
	"control-plane-backend/internal/service"
	"control-plane-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// OwnerConcurrencyTestSuite races owner changes against a real database
type OwnerConcurrencyTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	memberRepo    *repository.OrganisationMemberRepository
	service       *service.OrganisationService
	ctx           context.Context
}

func (suite *OwnerConcurrencyTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	db := suite.baseTestSuite.DB

	suite.memberRepo = repository.NewOrganisationMemberRepository(db)
	suite.service = service.NewOrganisationService(
		repository.NewTransactionManager(db),
		repository.NewOrganisationRepository(db),
		suite.memberRepo,
		service.NewValidator(),
	)
	suite.ctx = context.Background()
}

func (suite *OwnerConcurrencyTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *OwnerConcurrencyTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *OwnerConcurrencyTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// twoOwners creates an organisation owned by two identities
func (suite *OwnerConcurrencyTestSuite) twoOwners() (orgID uuid.UUID, first, second *service.OrganisationMemberResponse) {
	founder := uuid.New()
	created, err := suite.service.CreateOrganisation(suite.ctx, founder, &service.CreateOrganisationRequest{Name: "Acme"})
	suite.Require().NoError(err)

	orgID = created.Organisation.ID
	second, err = suite.service.InviteMember(suite.ctx, founder, orgID, &service.InviteMemberRequest{
		IdentityID: uuid.New(),
		Role:       models.RoleOwner,
	})
	suite.Require().NoError(err)

	first = &created.OrganisationMember
	return orgID, first, second
}

func (suite *OwnerConcurrencyTestSuite) race(ops ...func() error) []error {
	start := make(chan struct{})
	errs := make([]error, len(ops))

	var wg sync.WaitGroup
	for i, op := range ops {
		wg.Add(1)
		go func(i int, op func() error) {
			defer wg.Done()
			<-start
			errs[i] = op()
		}(i, op)
	}
	close(start)
	wg.Wait()
	return errs
}

func (suite *OwnerConcurrencyTestSuite) assertExactlyOneLastOwnerFailure(orgID uuid.UUID, errs []error) {
	failures := 0
	for _, err := range errs {
		if err == nil {
			continue
		}
		suite.ErrorIs(err, apperrors.ErrCannotRemoveLastOwner)
		failures++
	}
	suite.Equal(1, failures)

	owners, err := suite.memberRepo.CountActiveOwners(suite.ctx, orgID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), owners)
}

func (suite *OwnerConcurrencyTestSuite) TestConcurrentSelfDemotions() {
	orgID, first, second := suite.twoOwners()

	demote := func(member *service.OrganisationMemberResponse) func() error {
		return func() error {
			_, err := suite.service.ChangeRole(suite.ctx, member.IdentityID, orgID, member.ID, &service.ChangeRoleRequest{Role: models.RoleAdmin})
			return err
		}
	}

	errs := suite.race(demote(first), demote(second))
	suite.assertExactlyOneLastOwnerFailure(orgID, errs)
}

func (suite *OwnerConcurrencyTestSuite) TestConcurrentOwnersLeaving() {
	orgID, first, second := suite.twoOwners()

	leave := func(member *service.OrganisationMemberResponse) func() error {
		return func() error {
			return suite.service.RemoveMember(suite.ctx, member.IdentityID, orgID, member.ID)
		}
	}

	errs := suite.race(leave(first), leave(second))
	suite.assertExactlyOneLastOwnerFailure(orgID, errs)
}

func TestOwnerConcurrencyTestSuite(t *testing.T) {
	suite.Run(t, new(OwnerConcurrencyTestSuite))
}
