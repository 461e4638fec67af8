package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/core/services"
	"github.com/prashant0321/wallet-service/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
}

func (suite *AccountServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		hashOK := bcrypt.CompareHashAndPassword([]byte(a.HashedPassword), []byte(req.Password)) == nil
		return a.Username == req.Username && a.Email == req.Email &&
			!a.IsSystem && a.IsActive && a.AccountID != "" && hashOK
	})).Return(nil).Once()

	account, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(req.Username, account.Username)
	suite.NotEqual(req.Password, account.HashedPassword)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Password: "supersecret",
	})

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	suite.Require().NoError(err)

	stored := &domain.Account{
		AccountID:      "acc-1",
		Username:       "alice",
		HashedPassword: string(hash),
		IsActive:       true,
	}
	suite.mockAccountRepo.On("FindAccountByUsername", ctx, "alice").Return(stored, nil).Once()

	account, err := suite.service.Authenticate(ctx, "alice", "supersecret")

	suite.Require().NoError(err)
	suite.Equal("acc-1", account.AccountID)
}

func (suite *AccountServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	suite.Require().NoError(err)

	stored := &domain.Account{
		Username:       "alice",
		HashedPassword: string(hash),
		IsActive:       true,
	}
	suite.mockAccountRepo.On("FindAccountByUsername", ctx, "alice").Return(stored, nil).Once()

	account, err := suite.service.Authenticate(ctx, "alice", "wrongpassword")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AccountServiceTestSuite) TestAuthenticate_UnknownUsername() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByUsername", ctx, "ghost").
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(account)
	// Unknown usernames are indistinguishable from bad passwords.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AccountServiceTestSuite) TestAuthenticate_SystemAccountRejected() {
	ctx := context.Background()

	stored := &domain.Account{
		Username: domain.SystemTreasury,
		IsSystem: true,
		IsActive: true,
	}
	suite.mockAccountRepo.On("FindAccountByUsername", ctx, domain.SystemTreasury).Return(stored, nil).Once()

	account, err := suite.service.Authenticate(ctx, domain.SystemTreasury, "anything")

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
