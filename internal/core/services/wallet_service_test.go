package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/core/services"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindSystemAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeSystem bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeSystem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock AssetTypeRepository ---
type MockAssetTypeRepository struct {
	mock.Mock
}

func (m *MockAssetTypeRepository) FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error) {
	args := m.Called(ctx, assetTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssetType), args.Error(1)
}

func (m *MockAssetTypeRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetType), args.Error(1)
}

// --- Test Suite ---
type WalletServiceTestSuite struct {
	suite.Suite
	mockWalletRepo    *MockWalletRepository
	mockLedgerRepo    *MockLedgerRepository
	mockAccountRepo   *MockAccountRepository
	mockAssetTypeRepo *MockAssetTypeRepository
	service           portssvc.WalletSvcFacade

	account   *domain.Account
	assetType *domain.AssetType
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockAssetTypeRepo = new(MockAssetTypeRepository)
	suite.service = services.NewWalletService(portsrepo.RepositoryProvider{
		WalletRepo:    suite.mockWalletRepo,
		LedgerRepo:    suite.mockLedgerRepo,
		AccountRepo:   suite.mockAccountRepo,
		AssetTypeRepo: suite.mockAssetTypeRepo,
	})

	suite.account = &domain.Account{
		AccountID: uuid.NewString(),
		Username:  "alice",
		IsActive:  true,
	}
	suite.assetType = &domain.AssetType{
		AssetTypeID: uuid.NewString(),
		Name:        "Credits",
		Symbol:      "CRD",
		IsActive:    true,
	}
}

// --- Test Cases ---

func (suite *WalletServiceTestSuite) TestResolveAccountWallet_Existing() {
	ctx := context.Background()
	wallet := &domain.Wallet{
		WalletID:    uuid.NewString(),
		AccountID:   suite.account.AccountID,
		AssetTypeID: suite.assetType.AssetTypeID,
		Balance:     decimal.NewFromInt(40),
		Version:     2,
		IsActive:    true,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(suite.account, nil).Once()
	suite.mockAssetTypeRepo.On("FindAssetTypeByID", ctx, suite.assetType.AssetTypeID).Return(suite.assetType, nil).Once()
	suite.mockWalletRepo.On("FindWalletByAccountAndAsset", ctx, suite.account.AccountID, suite.assetType.AssetTypeID).
		Return(wallet, nil).Once()

	ref, err := suite.service.ResolveAccountWallet(ctx, suite.account.AccountID, suite.assetType.AssetTypeID)

	suite.Require().NoError(err)
	suite.Equal(wallet.WalletID, ref.WalletID)
	suite.False(ref.System)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "CreateWallet", mock.Anything, mock.Anything)
}

func (suite *WalletServiceTestSuite) TestResolveAccountWallet_CreatesOnFirstUse() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(suite.account, nil).Once()
	suite.mockAssetTypeRepo.On("FindAssetTypeByID", ctx, suite.assetType.AssetTypeID).Return(suite.assetType, nil).Once()
	suite.mockWalletRepo.On("FindWalletByAccountAndAsset", ctx, suite.account.AccountID, suite.assetType.AssetTypeID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockWalletRepo.On("CreateWallet", ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.AccountID == suite.account.AccountID &&
			w.AssetTypeID == suite.assetType.AssetTypeID &&
			w.Balance.IsZero() &&
			w.Version == 1 &&
			w.IsActive
	})).Return(nil).Once()

	ref, err := suite.service.ResolveAccountWallet(ctx, suite.account.AccountID, suite.assetType.AssetTypeID)

	suite.Require().NoError(err)
	suite.NotEmpty(ref.WalletID)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestResolveAccountWallet_LostCreateRaceReusesWinner() {
	ctx := context.Background()
	winner := &domain.Wallet{
		WalletID:    uuid.NewString(),
		AccountID:   suite.account.AccountID,
		AssetTypeID: suite.assetType.AssetTypeID,
		Version:     1,
		IsActive:    true,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(suite.account, nil).Once()
	suite.mockAssetTypeRepo.On("FindAssetTypeByID", ctx, suite.assetType.AssetTypeID).Return(suite.assetType, nil).Once()
	suite.mockWalletRepo.On("FindWalletByAccountAndAsset", ctx, suite.account.AccountID, suite.assetType.AssetTypeID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockWalletRepo.On("CreateWallet", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	suite.mockWalletRepo.On("FindWalletByAccountAndAsset", ctx, suite.account.AccountID, suite.assetType.AssetTypeID).
		Return(winner, nil).Once()

	ref, err := suite.service.ResolveAccountWallet(ctx, suite.account.AccountID, suite.assetType.AssetTypeID)

	suite.Require().NoError(err)
	suite.Equal(winner.WalletID, ref.WalletID)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestResolveAccountWallet_InactiveAccount() {
	ctx := context.Background()
	inactive := &domain.Account{AccountID: suite.account.AccountID, IsActive: false}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(inactive, nil).Once()

	_, err := suite.service.ResolveAccountWallet(ctx, suite.account.AccountID, suite.assetType.AssetTypeID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *WalletServiceTestSuite) TestResolveSystemWallet_MarksSystem() {
	ctx := context.Background()
	systemAccount := &domain.Account{
		AccountID: uuid.NewString(),
		Username:  domain.SystemTreasury,
		IsSystem:  true,
		IsActive:  true,
	}
	wallet := &domain.Wallet{
		WalletID:    uuid.NewString(),
		AccountID:   systemAccount.AccountID,
		AssetTypeID: suite.assetType.AssetTypeID,
		Balance:     decimal.NewFromInt(1000000),
		Version:     1,
		IsActive:    true,
	}

	suite.mockAccountRepo.On("FindSystemAccountByUsername", ctx, domain.SystemTreasury).Return(systemAccount, nil).Once()
	suite.mockAssetTypeRepo.On("FindAssetTypeByID", ctx, suite.assetType.AssetTypeID).Return(suite.assetType, nil).Once()
	suite.mockWalletRepo.On("FindWalletByAccountAndAsset", ctx, systemAccount.AccountID, suite.assetType.AssetTypeID).
		Return(wallet, nil).Once()

	ref, err := suite.service.ResolveSystemWallet(ctx, domain.SystemTreasury, suite.assetType.AssetTypeID)

	suite.Require().NoError(err)
	suite.Equal(wallet.WalletID, ref.WalletID)
	suite.True(ref.System)
}

func (suite *WalletServiceTestSuite) TestGetBalance_NoWalletReportsZero() {
	ctx := context.Background()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.account.AccountID).Return(suite.account, nil).Once()
	suite.mockAssetTypeRepo.On("FindAssetTypeByID", ctx, suite.assetType.AssetTypeID).Return(suite.assetType, nil).Once()
	suite.mockWalletRepo.On("FindWalletByAccountAndAsset", ctx, suite.account.AccountID, suite.assetType.AssetTypeID).
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetBalance(ctx, suite.account.AccountID, suite.assetType.AssetTypeID)

	suite.Require().NoError(err)
	suite.True(resp.Balance.IsZero())
	suite.Equal("alice", resp.Username)
	suite.Equal("CRD", resp.Symbol)
}

func (suite *WalletServiceTestSuite) TestGetBalance_UnknownAccount() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetBalance(ctx, unknownID, suite.assetType.AssetTypeID)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WalletServiceTestSuite) TestGetTransactionHistory_ReturnsPage() {
	ctx := context.Background()
	wallet := &domain.Wallet{
		WalletID:    uuid.NewString(),
		AccountID:   suite.account.AccountID,
		AssetTypeID: suite.assetType.AssetTypeID,
		Balance:     decimal.NewFromInt(70),
		Version:     3,
		IsActive:    true,
	}
	entries := []domain.LedgerEntry{
		{
			EntryID:         uuid.NewString(),
			ReferenceID:     uuid.NewString(),
			TransactionType: domain.Spend,
			WalletID:        wallet.WalletID,
			Amount:          decimal.NewFromInt(-30),
			BalanceAfter:    decimal.NewFromInt(70),
			CreatedAt:       time.Now(),
		},
		{
			EntryID:         uuid.NewString(),
			ReferenceID:     uuid.NewString(),
			TransactionType: domain.TopUp,
			WalletID:        wallet.WalletID,
			Amount:          decimal.NewFromInt(100),
			BalanceAfter:    decimal.NewFromInt(100),
			CreatedAt:       time.Now().Add(-time.Hour),
		},
	}

	suite.mockAssetTypeRepo.On("FindAssetTypeByID", ctx, suite.assetType.AssetTypeID).Return(suite.assetType, nil).Once()
	suite.mockWalletRepo.On("FindWalletByAccountAndAsset", ctx, suite.account.AccountID, suite.assetType.AssetTypeID).
		Return(wallet, nil).Once()
	suite.mockLedgerRepo.On("ListByWallet", ctx, wallet.WalletID, 20, 0).Return(entries, int64(2), nil).Once()

	resp, err := suite.service.GetTransactionHistory(ctx, suite.account.AccountID, suite.assetType.AssetTypeID, 20, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(2), resp.Total)
	suite.Len(resp.Transactions, 2)
	suite.Equal("Credits", resp.AssetType)
	suite.Equal(string(domain.Spend), resp.Transactions[0].TransactionType)
}

func (suite *WalletServiceTestSuite) TestGetTransactionByReference_NotFound() {
	ctx := context.Background()
	referenceID := uuid.NewString()

	suite.mockLedgerRepo.On("FindByReferenceID", ctx, referenceID).
		Return([]domain.LedgerEntry{}, nil).Once()

	entries, err := suite.service.GetTransactionByReference(ctx, referenceID)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WalletServiceTestSuite) TestGetTransactionByReference_ReturnsPair() {
	ctx := context.Background()
	referenceID := uuid.NewString()
	pair := []domain.LedgerEntry{
		{EntryID: uuid.NewString(), ReferenceID: referenceID, Amount: decimal.NewFromInt(-100)},
		{EntryID: uuid.NewString(), ReferenceID: referenceID, Amount: decimal.NewFromInt(100)},
	}

	suite.mockLedgerRepo.On("FindByReferenceID", ctx, referenceID).Return(pair, nil).Once()

	entries, err := suite.service.GetTransactionByReference(ctx, referenceID)

	suite.Require().NoError(err)
	suite.Len(entries, 2)
	suite.True(entries[0].Amount.Add(entries[1].Amount).IsZero())
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
