package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/dto"
	"github.com/prashant0321/wallet-service/internal/handlers"
	"github.com/prashant0321/wallet-service/internal/middleware"
)

// --- Mock TransferService ---
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) TopUp(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResponse), args.Error(1)
}

func (m *MockTransferService) IssueBonus(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResponse), args.Error(1)
}

func (m *MockTransferService) Spend(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionResponse), args.Error(1)
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) ResolveAccountWallet(ctx context.Context, accountID, assetTypeID string) (domain.WalletRef, error) {
	args := m.Called(ctx, accountID, assetTypeID)
	return args.Get(0).(domain.WalletRef), args.Error(1)
}

func (m *MockWalletService) ResolveSystemWallet(ctx context.Context, username, assetTypeID string) (domain.WalletRef, error) {
	args := m.Called(ctx, username, assetTypeID)
	return args.Get(0).(domain.WalletRef), args.Error(1)
}

func (m *MockWalletService) GetBalance(ctx context.Context, accountID, assetTypeID string) (*dto.BalanceResponse, error) {
	args := m.Called(ctx, accountID, assetTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceResponse), args.Error(1)
}

func (m *MockWalletService) GetTransactionHistory(ctx context.Context, accountID, assetTypeID string, limit, offset int) (*dto.TransactionListResponse, error) {
	args := m.Called(ctx, accountID, assetTypeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TransactionListResponse), args.Error(1)
}

func (m *MockWalletService) GetTransactionByReference(ctx context.Context, referenceID string) ([]dto.LedgerEntryResponse, error) {
	args := m.Called(ctx, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.LedgerEntryResponse), args.Error(1)
}

var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Test Suite ---
type WalletHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockTransferService *MockTransferService
	mockWalletService   *MockWalletService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *WalletHandlerTestSuite) generateTestToken(accountID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "wallet-test",
		Subject:   accountID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockTransferService = new(MockTransferService)
	suite.mockWalletService = new(MockWalletService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterWalletRoutes(v1, suite.mockTransferService, suite.mockWalletService)
}

func (suite *WalletHandlerTestSuite) doJSON(method, url, token, idempotencyKey string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *WalletHandlerTestSuite) TestTopUp_Success() {
	accountID := uuid.NewString()
	assetTypeID := uuid.NewString()
	callerID := uuid.NewString()
	idempotencyKey := uuid.NewString()

	userRef := domain.WalletRef{WalletID: uuid.NewString()}
	treasuryRef := domain.WalletRef{WalletID: uuid.NewString(), System: true}

	suite.mockWalletService.On("ResolveAccountWallet", mock.Anything, accountID, assetTypeID).
		Return(userRef, nil).Once()
	suite.mockWalletService.On("ResolveSystemWallet", mock.Anything, domain.SystemTreasury, assetTypeID).
		Return(treasuryRef, nil).Once()

	expected := &dto.TransactionResponse{
		ReferenceID:     uuid.NewString(),
		TransactionType: string(domain.TopUp),
		Amount:          decimal.NewFromInt(100),
		BalanceAfter:    decimal.NewFromInt(150),
	}
	suite.mockTransferService.On("TopUp", mock.Anything, mock.MatchedBy(func(cmd dto.TransferCommand) bool {
		return cmd.Source == treasuryRef &&
			cmd.Destination == userRef &&
			cmd.Amount.Equal(decimal.NewFromInt(100)) &&
			cmd.IdempotencyKey == idempotencyKey &&
			cmd.Metadata["paymentReference"] == "pay_123"
	})).Return(expected, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/wallets/top_up", suite.generateTestToken(callerID), idempotencyKey, dto.TopUpRequest{
		AccountID:        accountID,
		AssetTypeID:      assetTypeID,
		Amount:           decimal.NewFromInt(100),
		PaymentReference: "pay_123",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.ReferenceID, resp.ReferenceID)
	suite.True(resp.BalanceAfter.Equal(expected.BalanceAfter))
	suite.mockTransferService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) TestTopUp_Unauthorized() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/wallets/top_up", bytes.NewBufferString("{}"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTransferService.AssertNotCalled(suite.T(), "TopUp", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestSpend_OwnWalletOnly() {
	callerID := uuid.NewString()
	otherAccountID := uuid.NewString()

	w := suite.doJSON(http.MethodPost, "/api/v1/wallets/spend", suite.generateTestToken(callerID), "", dto.SpendRequest{
		AccountID:   otherAccountID,
		AssetTypeID: uuid.NewString(),
		Amount:      decimal.NewFromInt(10),
	})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTransferService.AssertNotCalled(suite.T(), "Spend", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestSpend_InsufficientFundsMaps402() {
	callerID := uuid.NewString()
	assetTypeID := uuid.NewString()

	userRef := domain.WalletRef{WalletID: uuid.NewString()}
	revenueRef := domain.WalletRef{WalletID: uuid.NewString(), System: true}

	suite.mockWalletService.On("ResolveAccountWallet", mock.Anything, callerID, assetTypeID).
		Return(userRef, nil).Once()
	suite.mockWalletService.On("ResolveSystemWallet", mock.Anything, domain.SystemRevenue, assetTypeID).
		Return(revenueRef, nil).Once()
	suite.mockTransferService.On("Spend", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: balance too low", apperrors.ErrInsufficientFunds)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/wallets/spend", suite.generateTestToken(callerID), "", dto.SpendRequest{
		AccountID:   callerID,
		AssetTypeID: assetTypeID,
		Amount:      decimal.NewFromInt(9999),
	})

	suite.Equal(http.StatusPaymentRequired, w.Code)
}

func (suite *WalletHandlerTestSuite) TestIssueBonus_IdempotencyConflictMaps409() {
	callerID := uuid.NewString()
	accountID := uuid.NewString()
	assetTypeID := uuid.NewString()

	userRef := domain.WalletRef{WalletID: uuid.NewString()}
	bonusRef := domain.WalletRef{WalletID: uuid.NewString(), System: true}

	suite.mockWalletService.On("ResolveAccountWallet", mock.Anything, accountID, assetTypeID).
		Return(userRef, nil).Once()
	suite.mockWalletService.On("ResolveSystemWallet", mock.Anything, domain.SystemBonusPool, assetTypeID).
		Return(bonusRef, nil).Once()
	suite.mockTransferService.On("IssueBonus", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: key was used for endpoint top_up", apperrors.ErrIdempotencyConflict)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/wallets/issue_bonus", suite.generateTestToken(callerID), uuid.NewString(), dto.BonusRequest{
		AccountID:   accountID,
		AssetTypeID: assetTypeID,
		Amount:      decimal.NewFromInt(25),
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *WalletHandlerTestSuite) TestTopUp_MissingAmountRejected() {
	callerID := uuid.NewString()

	w := suite.doJSON(http.MethodPost, "/api/v1/wallets/top_up", suite.generateTestToken(callerID), "", map[string]string{
		"accountID":   uuid.NewString(),
		"assetTypeID": uuid.NewString(),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTransferService.AssertNotCalled(suite.T(), "TopUp", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestGetBalance_Success() {
	callerID := uuid.NewString()
	accountID := uuid.NewString()
	assetTypeID := uuid.NewString()

	expected := &dto.BalanceResponse{
		AccountID: accountID,
		Username:  "alice",
		AssetType: "Credits",
		Symbol:    "CRD",
		Balance:   decimal.NewFromInt(70),
	}
	suite.mockWalletService.On("GetBalance", mock.Anything, accountID, assetTypeID).
		Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/wallets/%s/%s/balance", accountID, assetTypeID)
	w := suite.doJSON(http.MethodGet, url, suite.generateTestToken(callerID), "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Balance.Equal(decimal.NewFromInt(70)))
	suite.Equal("alice", resp.Username)
}

func (suite *WalletHandlerTestSuite) TestGetTransactionHistory_PassesPaging() {
	callerID := uuid.NewString()
	accountID := uuid.NewString()
	assetTypeID := uuid.NewString()

	expected := &dto.TransactionListResponse{
		AccountID:    accountID,
		AssetType:    "Credits",
		Transactions: []dto.LedgerEntryResponse{},
		Total:        0,
	}
	suite.mockWalletService.On("GetTransactionHistory", mock.Anything, accountID, assetTypeID, 5, 10).
		Return(expected, nil).Once()

	url := fmt.Sprintf("/api/v1/wallets/%s/%s/transactions?limit=5&offset=10", accountID, assetTypeID)
	w := suite.doJSON(http.MethodGet, url, suite.generateTestToken(callerID), "", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockWalletService.AssertExpectations(suite.T())
}

func TestWalletHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}
