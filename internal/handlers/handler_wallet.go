package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/dto"
	"github.com/prashant0321/wallet-service/internal/middleware"
)

// idempotencyKeyHeader carries the client-chosen key that makes the three
// wallet operations safely retryable.
const idempotencyKeyHeader = "Idempotency-Key"

// walletHandler handles HTTP requests for the wallet operations and views.
type walletHandler struct {
	transferService portssvc.TransferSvcFacade
	walletService   portssvc.WalletSvcFacade
}

// newWalletHandler creates a new walletHandler.
func newWalletHandler(ts portssvc.TransferSvcFacade, ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{
		transferService: ts,
		walletService:   ws,
	}
}

// RegisterWalletRoutes registers routes for wallet operations and views.
func RegisterWalletRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(transferService, walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.POST("/top_up", h.topUp)
		wallets.POST("/issue_bonus", h.issueBonus)
		wallets.POST("/spend", h.spend)
		wallets.GET("/:accountID/:assetTypeID/balance", h.getBalance)
		wallets.GET("/:accountID/:assetTypeID/transactions", h.getTransactionHistory)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("/:referenceID", h.getTransactionByReference)
	}
}

// topUp godoc
// @Summary Top up a user wallet
// @Description Credits a user wallet from the treasury after an external real-money payment.
// @Tags wallets
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client-chosen key making the operation retryable"
// @Param topUp body dto.TopUpRequest true "Top-up details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/top_up [post]
func (h *walletHandler) topUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TopUp", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	destination, err := h.walletService.ResolveAccountWallet(c.Request.Context(), req.AccountID, req.AssetTypeID)
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	source, err := h.walletService.ResolveSystemWallet(c.Request.Context(), domain.SystemTreasury, req.AssetTypeID)
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}

	var metadata map[string]string
	if req.PaymentReference != "" {
		metadata = map[string]string{"paymentReference": req.PaymentReference}
	}

	resp, err := h.transferService.TopUp(c.Request.Context(), dto.TransferCommand{
		Source:         source,
		Destination:    destination,
		Amount:         req.Amount,
		Description:    req.Description,
		Metadata:       metadata,
		IdempotencyKey: c.GetHeader(idempotencyKeyHeader),
	})
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// issueBonus godoc
// @Summary Issue bonus credits
// @Description Grants free credits from the bonus pool to a user wallet.
// @Tags wallets
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client-chosen key making the operation retryable"
// @Param bonus body dto.BonusRequest true "Bonus details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/issue_bonus [post]
func (h *walletHandler) issueBonus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueBonus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	destination, err := h.walletService.ResolveAccountWallet(c.Request.Context(), req.AccountID, req.AssetTypeID)
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	source, err := h.walletService.ResolveSystemWallet(c.Request.Context(), domain.SystemBonusPool, req.AssetTypeID)
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}

	var metadata map[string]string
	if req.Reason != "" {
		metadata = map[string]string{"reason": req.Reason}
	}

	resp, err := h.transferService.IssueBonus(c.Request.Context(), dto.TransferCommand{
		Source:         source,
		Destination:    destination,
		Amount:         req.Amount,
		Description:    req.Description,
		Metadata:       metadata,
		IdempotencyKey: c.GetHeader(idempotencyKeyHeader),
	})
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// spend godoc
// @Summary Spend from a user wallet
// @Description Debits the authenticated user's wallet into the revenue wallet.
// @Tags wallets
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client-chosen key making the operation retryable"
// @Param spend body dto.SpendRequest true "Spend details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 402 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/spend [post]
func (h *walletHandler) spend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Spend", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	// Spending is only allowed from the caller's own wallet.
	callerID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		logger.Error("Account ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if callerID != req.AccountID {
		logger.Warn("Spend attempted against another account's wallet",
			slog.String("target_account_id", req.AccountID))
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot spend from another account's wallet"})
		return
	}

	source, err := h.walletService.ResolveAccountWallet(c.Request.Context(), req.AccountID, req.AssetTypeID)
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	destination, err := h.walletService.ResolveSystemWallet(c.Request.Context(), domain.SystemRevenue, req.AssetTypeID)
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}

	var metadata map[string]string
	if req.ItemReference != "" {
		metadata = map[string]string{"itemReference": req.ItemReference}
	}

	resp, err := h.transferService.Spend(c.Request.Context(), dto.TransferCommand{
		Source:         source,
		Destination:    destination,
		Amount:         req.Amount,
		Description:    req.Description,
		Metadata:       metadata,
		IdempotencyKey: c.GetHeader(idempotencyKeyHeader),
	})
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getBalance godoc
// @Summary Get wallet balance
// @Description Retrieves the balance of one (account, asset type) wallet.
// @Tags wallets
// @Produce json
// @Param accountID path string true "Account ID"
// @Param assetTypeID path string true "Asset Type ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{accountID}/{assetTypeID}/balance [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.walletService.GetBalance(c.Request.Context(), c.Param("accountID"), c.Param("assetTypeID"))
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransactionHistory godoc
// @Summary Get transaction history
// @Description Retrieves a newest-first page of a wallet's ledger entries.
// @Tags wallets
// @Produce json
// @Param accountID path string true "Account ID"
// @Param assetTypeID path string true "Asset Type ID"
// @Param limit query int false "Page size (default 20)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets/{accountID}/{assetTypeID}/transactions [get]
func (h *walletHandler) getTransactionHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := h.walletService.GetTransactionHistory(c.Request.Context(), c.Param("accountID"), c.Param("assetTypeID"), limit, offset)
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransactionByReference godoc
// @Summary Get one transaction by reference
// @Description Retrieves the debit/credit ledger entry pair of one committed operation.
// @Tags wallets
// @Produce json
// @Param referenceID path string true "Reference ID"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{referenceID} [get]
func (h *walletHandler) getTransactionByReference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.walletService.GetTransactionByReference(c.Request.Context(), c.Param("referenceID"))
	if err != nil {
		respondWalletError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// respondWalletError maps service errors of the wallet operations onto HTTP
// responses. Insufficient funds intentionally maps to 402 so clients can
// distinguish it from validation failures.
func respondWalletError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error on wallet operation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		logger.Warn("Insufficient funds", slog.String("error", err.Error()))
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient funds"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Operation forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrIdempotencyConflict):
		logger.Warn("Idempotency key conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Idempotency key already used for a different operation"})
	case errors.Is(err, apperrors.ErrConcurrencyConflict):
		logger.Warn("Concurrency conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": "Concurrent modification detected, please retry"})
	default:
		logger.Error("Wallet operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
