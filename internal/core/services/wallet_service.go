package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/dto"
	"github.com/prashant0321/wallet-service/internal/middleware"
)

// walletService resolves (account, asset type) pairs to wallets and serves
// the read-only balance and history views. None of it takes row locks.
type walletService struct {
	walletRepo    portsrepo.WalletRepository
	ledgerRepo    portsrepo.LedgerRepository
	accountRepo   portsrepo.AccountRepository
	assetTypeRepo portsrepo.AssetTypeRepository
}

// NewWalletService creates a new WalletService.
func NewWalletService(repos portsrepo.RepositoryProvider) portssvc.WalletSvcFacade {
	return &walletService{
		walletRepo:    repos.WalletRepo,
		ledgerRepo:    repos.LedgerRepo,
		accountRepo:   repos.AccountRepo,
		assetTypeRepo: repos.AssetTypeRepo,
	}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

// ResolveAccountWallet maps an active (account, asset type) pair to the
// wallet's resolved identity. A missing wallet is created on first use with
// a zero balance, so new users can receive credits without a setup step.
func (s *walletService) ResolveAccountWallet(ctx context.Context, accountID, assetTypeID string) (domain.WalletRef, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.WalletRef{}, apperrors.NewNotFoundError("account " + accountID + " not found")
		}
		return domain.WalletRef{}, err
	}
	if !account.IsActive {
		return domain.WalletRef{}, fmt.Errorf("%w: account %s is deactivated", apperrors.ErrForbidden, accountID)
	}

	wallet, err := s.ensureWallet(ctx, account.AccountID, assetTypeID)
	if err != nil {
		return domain.WalletRef{}, err
	}
	return domain.WalletRef{WalletID: wallet.WalletID, System: account.IsSystem}, nil
}

// ResolveSystemWallet maps a well-known system account username plus an asset
// type to the system wallet's identity, creating the wallet on first use.
func (s *walletService) ResolveSystemWallet(ctx context.Context, username, assetTypeID string) (domain.WalletRef, error) {
	account, err := s.accountRepo.FindSystemAccountByUsername(ctx, username)
	if err != nil {
		return domain.WalletRef{}, err
	}

	wallet, err := s.ensureWallet(ctx, account.AccountID, assetTypeID)
	if err != nil {
		return domain.WalletRef{}, err
	}
	return domain.WalletRef{WalletID: wallet.WalletID, System: true}, nil
}

// ensureWallet returns the wallet for the pair, creating it with a zero
// balance if absent. Losing a concurrent create is resolved by re-reading
// the winner's row.
func (s *walletService) ensureWallet(ctx context.Context, accountID, assetTypeID string) (*domain.Wallet, error) {
	assetType, err := s.assetTypeRepo.FindAssetTypeByID(ctx, assetTypeID)
	if err != nil {
		return nil, err
	}
	if !assetType.IsActive {
		return nil, fmt.Errorf("%w: asset type %s is deactivated", apperrors.ErrForbidden, assetTypeID)
	}

	wallet, err := s.walletRepo.FindWalletByAccountAndAsset(ctx, accountID, assetTypeID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	newWallet := domain.Wallet{
		WalletID:    uuid.New().String(),
		AccountID:   accountID,
		AssetTypeID: assetTypeID,
		Balance:     decimal.Zero,
		Version:     1,
		IsActive:    true,
		UpdatedAt:   time.Now(),
	}
	if err := s.walletRepo.CreateWallet(ctx, newWallet); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return s.walletRepo.FindWalletByAccountAndAsset(ctx, accountID, assetTypeID)
		}
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Created wallet",
		"walletID", newWallet.WalletID, "accountID", accountID, "assetTypeID", assetTypeID)
	return &newWallet, nil
}

// GetBalance returns the read-only balance view of one wallet.
func (s *walletService) GetBalance(ctx context.Context, accountID, assetTypeID string) (*dto.BalanceResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
		}
		return nil, err
	}
	assetType, err := s.assetTypeRepo.FindAssetTypeByID(ctx, assetTypeID)
	if err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.FindWalletByAccountAndAsset(ctx, accountID, assetTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No wallet yet means nothing has moved: report a zero balance.
			return &dto.BalanceResponse{
				AccountID: account.AccountID,
				Username:  account.Username,
				AssetType: assetType.Name,
				Symbol:    assetType.Symbol,
				Balance:   decimal.Zero,
			}, nil
		}
		return nil, err
	}

	return &dto.BalanceResponse{
		AccountID: account.AccountID,
		Username:  account.Username,
		AssetType: assetType.Name,
		Symbol:    assetType.Symbol,
		Balance:   wallet.Balance,
		UpdatedAt: wallet.UpdatedAt,
	}, nil
}

// GetTransactionHistory returns a newest-first page of the wallet's ledger.
func (s *walletService) GetTransactionHistory(ctx context.Context, accountID, assetTypeID string, limit, offset int) (*dto.TransactionListResponse, error) {
	assetType, err := s.assetTypeRepo.FindAssetTypeByID(ctx, assetTypeID)
	if err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.FindWalletByAccountAndAsset(ctx, accountID, assetTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &dto.TransactionListResponse{
				AccountID:    accountID,
				AssetType:    assetType.Name,
				Transactions: []dto.LedgerEntryResponse{},
				Total:        0,
			}, nil
		}
		return nil, err
	}

	entries, total, err := s.ledgerRepo.ListByWallet(ctx, wallet.WalletID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.TransactionListResponse{
		AccountID:    accountID,
		AssetType:    assetType.Name,
		Transactions: dto.ToLedgerEntryResponses(entries),
		Total:        total,
	}, nil
}

// GetTransactionByReference returns both ledger entries of one committed
// operation. An unknown reference maps to ErrNotFound.
func (s *walletService) GetTransactionByReference(ctx context.Context, referenceID string) ([]dto.LedgerEntryResponse, error) {
	entries, err := s.ledgerRepo.FindByReferenceID(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.NewNotFoundError("transaction " + referenceID + " not found")
	}
	return dto.ToLedgerEntryResponses(entries), nil
}
