package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/prashant0321/wallet-service/internal/core/domain"
)

// WalletRepository is the balance store: durable (account, asset type)
// balances with a version counter, and the unit of pessimistic locking.
type WalletRepository interface {
	// FindWalletByAccountAndAsset resolves a wallet outside any lock; used by
	// the request layer and the read-only balance endpoints.
	FindWalletByAccountAndAsset(ctx context.Context, accountID, assetTypeID string) (*domain.Wallet, error)

	// CreateWallet inserts a zero-balance wallet. A concurrent create of the
	// same (account, asset type) pair surfaces as apperrors.ErrDuplicate;
	// callers re-read and use the existing wallet.
	CreateWallet(ctx context.Context, wallet domain.Wallet) error

	// LockWalletForUpdate acquires the wallet's row lock (SELECT ... FOR
	// UPDATE) and returns the current snapshot. Callers touching two wallets
	// must lock them strictly in domain.LockOrder order.
	LockWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID string) (*domain.Wallet, error)

	// ApplyDelta adds delta (signed) to the wallet's balance and bumps its
	// version, returning the new balance. Fails with
	// apperrors.ErrConcurrencyConflict if expectedVersion no longer matches
	// and with apperrors.ErrInsufficientFunds if the result would be negative.
	// Only visible once the enclosing transaction commits.
	ApplyDelta(ctx context.Context, tx pgx.Tx, walletID string, delta decimal.Decimal, expectedVersion int64) (decimal.Decimal, error)
}
