package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	"github.com/prashant0321/wallet-service/internal/models"
	"github.com/prashant0321/wallet-service/internal/utils/mapping"
)

// Postgres error codes surfaced by the wallets table constraints.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

type PgxWalletRepository struct {
	pool *pgxpool.Pool
}

// newPgxWalletRepository creates a new repository for wallet balances.
func newPgxWalletRepository(pool *pgxpool.Pool) portsrepo.WalletRepository {
	return &PgxWalletRepository{pool: pool}
}

var _ portsrepo.WalletRepository = (*PgxWalletRepository)(nil)

// FindWalletByAccountAndAsset resolves a wallet without locking it.
func (r *PgxWalletRepository) FindWalletByAccountAndAsset(ctx context.Context, accountID, assetTypeID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, account_id, asset_type_id, balance, version, is_active, updated_at
		FROM wallets
		WHERE account_id = $1 AND asset_type_id = $2;
	`
	var m models.Wallet
	err := r.pool.QueryRow(ctx, query, accountID, assetTypeID).Scan(
		&m.WalletID,
		&m.AccountID,
		&m.AssetTypeID,
		&m.Balance,
		&m.Version,
		&m.IsActive,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find wallet for account "+accountID, err)
	}

	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// CreateWallet inserts a zero-balance wallet for an (account, asset type)
// pair. The pair carries a unique constraint; losing a concurrent create
// surfaces as ErrDuplicate so the caller can re-read the winner's row.
func (r *PgxWalletRepository) CreateWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)

	query := `
		INSERT INTO wallets (wallet_id, account_id, asset_type_id, balance, version, is_active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		m.WalletID,
		m.AccountID,
		m.AssetTypeID,
		m.Balance,
		m.Version,
		m.IsActive,
		m.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: wallet for account %s and asset %s", apperrors.ErrDuplicate, m.AccountID, m.AssetTypeID)
		}
		return apperrors.NewAppError(500, "failed to create wallet for account "+m.AccountID, err)
	}
	return nil
}

// LockWalletForUpdate acquires the wallet's row lock and returns the current
// snapshot. The call blocks until any other transaction holding the same row
// lock commits or aborts. With two wallets involved, callers must invoke this
// in domain.LockOrder order.
func (r *PgxWalletRepository) LockWalletForUpdate(ctx context.Context, tx pgx.Tx, walletID string) (*domain.Wallet, error) {
	query := `
		SELECT wallet_id, account_id, asset_type_id, balance, version, is_active, updated_at
		FROM wallets
		WHERE wallet_id = $1
		FOR UPDATE;
	`
	var m models.Wallet
	err := tx.QueryRow(ctx, query, walletID).Scan(
		&m.WalletID,
		&m.AccountID,
		&m.AssetTypeID,
		&m.Balance,
		&m.Version,
		&m.IsActive,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock wallet "+walletID, err)
	}

	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// ApplyDelta adds delta to the wallet's balance and bumps the version. The
// version predicate should always match under correct lock discipline; a
// mismatch means external interference and maps to ErrConcurrencyConflict.
// The non-negative invariant is enforced here as well as by the table's
// CHECK constraint, so it holds even on storage engines without one.
func (r *PgxWalletRepository) ApplyDelta(ctx context.Context, tx pgx.Tx, walletID string, delta decimal.Decimal, expectedVersion int64) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $2, version = version + 1, updated_at = $3
		WHERE wallet_id = $1 AND version = $4
		RETURNING balance;
	`
	var newBalance decimal.Decimal
	err := tx.QueryRow(ctx, query, walletID, delta, time.Now().UTC(), expectedVersion).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("%w: wallet %s version %d", apperrors.ErrConcurrencyConflict, walletID, expectedVersion)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			return decimal.Zero, fmt.Errorf("%w: wallet %s", apperrors.ErrInsufficientFunds, walletID)
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to apply balance delta to wallet "+walletID, err)
	}

	if newBalance.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: wallet %s would hold %s", apperrors.ErrInsufficientFunds, walletID, newBalance.String())
	}
	return newBalance, nil
}
