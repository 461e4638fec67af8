package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxManager runs a function inside one database transaction: commit if fn
// returns nil, full rollback otherwise. It is the atomic unit of the
// transaction coordinator.
type TxManager interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

// RepositoryProvider bundles all repository implementations for injection.
type RepositoryProvider struct {
	WalletRepo      WalletRepository
	LedgerRepo      LedgerRepository
	IdempotencyRepo IdempotencyRepository
	AccountRepo     AccountRepository
	AssetTypeRepo   AssetTypeRepository
	TxManager       TxManager
}
