package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/prashant0321/wallet-service/internal/core/domain"
)

// LedgerRepository is the append-only store of ledger entries. Entries are
// never updated or deleted after insert.
type LedgerRepository interface {
	// AppendEntries inserts the given entries within tx. The coordinator
	// guarantees entries arrive in zero-sum pairs sharing a reference ID.
	AppendEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error

	// ListByWallet returns a newest-first page of a wallet's ledger together
	// with the wallet's total entry count. Read-only.
	ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.LedgerEntry, int64, error)

	// FindByReferenceID returns all entries of one business operation.
	FindByReferenceID(ctx context.Context, referenceID string) ([]domain.LedgerEntry, error)
}
