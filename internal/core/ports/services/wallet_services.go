package services

import (
	"context"

	"github.com/prashant0321/wallet-service/internal/core/domain"
	"github.com/prashant0321/wallet-service/internal/dto"
)

// TransferSvcFacade is the transaction coordinator: each method executes one
// business operation as a single atomic unit with idempotent replay.
type TransferSvcFacade interface {
	// TopUp moves cmd.Amount from the treasury wallet (source) to a user
	// wallet (destination).
	TopUp(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error)
	// IssueBonus moves cmd.Amount from the bonus pool wallet to a user wallet.
	IssueBonus(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error)
	// Spend moves cmd.Amount from a user wallet to the revenue wallet.
	Spend(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error)
}

// WalletSvcFacade covers wallet resolution and the read-only views. All of it
// is outside the concurrency-critical path.
type WalletSvcFacade interface {
	// ResolveAccountWallet maps an active (account, asset type) pair to the
	// wallet's resolved identity, validating that both sides are active.
	ResolveAccountWallet(ctx context.Context, accountID, assetTypeID string) (domain.WalletRef, error)
	// ResolveSystemWallet maps a well-known system account username plus an
	// asset type to the system wallet's resolved identity.
	ResolveSystemWallet(ctx context.Context, username, assetTypeID string) (domain.WalletRef, error)
	GetBalance(ctx context.Context, accountID, assetTypeID string) (*dto.BalanceResponse, error)
	GetTransactionHistory(ctx context.Context, accountID, assetTypeID string, limit, offset int) (*dto.TransactionListResponse, error)
	// GetTransactionByReference returns the ledger entry pair of one
	// committed business operation.
	GetTransactionByReference(ctx context.Context, referenceID string) ([]dto.LedgerEntryResponse, error)
}
