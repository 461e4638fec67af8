package repositories

import (
	"context"

	"github.com/prashant0321/wallet-service/internal/core/domain"
)

// AccountRepository reads and creates accounts. The transaction engine only
// reads; account creation happens through the auth endpoints.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	// FindSystemAccountByUsername returns the system account with the given
	// well-known username (domain.SystemTreasury etc.).
	FindSystemAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	ListAccounts(ctx context.Context, includeSystem bool) ([]domain.Account, error)
}

// AssetTypeRepository reads asset types; they are provisioned by migrations
// and read-only to the engine.
type AssetTypeRepository interface {
	FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error)
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
}
