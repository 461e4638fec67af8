package services

import (
	"context"

	"github.com/prashant0321/wallet-service/internal/core/domain"
	"github.com/prashant0321/wallet-service/internal/dto"
)

// AccountSvcFacade covers account registration, authentication and listing.
type AccountSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) (*domain.Account, error)
	ListAccounts(ctx context.Context, includeSystem bool) ([]domain.Account, error)
}

// AssetTypeSvcFacade exposes the read-only asset type catalogue.
type AssetTypeSvcFacade interface {
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
}
