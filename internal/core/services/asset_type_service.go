package services

import (
	"context"

	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
)

type assetTypeService struct {
	assetTypeRepo portsrepo.AssetTypeRepository
}

// NewAssetTypeService creates a new AssetTypeService.
func NewAssetTypeService(assetTypeRepo portsrepo.AssetTypeRepository) portssvc.AssetTypeSvcFacade {
	return &assetTypeService{assetTypeRepo: assetTypeRepo}
}

var _ portssvc.AssetTypeSvcFacade = (*assetTypeService)(nil)

// ListAssetTypes returns the active asset type catalogue.
func (s *assetTypeService) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	return s.assetTypeRepo.ListAssetTypes(ctx)
}
