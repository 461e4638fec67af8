package services

import (
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/pkg/config"
)

// NewServicesProvider creates the service layer with properly initialized
// dependencies.
func NewServicesProvider(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServicesProvider {
	return &portssvc.ServicesProvider{
		TransferSvc:  NewTransferService(repos, cfg.IdempotencyTTL),
		WalletSvc:    NewWalletService(repos),
		AccountSvc:   NewAccountService(repos.AccountRepo),
		AssetTypeSvc: NewAssetTypeService(repos.AssetTypeRepo),
	}
}
