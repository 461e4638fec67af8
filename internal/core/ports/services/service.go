package services

// ServicesProvider bundles all service facades for injection into handlers.
type ServicesProvider struct {
	TransferSvc  TransferSvcFacade
	WalletSvc    WalletSvcFacade
	AccountSvc   AccountSvcFacade
	AssetTypeSvc AssetTypeSvcFacade
}
