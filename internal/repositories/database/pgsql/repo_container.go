package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	walletRepo := newPgxWalletRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	idempotencyRepo := newPgxIdempotencyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	assetTypeRepo := newPgxAssetTypeRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WalletRepo:      walletRepo,
		LedgerRepo:      ledgerRepo,
		IdempotencyRepo: idempotencyRepo,
		AccountRepo:     accountRepo,
		AssetTypeRepo:   assetTypeRepo,
		TxManager:       &BaseRepository{Pool: dbPool},
	}
}
