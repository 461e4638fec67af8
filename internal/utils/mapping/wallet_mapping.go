package mapping

import (
	"github.com/prashant0321/wallet-service/internal/core/domain"
	"github.com/prashant0321/wallet-service/internal/models"
)

// ToDomainWallet converts a wallets row to the domain representation.
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:    m.WalletID,
		AccountID:   m.AccountID,
		AssetTypeID: m.AssetTypeID,
		Balance:     m.Balance,
		Version:     m.Version,
		IsActive:    m.IsActive,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToModelWallet converts a domain wallet to its row representation.
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:    d.WalletID,
		AccountID:   d.AccountID,
		AssetTypeID: d.AssetTypeID,
		Balance:     d.Balance,
		Version:     d.Version,
		IsActive:    d.IsActive,
		UpdatedAt:   d.UpdatedAt,
	}
}
