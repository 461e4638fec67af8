package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the wallets table row: one per (account, asset type) pair.
// balance carries a CHECK (balance >= 0) constraint as a storage-layer
// safety net behind the engine's own pre-write check.
type Wallet struct {
	WalletID    string          `json:"walletID"`
	AccountID   string          `json:"accountID"`
	AssetTypeID string          `json:"assetTypeID"`
	Balance     decimal.Decimal `json:"balance"`
	Version     int64           `json:"version"`
	IsActive    bool            `json:"isActive"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
