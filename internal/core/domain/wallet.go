package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds the balance of one (account, asset type) pair.
// Invariant: Balance >= 0 at all times. Version increases by one on every
// committed mutation and serializes concurrent writers as a defensive check
// on top of the row lock.
type Wallet struct {
	WalletID    string          `json:"walletID"` // Primary Key (UUID)
	AccountID   string          `json:"accountID"`
	AssetTypeID string          `json:"assetTypeID"`
	Balance     decimal.Decimal `json:"balance"`
	Version     int64           `json:"version"`
	IsActive    bool            `json:"isActive"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// WalletRef is the resolved identity of a wallet as supplied by the request
// layer: enough to lock it in the right order without re-reading the account.
type WalletRef struct {
	WalletID string
	System   bool // wallet belongs to a system account
}
