package domain

import "time"

// AssetType defines one virtual currency (e.g. Gold Coins, Diamonds).
// Immutable after creation except for deactivation; the transaction engine
// only ever reads it.
type AssetType struct {
	AssetTypeID string    `json:"assetTypeID"` // Primary Key (UUID)
	Name        string    `json:"name"`        // Unique symbolic name
	Symbol      string    `json:"symbol"`      // Unique short code, e.g. "GC"
	Description string    `json:"description"` // Nullable
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
