package models

import "time"

// AssetType is the asset_types table row.
type AssetType struct {
	AssetTypeID string    `json:"assetTypeID"`
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}
