package dto

import (
	"time"

	"github.com/prashant0321/wallet-service/internal/core/domain"
)

// AccountResponse is the public view of an account.
type AccountResponse struct {
	AccountID string    `json:"accountID"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	IsSystem  bool      `json:"isSystem"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// AssetTypeResponse is the public view of an asset type.
type AssetTypeResponse struct {
	AssetTypeID string `json:"assetTypeID"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}

// ToAccountResponse converts a domain account to its response shape.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		Username:  a.Username,
		Email:     a.Email,
		IsSystem:  a.IsSystem,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

// ToAssetTypeResponse converts a domain asset type to its response shape.
func ToAssetTypeResponse(t domain.AssetType) AssetTypeResponse {
	return AssetTypeResponse{
		AssetTypeID: t.AssetTypeID,
		Name:        t.Name,
		Symbol:      t.Symbol,
		Description: t.Description,
		IsActive:    t.IsActive,
	}
}
