package mapping

import (
	"github.com/prashant0321/wallet-service/internal/core/domain"
	"github.com/prashant0321/wallet-service/internal/models"
)

// ToDomainAccount converts an accounts row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Username:       m.Username,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		IsSystem:       m.IsSystem,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

// ToModelAccount converts a domain account to its row representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Username:       d.Username,
		Email:          d.Email,
		HashedPassword: d.HashedPassword,
		IsSystem:       d.IsSystem,
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainAssetType converts an asset_types row to the domain representation.
func ToDomainAssetType(m models.AssetType) domain.AssetType {
	return domain.AssetType{
		AssetTypeID: m.AssetTypeID,
		Name:        m.Name,
		Symbol:      m.Symbol,
		Description: m.Description,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainIdempotencyRecord converts an idempotency_keys row to the domain representation.
func ToDomainIdempotencyRecord(m models.IdempotencyRecord) domain.IdempotencyRecord {
	return domain.IdempotencyRecord{
		RecordID:     m.RecordID,
		Key:          m.Key,
		Endpoint:     m.Endpoint,
		ResponseBody: m.ResponseBody,
		CreatedAt:    m.CreatedAt,
		ExpiresAt:    m.ExpiresAt,
	}
}
