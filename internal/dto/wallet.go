package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/prashant0321/wallet-service/internal/core/domain"
)

// TopUpRequest credits a user wallet from the treasury. The real-money
// payment is assumed to have been processed externally; PaymentReference
// links back to it.
type TopUpRequest struct {
	AccountID        string          `json:"accountID" binding:"required,uuid"`
	AssetTypeID      string          `json:"assetTypeID" binding:"required,uuid"`
	Amount           decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	Description      string          `json:"description,omitempty"`
}

// BonusRequest grants free credits from the bonus pool to a user wallet.
type BonusRequest struct {
	AccountID   string          `json:"accountID" binding:"required,uuid"`
	AssetTypeID string          `json:"assetTypeID" binding:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	Reason      string          `json:"reason,omitempty"`
	Description string          `json:"description,omitempty"`
}

// SpendRequest debits a user wallet into the revenue wallet.
type SpendRequest struct {
	AccountID     string          `json:"accountID" binding:"required,uuid"`
	AssetTypeID   string          `json:"assetTypeID" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	ItemReference string          `json:"itemReference,omitempty"`
	Description   string          `json:"description,omitempty"`
}

// TransactionResponse is the success payload of the three wallet operations.
// It is also the exact payload cached under the idempotency key, so a replay
// returns it byte-for-byte.
type TransactionResponse struct {
	ReferenceID     string          `json:"referenceID"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Message         string          `json:"message,omitempty"`
}

// BalanceResponse is the read-only balance view of one wallet.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Username  string          `json:"username"`
	AssetType string          `json:"assetType"`
	Symbol    string          `json:"symbol"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// LedgerEntryResponse is one ledger line in a transaction history page.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	ReferenceID     string          `json:"referenceID"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// TransactionListResponse is a newest-first page of a wallet's ledger.
type TransactionListResponse struct {
	AccountID    string                `json:"accountID"`
	AssetType    string                `json:"assetType"`
	Transactions []LedgerEntryResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

// ToLedgerEntryResponses converts domain ledger entries to their response shape.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = LedgerEntryResponse{
			EntryID:         e.EntryID,
			ReferenceID:     e.ReferenceID,
			TransactionType: string(e.TransactionType),
			Amount:          e.Amount,
			BalanceAfter:    e.BalanceAfter,
			Description:     e.Description,
			CreatedAt:       e.CreatedAt,
		}
	}
	return out
}
