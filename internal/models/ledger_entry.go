package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags the business operation a ledger entry belongs to.
type TransactionType string

const (
	TopUp      TransactionType = "TOPUP"
	Bonus      TransactionType = "BONUS"
	Spend      TransactionType = "SPEND"
	Refund     TransactionType = "REFUND"
	Adjustment TransactionType = "ADJUSTMENT"
)

// LedgerEntry is the ledger_entries table row. Entries are append-only and
// never updated or deleted; amount is signed (positive = credit).
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	ReferenceID     string          `json:"referenceID"`
	TransactionType TransactionType `json:"transactionType"`
	WalletID        string          `json:"walletID"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Description     string          `json:"description"`
	IdempotencyKey  string          `json:"idempotencyKey,omitempty"`
	Metadata        string          `json:"metadata,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}
