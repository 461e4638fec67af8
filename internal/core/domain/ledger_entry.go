package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags the business operation a ledger entry belongs to.
type TransactionType string

const (
	TopUp      TransactionType = "TOPUP"      // real money -> virtual credits via treasury
	Bonus      TransactionType = "BONUS"      // free credits from the bonus pool
	Spend      TransactionType = "SPEND"      // credits spent into the revenue wallet
	Refund     TransactionType = "REFUND"     // credits returned to a user
	Adjustment TransactionType = "ADJUSTMENT" // admin correction
)

// LedgerEntry is one immutable, append-only movement record against a single
// wallet. Amount is signed: positive = credit, negative = debit. The two
// entries of one business operation share a ReferenceID and sum to zero.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`     // Primary Key (UUID)
	ReferenceID     string          `json:"referenceID"` // Groups the debit/credit pair
	TransactionType TransactionType `json:"transactionType"`
	WalletID        string          `json:"walletID"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceAfter    decimal.Decimal `json:"balanceAfter"`
	Description     string          `json:"description"`
	IdempotencyKey  string          `json:"idempotencyKey,omitempty"`
	Metadata        string          `json:"metadata,omitempty"` // JSON string for extra data
	CreatedAt       time.Time       `json:"createdAt"`
}
