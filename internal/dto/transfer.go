package dto

import (
	"github.com/shopspring/decimal"

	"github.com/prashant0321/wallet-service/internal/core/domain"
)

// TransferCommand is the operation descriptor handed to the transaction
// coordinator: resolved wallet identities, a positive amount, a description
// and an optional idempotency key. The request layer resolves wallets before
// building one of these.
type TransferCommand struct {
	Source         domain.WalletRef
	Destination    domain.WalletRef
	Amount         decimal.Decimal
	Description    string
	Metadata       map[string]string
	IdempotencyKey string
}
