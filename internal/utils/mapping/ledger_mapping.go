package mapping

import (
	"github.com/prashant0321/wallet-service/internal/core/domain"
	"github.com/prashant0321/wallet-service/internal/models"
)

// ToDomainLedgerEntry converts a ledger_entries row to the domain representation.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		ReferenceID:     m.ReferenceID,
		TransactionType: domain.TransactionType(m.TransactionType),
		WalletID:        m.WalletID,
		Amount:          m.Amount,
		BalanceAfter:    m.BalanceAfter,
		Description:     m.Description,
		IdempotencyKey:  m.IdempotencyKey,
		Metadata:        m.Metadata,
		CreatedAt:       m.CreatedAt,
	}
}

// ToModelLedgerEntry converts a domain ledger entry to its row representation.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		ReferenceID:     d.ReferenceID,
		TransactionType: models.TransactionType(d.TransactionType),
		WalletID:        d.WalletID,
		Amount:          d.Amount,
		BalanceAfter:    d.BalanceAfter,
		Description:     d.Description,
		IdempotencyKey:  d.IdempotencyKey,
		Metadata:        d.Metadata,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of rows to domain entries.
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
