package pgsql

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	"github.com/prashant0321/wallet-service/internal/models"
	"github.com/prashant0321/wallet-service/internal/utils/mapping"
)

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// newPgxLedgerRepository creates a new repository for the append-only ledger.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{pool: pool}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// AppendEntries inserts the given entries within tx as one batch. There is no
// update path: rows in ledger_entries are immutable once committed.
func (r *PgxLedgerRepository) AppendEntries(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO ledger_entries (entry_id, reference_id, transaction_type, wallet_id, amount, balance_after, description, idempotency_key, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)

		var idemKey, metadata sql.NullString
		if m.IdempotencyKey != "" {
			idemKey = sql.NullString{String: m.IdempotencyKey, Valid: true}
		}
		if m.Metadata != "" {
			metadata = sql.NullString{String: m.Metadata, Valid: true}
		}

		batch.Queue(query,
			m.EntryID,
			m.ReferenceID,
			m.TransactionType,
			m.WalletID,
			m.Amount,
			m.BalanceAfter,
			m.Description,
			idemKey,
			metadata,
			m.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to append ledger entries for reference "+entries[0].ReferenceID, err)
	}
	return nil
}

// ListByWallet returns a newest-first page of the wallet's ledger plus the
// total entry count for that wallet.
func (r *PgxLedgerRepository) ListByWallet(ctx context.Context, walletID string, limit, offset int) ([]domain.LedgerEntry, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM ledger_entries WHERE wallet_id = $1;`
	if err := r.pool.QueryRow(ctx, countQuery, walletID).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count ledger entries for wallet "+walletID, err)
	}

	query := `
		SELECT entry_id, reference_id, transaction_type, wallet_id, amount, balance_after, description, idempotency_key, metadata, created_at
		FROM ledger_entries
		WHERE wallet_id = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query ledger entries for wallet "+walletID, err)
	}
	defer rows.Close()

	entries, err := scanLedgerEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// FindByReferenceID returns all entries of one business operation, oldest first.
func (r *PgxLedgerRepository) FindByReferenceID(ctx context.Context, referenceID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, reference_id, transaction_type, wallet_id, amount, balance_after, description, idempotency_key, metadata, created_at
		FROM ledger_entries
		WHERE reference_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := r.pool.Query(ctx, query, referenceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for reference "+referenceID, err)
	}
	defer rows.Close()

	return scanLedgerEntries(rows)
}

func scanLedgerEntries(rows pgx.Rows) ([]domain.LedgerEntry, error) {
	entries := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		var idemKey, metadata sql.NullString
		err := rows.Scan(
			&m.EntryID,
			&m.ReferenceID,
			&m.TransactionType,
			&m.WalletID,
			&m.Amount,
			&m.BalanceAfter,
			&m.Description,
			&idemKey,
			&metadata,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		if idemKey.Valid {
			m.IdempotencyKey = idemKey.String
		}
		if metadata.Valid {
			m.Metadata = metadata.String
		}
		entries = append(entries, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}
