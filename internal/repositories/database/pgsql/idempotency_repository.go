package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	"github.com/prashant0321/wallet-service/internal/models"
	"github.com/prashant0321/wallet-service/internal/utils/mapping"
)

type PgxIdempotencyRepository struct {
	pool *pgxpool.Pool
}

// newPgxIdempotencyRepository creates a new repository for idempotency records.
func newPgxIdempotencyRepository(pool *pgxpool.Pool) portsrepo.IdempotencyRepository {
	return &PgxIdempotencyRepository{pool: pool}
}

var _ portsrepo.IdempotencyRepository = (*PgxIdempotencyRepository)(nil)

// FindByKey returns the live record for key. Expired records are treated as
// absent, which keeps a purge from racing a pending lookup: a record only
// disappears once its expiry has already made it invisible here.
func (r *PgxIdempotencyRepository) FindByKey(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	query := `
		SELECT record_id, key, endpoint, response_body, created_at, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND expires_at > $2;
	`
	var m models.IdempotencyRecord
	err := r.pool.QueryRow(ctx, query, key, time.Now().UTC()).Scan(
		&m.RecordID,
		&m.Key,
		&m.Endpoint,
		&m.ResponseBody,
		&m.CreatedAt,
		&m.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find idempotency record", err)
	}

	record := mapping.ToDomainIdempotencyRecord(m)
	return &record, nil
}

// SaveRecord inserts the record within tx. The unique constraint on key turns
// a concurrent duplicate into ErrDuplicate, which the coordinator uses to
// abort its own mutation and return the winner's response.
func (r *PgxIdempotencyRepository) SaveRecord(ctx context.Context, tx pgx.Tx, record domain.IdempotencyRecord) error {
	query := `
		INSERT INTO idempotency_keys (record_id, key, endpoint, response_body, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query,
		record.RecordID,
		record.Key,
		record.Endpoint,
		record.ResponseBody,
		record.CreatedAt,
		record.ExpiresAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: idempotency key already recorded", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save idempotency record", err)
	}
	return nil
}

// PurgeExpired deletes records whose expiry lies strictly before now.
func (r *PgxIdempotencyRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `DELETE FROM idempotency_keys WHERE expires_at < $1;`
	cmdTag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to purge expired idempotency records", err)
	}
	return cmdTag.RowsAffected(), nil
}
