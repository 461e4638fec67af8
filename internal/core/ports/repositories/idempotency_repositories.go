package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/prashant0321/wallet-service/internal/core/domain"
)

// IdempotencyRepository stores one response per idempotency key. The key
// carries a unique constraint; the insert is part of the same transaction as
// the mutation it caches, which is what makes a key race safe.
type IdempotencyRepository interface {
	// FindByKey returns the record for key, or apperrors.ErrNotFound. It does
	// not lock: absence does not prove no other operation is mid-flight.
	FindByKey(ctx context.Context, key string) (*domain.IdempotencyRecord, error)

	// SaveRecord inserts the record within tx. A unique violation on the key
	// surfaces as apperrors.ErrDuplicate so the coordinator can abort and
	// return the winner's cached response instead.
	SaveRecord(ctx context.Context, tx pgx.Tx, record domain.IdempotencyRecord) error

	// PurgeExpired deletes records whose expiry lies strictly before now and
	// returns how many were removed. Live keys are never touched.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
