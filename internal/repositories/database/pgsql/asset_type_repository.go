package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	"github.com/prashant0321/wallet-service/internal/models"
	"github.com/prashant0321/wallet-service/internal/utils/mapping"
)

type PgxAssetTypeRepository struct {
	pool *pgxpool.Pool
}

func newPgxAssetTypeRepository(pool *pgxpool.Pool) portsrepo.AssetTypeRepository {
	return &PgxAssetTypeRepository{pool: pool}
}

var _ portsrepo.AssetTypeRepository = (*PgxAssetTypeRepository)(nil)

const assetTypeColumns = `asset_type_id, name, symbol, description, is_active, created_at`

func scanAssetTypeRow(row pgx.Row) (*domain.AssetType, error) {
	var m models.AssetType
	var description sql.NullString
	err := row.Scan(
		&m.AssetTypeID,
		&m.Name,
		&m.Symbol,
		&description,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan asset type row", err)
	}
	if description.Valid {
		m.Description = description.String
	}
	assetType := mapping.ToDomainAssetType(m)
	return &assetType, nil
}

// FindAssetTypeByID retrieves an asset type by its ID.
func (r *PgxAssetTypeRepository) FindAssetTypeByID(ctx context.Context, assetTypeID string) (*domain.AssetType, error) {
	query := `SELECT ` + assetTypeColumns + ` FROM asset_types WHERE asset_type_id = $1;`
	assetType, err := scanAssetTypeRow(r.pool.QueryRow(ctx, query, assetTypeID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("asset type " + assetTypeID + " not found")
		}
		return nil, err
	}
	return assetType, nil
}

// ListAssetTypes retrieves all active asset types.
func (r *PgxAssetTypeRepository) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	query := `SELECT ` + assetTypeColumns + ` FROM asset_types WHERE is_active = TRUE ORDER BY name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query asset types", err)
	}
	defer rows.Close()

	assetTypes := []domain.AssetType{}
	for rows.Next() {
		assetType, err := scanAssetTypeRow(rows)
		if err != nil {
			return nil, err
		}
		assetTypes = append(assetTypes, *assetType)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating asset type rows", err)
	}
	return assetTypes, nil
}
