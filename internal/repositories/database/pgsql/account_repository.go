package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	"github.com/prashant0321/wallet-service/internal/models"
	"github.com/prashant0321/wallet-service/internal/utils/mapping"
)

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, username, email, hashed_password, is_system, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	var email, hashedPassword sql.NullString
	if m.Email != "" {
		email = sql.NullString{String: m.Email, Valid: true}
	}
	if m.HashedPassword != "" {
		hashedPassword = sql.NullString{String: m.HashedPassword, Valid: true}
	}

	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Username,
		email,
		hashedPassword,
		m.IsSystem,
		m.IsActive,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: username or email already taken", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save account "+m.AccountID, err)
	}
	return nil
}

const accountColumns = `account_id, username, email, hashed_password, is_system, is_active, created_at`

func scanAccountRow(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	var email, hashedPassword sql.NullString
	err := row.Scan(
		&m.AccountID,
		&m.Username,
		&email,
		&hashedPassword,
		&m.IsSystem,
		&m.IsActive,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan account row", err)
	}
	if email.Valid {
		m.Email = email.String
	}
	if hashedPassword.Valid {
		m.HashedPassword = hashedPassword.String
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1;`
	return scanAccountRow(r.pool.QueryRow(ctx, query, accountID))
}

// FindAccountByUsername retrieves an account by its unique username.
func (r *PgxAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1;`
	return scanAccountRow(r.pool.QueryRow(ctx, query, username))
}

// FindSystemAccountByUsername retrieves a system account by its well-known username.
func (r *PgxAccountRepository) FindSystemAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1 AND is_system = TRUE;`
	account, err := scanAccountRow(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("system account " + username + " not found")
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves active accounts, optionally including system accounts.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, includeSystem bool) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE is_active = TRUE`
	if !includeSystem {
		query += ` AND is_system = FALSE`
	}
	query += ` ORDER BY username;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccountRow(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account rows", err)
	}
	return accounts, nil
}
