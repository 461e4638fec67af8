package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/dto"
	"github.com/prashant0321/wallet-service/internal/middleware"
	"github.com/prashant0321/wallet-service/internal/utils"
)

// accountService covers account registration, authentication and listing.
type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// Register creates a new user account with a bcrypt-hashed password.
func (s *accountService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	account := domain.Account{
		AccountID:      uuid.New().String(),
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		IsSystem:       false,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Registered account",
		"accountID", account.AccountID, "username", account.Username)
	return &account, nil
}

// Authenticate checks the given credentials against the stored account.
// Unknown usernames and bad passwords both surface as ErrUnauthorized so the
// response does not reveal which part was wrong.
func (s *accountService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if account.IsSystem || !account.IsActive {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	if !utils.CheckPasswordHash(password, account.HashedPassword) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	return account, nil
}

// ListAccounts returns active accounts, optionally including system accounts.
func (s *accountService) ListAccounts(ctx context.Context, includeSystem bool) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, includeSystem)
}
