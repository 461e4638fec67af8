package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/prashant0321/wallet-service/internal/apperrors"
	"github.com/prashant0321/wallet-service/internal/core/domain"
	portsrepo "github.com/prashant0321/wallet-service/internal/core/ports/repositories"
	portssvc "github.com/prashant0321/wallet-service/internal/core/ports/services"
	"github.com/prashant0321/wallet-service/internal/dto"
	"github.com/prashant0321/wallet-service/internal/middleware"
)

// Endpoint names under which idempotency keys are scoped. Reusing a key
// against a different endpoint is a client error, never a replay.
const (
	endpointTopUp      = "top_up"
	endpointIssueBonus = "issue_bonus"
	endpointSpend      = "spend"
)

// transferService is the transaction coordinator. Every operation runs as
// one database transaction: lock both wallets in domain.LockOrder order,
// validate funds, apply both deltas, append the zero-sum ledger pair and
// persist the idempotency record. Either all of it commits or none of it.
type transferService struct {
	walletRepo      portsrepo.WalletRepository
	ledgerRepo      portsrepo.LedgerRepository
	idempotencyRepo portsrepo.IdempotencyRepository
	txManager       portsrepo.TxManager
	idempotencyTTL  time.Duration
}

// NewTransferService creates a new TransferService.
func NewTransferService(repos portsrepo.RepositoryProvider, idempotencyTTL time.Duration) portssvc.TransferSvcFacade {
	return &transferService{
		walletRepo:      repos.WalletRepo,
		ledgerRepo:      repos.LedgerRepo,
		idempotencyRepo: repos.IdempotencyRepo,
		txManager:       repos.TxManager,
		idempotencyTTL:  idempotencyTTL,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// TopUp moves cmd.Amount from the treasury wallet to a user wallet.
func (s *transferService) TopUp(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error) {
	return s.execute(ctx, endpointTopUp, domain.TopUp, cmd)
}

// IssueBonus moves cmd.Amount from the bonus pool wallet to a user wallet.
func (s *transferService) IssueBonus(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error) {
	return s.execute(ctx, endpointIssueBonus, domain.Bonus, cmd)
}

// Spend moves cmd.Amount from a user wallet to the revenue wallet.
func (s *transferService) Spend(ctx context.Context, cmd dto.TransferCommand) (*dto.TransactionResponse, error) {
	return s.execute(ctx, endpointSpend, domain.Spend, cmd)
}

// execute runs one wallet-to-wallet movement end to end. The flow is:
// validate the command, replay a cached response if the idempotency key was
// seen, otherwise lock both wallets in canonical order inside a single
// transaction, move the funds, append the ledger pair and cache the response
// under the key. Losing an idempotency race aborts the whole transaction and
// returns the winner's committed response instead.
func (s *transferService) execute(ctx context.Context, endpoint string, txType domain.TransactionType, cmd dto.TransferCommand) (*dto.TransactionResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !cmd.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidAmount, cmd.Amount.String())
	}
	if cmd.Source.WalletID == cmd.Destination.WalletID {
		return nil, fmt.Errorf("%w: source and destination wallet must differ", apperrors.ErrValidation)
	}

	if cmd.IdempotencyKey != "" {
		cached, err := s.findCachedResponse(ctx, endpoint, cmd.IdempotencyKey)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if cached != nil {
			logger.Info("Replaying cached response for idempotency key",
				"endpoint", endpoint, "referenceID", cached.ReferenceID)
			return cached, nil
		}
	}

	metadata, err := marshalMetadata(cmd.Metadata)
	if err != nil {
		return nil, fmt.Errorf("%w: metadata is not serializable", apperrors.ErrValidation)
	}
	description := cmd.Description
	if description == "" {
		description = defaultDescription(txType)
	}

	var response *dto.TransactionResponse
	err = s.txManager.WithTx(ctx, func(tx pgx.Tx) error {
		first, second := domain.LockOrder(cmd.Source, cmd.Destination)

		firstWallet, err := s.walletRepo.LockWalletForUpdate(ctx, tx, first.WalletID)
		if err != nil {
			return err
		}
		secondWallet, err := s.walletRepo.LockWalletForUpdate(ctx, tx, second.WalletID)
		if err != nil {
			return err
		}

		sourceWallet, destWallet := firstWallet, secondWallet
		if sourceWallet.WalletID != cmd.Source.WalletID {
			sourceWallet, destWallet = secondWallet, firstWallet
		}

		if sourceWallet.Balance.LessThan(cmd.Amount) {
			return fmt.Errorf("%w: balance %s is less than amount %s",
				apperrors.ErrInsufficientFunds, sourceWallet.Balance.String(), cmd.Amount.String())
		}

		sourceBalance, err := s.walletRepo.ApplyDelta(ctx, tx, sourceWallet.WalletID, cmd.Amount.Neg(), sourceWallet.Version)
		if err != nil {
			return err
		}
		destBalance, err := s.walletRepo.ApplyDelta(ctx, tx, destWallet.WalletID, cmd.Amount, destWallet.Version)
		if err != nil {
			return err
		}

		now := time.Now()
		referenceID := uuid.New().String()
		entries := []domain.LedgerEntry{
			{
				EntryID:         uuid.New().String(),
				ReferenceID:     referenceID,
				TransactionType: txType,
				WalletID:        sourceWallet.WalletID,
				Amount:          cmd.Amount.Neg(),
				BalanceAfter:    sourceBalance,
				Description:     description,
				IdempotencyKey:  cmd.IdempotencyKey,
				Metadata:        metadata,
				CreatedAt:       now,
			},
			{
				EntryID:         uuid.New().String(),
				ReferenceID:     referenceID,
				TransactionType: txType,
				WalletID:        destWallet.WalletID,
				Amount:          cmd.Amount,
				BalanceAfter:    destBalance,
				Description:     description,
				IdempotencyKey:  cmd.IdempotencyKey,
				Metadata:        metadata,
				CreatedAt:       now,
			},
		}
		if err := s.ledgerRepo.AppendEntries(ctx, tx, entries); err != nil {
			return err
		}

		response = &dto.TransactionResponse{
			ReferenceID:     referenceID,
			TransactionType: string(txType),
			Amount:          cmd.Amount,
			BalanceAfter:    userBalance(cmd, sourceBalance, destBalance),
			Message:         description,
		}

		if cmd.IdempotencyKey != "" {
			body, err := json.Marshal(response)
			if err != nil {
				return apperrors.NewAppError(500, "failed to serialize transaction response", err)
			}
			record := domain.IdempotencyRecord{
				RecordID:     uuid.New().String(),
				Key:          cmd.IdempotencyKey,
				Endpoint:     endpoint,
				ResponseBody: string(body),
				CreatedAt:    now,
				ExpiresAt:    now.Add(s.idempotencyTTL),
			}
			if err := s.idempotencyRepo.SaveRecord(ctx, tx, record); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		// A unique violation on the key means a concurrent request with the
		// same key committed first. Our transaction is fully rolled back, so
		// the only correct answer is the winner's cached response.
		if errors.Is(err, apperrors.ErrDuplicate) && cmd.IdempotencyKey != "" {
			logger.Info("Lost idempotency race, returning committed response",
				"endpoint", endpoint)
			cached, findErr := s.findCachedResponse(ctx, endpoint, cmd.IdempotencyKey)
			if findErr != nil {
				return nil, apperrors.NewAppError(500, "idempotency record vanished after race", findErr)
			}
			return cached, nil
		}
		return nil, err
	}

	logger.Info("Transaction committed",
		"endpoint", endpoint,
		"referenceID", response.ReferenceID,
		"transactionType", string(txType),
		"amount", cmd.Amount.String())
	return response, nil
}

// findCachedResponse looks up the idempotency key and deserializes its cached
// response. A key recorded against a different endpoint is a conflict, not a
// replay. Returns apperrors.ErrNotFound when the key is unseen or expired.
func (s *transferService) findCachedResponse(ctx context.Context, endpoint, key string) (*dto.TransactionResponse, error) {
	record, err := s.idempotencyRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if record.Endpoint != endpoint {
		return nil, fmt.Errorf("%w: key was used for endpoint %s", apperrors.ErrIdempotencyConflict, record.Endpoint)
	}
	var response dto.TransactionResponse
	if err := json.Unmarshal([]byte(record.ResponseBody), &response); err != nil {
		return nil, apperrors.NewAppError(500, "failed to deserialize cached response", err)
	}
	return &response, nil
}

// userBalance picks which post-transaction balance the caller cares about:
// the user side of the movement, never the system wallet's.
func userBalance(cmd dto.TransferCommand, sourceBalance, destBalance decimal.Decimal) decimal.Decimal {
	if cmd.Destination.System && !cmd.Source.System {
		return sourceBalance
	}
	return destBalance
}

func marshalMetadata(metadata map[string]string) (string, error) {
	if len(metadata) == 0 {
		return "", nil
	}
	body, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func defaultDescription(txType domain.TransactionType) string {
	switch txType {
	case domain.TopUp:
		return "Top-up from treasury"
	case domain.Bonus:
		return "Bonus credit from bonus pool"
	case domain.Spend:
		return "Purchase debited to revenue"
	case domain.Refund:
		return "Refund to user wallet"
	default:
		return "Wallet adjustment"
	}
}
