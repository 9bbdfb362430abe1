package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"banking-ledger/internal/config"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrSelfTransfer      = errors.New("cannot transfer to the same account")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrNegativeTarget    = errors.New("target balance cannot be negative")
	ErrStaleBalance      = errors.New("balance before does not match the stored balance")
	ErrInvalidDateRange  = errors.New("start must not be after end")
)

const (
	maxConflictRetries = 3
	retryBackoff       = 10 * time.Millisecond
)

// RecordRequest describes one ledger record to append. BalanceBefore must be
// the account's current balance and BalanceAfter must equal
// BalanceBefore + Amount.
type RecordRequest struct {
	AccountID      uuid.UUID
	CounterpartyID *uuid.UUID
	Amount         decimal.Decimal
	Type           models.TransactionType
	Description    string
	BalanceBefore  decimal.Decimal
	BalanceAfter   decimal.Decimal
}

// TransferResult holds the committed state of both accounts and both legs.
type TransferResult struct {
	Reference string
	From      models.Account
	To        models.Account
	Sent      models.Transaction
	Received  models.Transaction
}

// LedgerService is the only writer of balances. Every mutation takes the
// per-account locks, applies balance and record in one atomic unit, and
// refreshes the cache before releasing the locks.
type LedgerService struct {
	store        repositories.AccountStoreInterface
	transactions repositories.TransactionRepositoryInterface
	cache        AccountCacheInterface
	locker       *AccountLocker
	economy      *config.EconomyHolder
	breaker      CircuitBreakerInterface
	audit        AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewLedgerService(
	store repositories.AccountStoreInterface,
	transactions repositories.TransactionRepositoryInterface,
	cache AccountCacheInterface,
	locker *AccountLocker,
	economy *config.EconomyHolder,
	breaker CircuitBreakerInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *LedgerService {
	return &LedgerService{
		store:        store,
		transactions: transactions,
		cache:        cache,
		locker:       locker,
		economy:      economy,
		breaker:      breaker,
		audit:        audit,
		metrics:      metrics,
		logger:       logger,
	}
}

// mutation is one single-account balance change. delta computes the signed
// amount from the freshly loaded account; after runs inside the same atomic
// unit once the record has been written.
type mutation struct {
	op           string
	accountID    uuid.UUID
	counterparty *uuid.UUID
	txType       models.TransactionType
	description  string
	code         apperrors.ErrorCode
	delta        func(account *models.Account) (decimal.Decimal, error)
	after        func(ctx context.Context, tx repositories.AccountStoreInterface, account *models.Account) error
}

// RecordTransaction appends a record whose balances the caller computed. The
// account balance moves to BalanceAfter in the same unit so the chain of
// records stays continuous; a stale BalanceBefore is a retriable conflict.
func (s *LedgerService) RecordTransaction(ctx context.Context, req RecordRequest) (*models.Transaction, error) {
	const op = "ledger.record_transaction"

	if !req.Type.IsValid() {
		return nil, apperrors.Validation(op, apperrors.TransactionInvalidType, models.ErrInvalidTransactionType)
	}
	for _, d := range []decimal.Decimal{req.Amount, req.BalanceBefore, req.BalanceAfter} {
		if !models.HasMoneyPrecision(d) {
			return nil, apperrors.Validation(op, apperrors.ValidationPrecision, models.ErrAmountPrecision)
		}
	}
	if !req.BalanceBefore.Add(req.Amount).Equal(req.BalanceAfter) {
		return nil, apperrors.Validation(op, apperrors.TransactionValidationFailed, models.ErrBalanceMismatch)
	}
	if req.BalanceAfter.IsNegative() {
		return nil, apperrors.InsufficientFunds(op, apperrors.TransactionInsufficientFunds, ErrInsufficientFunds)
	}

	return s.apply(ctx, mutation{
		op:           op,
		accountID:    req.AccountID,
		counterparty: req.CounterpartyID,
		txType:       req.Type,
		description:  req.Description,
		code:         apperrors.TransactionInsufficientFunds,
		delta: func(account *models.Account) (decimal.Decimal, error) {
			if !account.Balance.Equal(req.BalanceBefore) {
				return decimal.Zero, apperrors.ConcurrencyConflict(op, fmt.Errorf("%w: stored %s, given %s",
					ErrStaleBalance, account.Balance.StringFixed(models.MoneyScale), req.BalanceBefore.StringFixed(models.MoneyScale)))
			}
			return req.Amount, nil
		},
	})
}

// CreditSingleAccount applies a signed amount to one account
func (s *LedgerService) CreditSingleAccount(ctx context.Context, id uuid.UUID, amount decimal.Decimal, txType models.TransactionType, description string) (*models.Transaction, error) {
	const op = "ledger.credit_single_account"

	if err := validateSigned(op, amount, txType); err != nil {
		return nil, err
	}

	return s.apply(ctx, mutation{
		op:          op,
		accountID:   id,
		txType:      txType,
		description: description,
		code:        apperrors.TransactionInsufficientFunds,
		delta: func(*models.Account) (decimal.Decimal, error) {
			return amount, nil
		},
	})
}

// TransferMoney moves amount between two accounts as one atomic unit.
func (s *LedgerService) TransferMoney(ctx context.Context, fromID, toID uuid.UUID, amount decimal.Decimal, reason string) (*TransferResult, error) {
	return s.transfer(ctx, transferRequest{
		op:           "ledger.transfer_money",
		fromID:       fromID,
		toID:         toID,
		amount:       amount,
		sentType:     models.TransactionTypeTransferSent,
		receivedType: models.TransactionTypeTransferReceived,
		describe: func(from, to *models.Account) (string, string) {
			sent, received := "Transfer to "+to.Name, "Transfer from "+from.Name
			if reason != "" {
				sent, received = sent+": "+reason, received+": "+reason
			}
			return sent, received
		},
	})
}

type transferRequest struct {
	op           string
	fromID       uuid.UUID
	toID         uuid.UUID
	amount       decimal.Decimal
	sentType     models.TransactionType
	receivedType models.TransactionType
	describe     func(from, to *models.Account) (sent, received string)
}

func (s *LedgerService) transfer(ctx context.Context, req transferRequest) (*TransferResult, error) {
	op := req.op
	if err := validatePositive(op, req.amount, apperrors.TransferInvalidAmount); err != nil {
		return nil, err
	}
	if req.fromID == req.toID {
		return nil, apperrors.Validation(op, apperrors.TransferSameAccount, ErrSelfTransfer)
	}

	start := time.Now()
	var result *TransferResult

	err := s.withRetry(ctx, op, func() error {
		return s.guarded(op, func() error {
			unlock := s.locker.Lock(req.fromID, req.toID)
			defer unlock()

			var out TransferResult
			err := s.store.RunAtomic(ctx, func(tx repositories.AccountStoreInterface) error {
				// Row locks follow the same order as the in-process locks.
				loaded := make(map[uuid.UUID]*models.Account, 2)
				for _, id := range orderedIDs([]uuid.UUID{req.fromID, req.toID}) {
					account, err := tx.LoadForUpdate(ctx, id)
					if err != nil {
						return err
					}
					if !account.IsActive {
						return apperrors.Validation(op, apperrors.AccountInactive, fmt.Errorf("%w: %s", ErrAccountInactive, id))
					}
					loaded[id] = account
				}
				from, to := loaded[req.fromID], loaded[req.toID]

				if from.Balance.LessThan(req.amount) {
					return apperrors.InsufficientFunds(op, apperrors.TransferInsufficientFunds, fmt.Errorf("%w: balance %s, requested %s",
						ErrInsufficientFunds, from.Balance.StringFixed(models.MoneyScale), req.amount.StringFixed(models.MoneyScale)))
				}

				reference := models.NewReference()
				sentDesc, receivedDesc := req.describe(from, to)
				fromAfter := from.Balance.Sub(req.amount)
				toAfter := to.Balance.Add(req.amount)

				if err := tx.UpdateBalance(ctx, from.ID, fromAfter); err != nil {
					return err
				}
				if err := tx.UpdateBalance(ctx, to.ID, toAfter); err != nil {
					return err
				}

				toID, fromID := to.ID, from.ID
				sent := &models.Transaction{
					AccountID:      from.ID,
					CounterpartyID: &toID,
					Amount:         req.amount.Neg(),
					Type:           req.sentType,
					Description:    sentDesc,
					Reference:      reference,
					BalanceBefore:  from.Balance,
					BalanceAfter:   fromAfter,
				}
				if err := tx.AppendTransaction(ctx, sent); err != nil {
					return err
				}
				received := &models.Transaction{
					AccountID:      to.ID,
					CounterpartyID: &fromID,
					Amount:         req.amount,
					Type:           req.receivedType,
					Description:    receivedDesc,
					Reference:      reference,
					BalanceBefore:  to.Balance,
					BalanceAfter:   toAfter,
				}
				if err := tx.AppendTransaction(ctx, received); err != nil {
					return err
				}

				now := time.Now().UTC()
				from.Balance, from.UpdatedAt = fromAfter, now
				to.Balance, to.UpdatedAt = toAfter, now
				out = TransferResult{Reference: reference, From: *from, To: *to, Sent: *sent, Received: *received}
				return nil
			})
			if err != nil {
				return err
			}

			s.cache.Refresh(&out.From)
			s.cache.Refresh(&out.To)
			result = &out
			return nil
		})
	})

	elapsed := time.Since(start)
	s.metrics.RecordProcessingTime(MetricTransferDuration, elapsed)
	if err != nil {
		s.metrics.IncrementCounter(MetricTransfers, map[string]string{"status": "failed"})
		s.audit.LogMutationFailed(ctx, op, req.fromID, err)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricTransfers, map[string]string{"status": "success"})
	s.metrics.RecordGauge(MetricTransferAmount, req.amount.InexactFloat64(), nil)
	s.audit.LogTransferCompleted(ctx, result, elapsed)
	return result, nil
}

func (s *LedgerService) apply(ctx context.Context, m mutation) (*models.Transaction, error) {
	start := time.Now()
	var record *models.Transaction

	err := s.withRetry(ctx, m.op, func() error {
		return s.guarded(m.op, func() error {
			unlock := s.locker.Lock(m.accountID)
			defer unlock()

			var (
				written models.Transaction
				updated models.Account
			)
			err := s.store.RunAtomic(ctx, func(tx repositories.AccountStoreInterface) error {
				account, err := tx.LoadForUpdate(ctx, m.accountID)
				if err != nil {
					return err
				}
				if !account.IsActive {
					return apperrors.Validation(m.op, apperrors.AccountInactive, fmt.Errorf("%w: %s", ErrAccountInactive, account.ID))
				}

				amount, err := m.delta(account)
				if err != nil {
					return err
				}
				after := account.Balance.Add(amount)
				if after.IsNegative() {
					return apperrors.InsufficientFunds(m.op, m.code, fmt.Errorf("%w: balance %s, change %s",
						ErrInsufficientFunds, account.Balance.StringFixed(models.MoneyScale), amount.StringFixed(models.MoneyScale)))
				}

				if err := tx.UpdateBalance(ctx, account.ID, after); err != nil {
					return err
				}
				rec := &models.Transaction{
					AccountID:      account.ID,
					CounterpartyID: m.counterparty,
					Amount:         amount,
					Type:           m.txType,
					Description:    m.description,
					BalanceBefore:  account.Balance,
					BalanceAfter:   after,
				}
				if err := tx.AppendTransaction(ctx, rec); err != nil {
					return err
				}

				account.Balance = after
				account.UpdatedAt = time.Now().UTC()
				if m.after != nil {
					if err := m.after(ctx, tx, account); err != nil {
						return err
					}
				}

				written, updated = *rec, *account
				return nil
			})
			if err != nil {
				return err
			}

			s.cache.Refresh(&updated)
			record = &written
			return nil
		})
	})

	s.metrics.RecordProcessingTime(MetricLedgerMutation, time.Since(start))
	if err != nil {
		s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"type": string(m.txType), "status": "failed"})
		s.audit.LogMutationFailed(ctx, m.op, m.accountID, err)
		return nil, err
	}

	s.metrics.IncrementCounter(MetricLedgerMutation, map[string]string{"type": string(m.txType), "status": "success"})
	s.audit.LogBalanceChange(ctx, record)
	return record, nil
}

// guarded fails fast while the breaker is open and feeds it the outcome.
// Only persistence failures count against the store.
func (s *LedgerService) guarded(op string, fn func() error) error {
	if s.breaker.IsOpen() {
		return apperrors.Persistence(op, apperrors.SystemServiceUnavailable, ErrCircuitBreakerOpen)
	}

	err := fn()
	switch apperrors.KindOf(err) {
	case apperrors.KindPersistence:
		s.breaker.RecordFailure()
	case apperrors.KindConcurrencyConflict:
		// says nothing about store health
	default:
		s.breaker.RecordSuccess()
	}
	return err
}

// withRetry repeats fn after a concurrency conflict. Every attempt starts
// from scratch, so a retried mutation re-reads its accounts.
func (s *LedgerService) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		if attempt > 0 {
			s.metrics.IncrementCounter(MetricLedgerRetry, map[string]string{"operation": op})
			s.logger.WarnContext(ctx, "retrying after concurrency conflict",
				"operation", op,
				"attempt", attempt,
				"error", err,
			)

			select {
			case <-ctx.Done():
				return apperrors.Persistence(op, apperrors.SystemStoreTimeout, ctx.Err())
			case <-time.After(time.Duration(attempt) * retryBackoff):
			}
		}

		err = fn()
		if apperrors.KindOf(err) != apperrors.KindConcurrencyConflict {
			return err
		}
	}
	return err
}

func validatePositive(op string, amount decimal.Decimal, code apperrors.ErrorCode) error {
	if !models.HasMoneyPrecision(amount) {
		return apperrors.Validation(op, apperrors.ValidationPrecision, models.ErrAmountPrecision)
	}
	if !amount.IsPositive() {
		return apperrors.Validation(op, code, ErrNonPositiveAmount)
	}
	return nil
}

func validateSigned(op string, amount decimal.Decimal, txType models.TransactionType) error {
	if !txType.IsValid() {
		return apperrors.Validation(op, apperrors.TransactionInvalidType, models.ErrInvalidTransactionType)
	}
	if !models.HasMoneyPrecision(amount) {
		return apperrors.Validation(op, apperrors.ValidationPrecision, models.ErrAmountPrecision)
	}
	if amount.IsZero() {
		return apperrors.Validation(op, apperrors.TransactionInvalidAmount, models.ErrZeroAmount)
	}
	if dir := txType.Direction(); (dir > 0 && amount.IsNegative()) || (dir < 0 && amount.IsPositive()) {
		return apperrors.Validation(op, apperrors.TransactionInvalidAmount, models.ErrAmountDirection)
	}
	return nil
}
