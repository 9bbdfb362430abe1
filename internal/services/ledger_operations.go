package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// businessNamespace scopes the identities of business accounts. A business
// account is an ordinary account whose id is derived from the business name.
var businessNamespace = uuid.MustParse("6f1c1b52-3d1e-4c4e-9a53-2f0e4b8c7a10")

// BusinessAccountID returns the deterministic account id of a business.
func BusinessAccountID(business string) uuid.UUID {
	return uuid.NewSHA1(businessNamespace, []byte(strings.ToLower(strings.TrimSpace(business))))
}

func (s *LedgerService) Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if err := validatePositive("ledger.deposit", amount, apperrors.TransactionInvalidAmount); err != nil {
		return nil, err
	}
	return s.CreditSingleAccount(ctx, id, amount, models.TransactionTypeDeposit, orDefault(description, "Deposit"))
}

func (s *LedgerService) Withdraw(ctx context.Context, id uuid.UUID, amount decimal.Decimal, description string) (*models.Transaction, error) {
	if err := validatePositive("ledger.withdraw", amount, apperrors.TransactionInvalidAmount); err != nil {
		return nil, err
	}
	return s.CreditSingleAccount(ctx, id, amount.Neg(), models.TransactionTypeWithdrawal, orDefault(description, "Withdrawal"))
}

// AdminSet moves the balance to target and records the difference
func (s *LedgerService) AdminSet(ctx context.Context, id uuid.UUID, target decimal.Decimal) (*models.Transaction, error) {
	const op = "ledger.admin_set"

	if !models.HasMoneyPrecision(target) {
		return nil, apperrors.Validation(op, apperrors.ValidationPrecision, models.ErrAmountPrecision)
	}
	if target.IsNegative() {
		return nil, apperrors.Validation(op, apperrors.TransactionInvalidAmount, ErrNegativeTarget)
	}

	return s.apply(ctx, mutation{
		op:          op,
		accountID:   id,
		txType:      models.TransactionTypeAdminSet,
		description: "Balance set to " + s.FormatAmount(target),
		code:        apperrors.TransactionInsufficientFunds,
		delta: func(account *models.Account) (decimal.Decimal, error) {
			return target.Sub(account.Balance), nil
		},
	})
}

func (s *LedgerService) AdminGive(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Transaction, error) {
	if err := validatePositive("ledger.admin_give", amount, apperrors.TransactionInvalidAmount); err != nil {
		return nil, err
	}
	return s.CreditSingleAccount(ctx, id, amount, models.TransactionTypeAdminGive, "Administrator credit")
}

// AdminTake removes up to amount; the balance stops at zero rather than
// rejecting the request.
func (s *LedgerService) AdminTake(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Transaction, error) {
	const op = "ledger.admin_take"

	if err := validatePositive(op, amount, apperrors.TransactionInvalidAmount); err != nil {
		return nil, err
	}

	return s.apply(ctx, mutation{
		op:          op,
		accountID:   id,
		txType:      models.TransactionTypeAdminTake,
		description: "Administrator debit",
		code:        apperrors.TransactionInsufficientFunds,
		delta: func(account *models.Account) (decimal.Decimal, error) {
			if account.Balance.IsZero() {
				return decimal.Zero, apperrors.InsufficientFunds(op, apperrors.TransactionInsufficientFunds, ErrInsufficientFunds)
			}
			return decimal.Min(amount, account.Balance).Neg(), nil
		},
	})
}

// BusinessPayment pays a business, creating its account with a zero balance
// on first use.
func (s *LedgerService) BusinessPayment(ctx context.Context, fromID uuid.UUID, business string, amount decimal.Decimal) (*TransferResult, error) {
	const op = "ledger.business_payment"

	business = strings.TrimSpace(business)
	if business == "" {
		return nil, apperrors.Validation(op, apperrors.AccountInvalidName, models.ErrAccountNameRequired)
	}
	if err := validatePositive(op, amount, apperrors.TransferInvalidAmount); err != nil {
		return nil, err
	}

	businessID := BusinessAccountID(business)
	if err := s.ensureBusinessAccount(ctx, businessID, business); err != nil {
		return nil, err
	}

	return s.transfer(ctx, transferRequest{
		op:           op,
		fromID:       fromID,
		toID:         businessID,
		amount:       amount,
		sentType:     models.TransactionTypeBusinessPayment,
		receivedType: models.TransactionTypeBusinessPayment,
		describe: func(from, to *models.Account) (string, string) {
			return "Payment to " + to.Name, "Payment from " + from.Name
		},
	})
}

func (s *LedgerService) ensureBusinessAccount(ctx context.Context, id uuid.UUID, name string) error {
	_, err := s.cache.Get(ctx, id)
	if err == nil || !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	account := models.NewAccount(id, name, decimal.Zero, time.Now().UTC())
	if err := s.store.Create(ctx, account); err != nil && !errors.Is(err, repositories.ErrAccountExists) {
		return err
	}
	return nil
}

func (s *LedgerService) StockPurchase(ctx context.Context, id uuid.UUID, symbol string, amount decimal.Decimal) (*models.Transaction, error) {
	if err := validatePositive("ledger.stock_purchase", amount, apperrors.TransactionInvalidAmount); err != nil {
		return nil, err
	}
	return s.CreditSingleAccount(ctx, id, amount.Neg(), models.TransactionTypeStockPurchase, "Bought shares of "+strings.ToUpper(symbol))
}

func (s *LedgerService) StockSale(ctx context.Context, id uuid.UUID, symbol string, amount decimal.Decimal) (*models.Transaction, error) {
	if err := validatePositive("ledger.stock_sale", amount, apperrors.TransactionInvalidAmount); err != nil {
		return nil, err
	}
	return s.CreditSingleAccount(ctx, id, amount, models.TransactionTypeStockSale, "Sold shares of "+strings.ToUpper(symbol))
}

func (s *LedgerService) Dividend(ctx context.Context, id uuid.UUID, symbol string, amount decimal.Decimal) (*models.Transaction, error) {
	if err := validatePositive("ledger.dividend", amount, apperrors.TransactionInvalidAmount); err != nil {
		return nil, err
	}
	return s.CreditSingleAccount(ctx, id, amount, models.TransactionTypeDividend, "Dividend from "+strings.ToUpper(symbol))
}

// InterestFunc computes the interest owed to a freshly loaded account. It
// runs inside the atomic unit, so its answer always matches the balance it
// is applied to.
type InterestFunc func(account models.Account) (decimal.Decimal, error)

// CreditInterest pays the interest computed by calc and advances the
// account's payout clock in the same atomic unit.
func (s *LedgerService) CreditInterest(ctx context.Context, id uuid.UUID, calc InterestFunc, paidAt time.Time) (*models.Transaction, error) {
	const op = "ledger.credit_interest"

	paidAt = paidAt.UTC()
	return s.apply(ctx, mutation{
		op:          op,
		accountID:   id,
		txType:      models.TransactionTypeInterest,
		description: "Interest payout",
		code:        apperrors.TransactionInsufficientFunds,
		delta: func(account *models.Account) (decimal.Decimal, error) {
			amount, err := calc(*account)
			if err != nil {
				return decimal.Zero, err
			}
			if err := validatePositive(op, amount, apperrors.TransactionInvalidAmount); err != nil {
				return decimal.Zero, err
			}
			return amount, nil
		},
		after: func(ctx context.Context, tx repositories.AccountStoreInterface, account *models.Account) error {
			if err := tx.UpdateLastInterestPayout(ctx, account.ID, paidAt); err != nil {
				return err
			}
			account.LastInterestPayout = paidAt
			return nil
		},
	})
}

func (s *LedgerService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, "ledger.deactivate", id, false)
}

func (s *LedgerService) Reactivate(ctx context.Context, id uuid.UUID) error {
	return s.setActive(ctx, "ledger.reactivate", id, true)
}

func (s *LedgerService) setActive(ctx context.Context, op string, id uuid.UUID, active bool) error {
	err := s.guarded(op, func() error {
		unlock := s.locker.Lock(id)
		defer unlock()

		if err := s.store.SetActive(ctx, id, active); err != nil {
			return err
		}
		account, err := s.store.Load(ctx, id)
		if err != nil {
			return err
		}
		s.cache.Refresh(account)
		return nil
	})
	if err != nil {
		s.audit.LogMutationFailed(ctx, op, id, err)
		return err
	}

	s.audit.LogAccountStatusChange(ctx, id, active)
	return nil
}

// FindByName resolves a display name to an active account
func (s *LedgerService) FindByName(ctx context.Context, name string) (*models.Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("ledger.find_by_name", apperrors.AccountInvalidName, models.ErrAccountNameRequired)
	}
	return s.store.FindByName(ctx, name)
}

// FindByAccountNumber resolves an XXX-XXX-XXX-XXX number to an active account
func (s *LedgerService) FindByAccountNumber(ctx context.Context, number string) (*models.Account, error) {
	return s.store.FindByAccountNumber(ctx, strings.TrimSpace(number))
}

func (s *LedgerService) History(ctx context.Context, id uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	return s.transactions.History(ctx, id, offset, limit)
}

func (s *LedgerService) HistoryByType(ctx context.Context, id uuid.UUID, txType models.TransactionType, offset, limit int) ([]models.Transaction, int64, error) {
	if !txType.IsValid() {
		return nil, 0, apperrors.Validation("ledger.history_by_type", apperrors.TransactionInvalidType, models.ErrInvalidTransactionType)
	}
	return s.transactions.ByType(ctx, id, txType, offset, limit)
}

func (s *LedgerService) HistoryBetween(ctx context.Context, id uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	if start.After(end) {
		return nil, apperrors.Validation("ledger.history_between", apperrors.ValidationOutOfRange, ErrInvalidDateRange)
	}
	return s.transactions.BetweenDates(ctx, id, start, end)
}

func (s *LedgerService) TotalVolume(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	return s.transactions.TotalVolume(ctx, &id)
}

// TopByBalance returns the leaderboard. Store failures degrade to an empty
// list.
func (s *LedgerService) TopByBalance(ctx context.Context, limit int) []models.Account {
	accounts, err := s.store.TopByBalance(ctx, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "leaderboard query failed",
			"limit", limit,
			"error", err,
		)
		return []models.Account{}
	}
	return accounts
}

func (s *LedgerService) TotalMoney(ctx context.Context) (decimal.Decimal, error) {
	return s.store.SumActiveBalances(ctx)
}

// ServerStats gathers the economy-wide summary
func (s *LedgerService) ServerStats(ctx context.Context) (*models.ServerStats, error) {
	total, active, err := s.store.CountAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	money, err := s.store.SumActiveBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum balances: %w", err)
	}
	count, err := s.transactions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	volume, err := s.transactions.TotalVolume(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum volume: %w", err)
	}
	average, err := s.transactions.AverageSize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to average transactions: %w", err)
	}
	interest, err := s.transactions.TotalByType(ctx, models.TransactionTypeInterest)
	if err != nil {
		return nil, fmt.Errorf("failed to sum interest: %w", err)
	}
	byType, err := s.transactions.CountsByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions by type: %w", err)
	}

	return &models.ServerStats{
		TotalAccounts:          total,
		ActiveAccounts:         active,
		TotalMoney:             money,
		TotalTransactions:      count,
		TotalVolume:            volume,
		AverageTransactionSize: average,
		TotalInterestPaid:      interest,
		TransactionsByType:     byType,
	}, nil
}

// FormatAmount renders amount with the configured currency symbol and suffix
func (s *LedgerService) FormatAmount(amount decimal.Decimal) string {
	economy := s.economy.Get()
	return models.FormatMoney(amount, economy.CurrencySymbol, economy.CurrencySuffix)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
