package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultStoreTimeout = 5 * time.Second

	accountNumberScanBatch = 500
)

// accountStore implements AccountStoreInterface on gorm. A store created by
// RunAtomic is bound to the open transaction.
type accountStore struct {
	db      *gorm.DB
	timeout time.Duration
	inTx    bool
}

// NewAccountStore creates a new account store
func NewAccountStore(db *gorm.DB, timeout time.Duration) AccountStoreInterface {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &accountStore{
		db:      db,
		timeout: timeout,
	}
}

func (r *accountStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *accountStore) supportsRowLocks() bool {
	return r.db.Dialector.Name() != "sqlite"
}

// Load retrieves an account by ID
func (r *accountStore) Load(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var account models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		return nil, classifyError(ctx, "store.load", err)
	}
	return &account, nil
}

// LoadForUpdate retrieves an account and takes a row lock on it
func (r *accountStore) LoadForUpdate(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx)
	if r.supportsRowLocks() {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var account models.Account
	if err := query.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, classifyError(ctx, "store.load_for_update", err)
	}
	return &account, nil
}

// FindByName resolves an active account by display name, ignoring case
func (r *accountStore) FindByName(ctx context.Context, name string) (*models.Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var account models.Account
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = ? AND is_active = ?", strings.ToLower(strings.TrimSpace(name)), true).
		Order("created_at ASC").
		First(&account).Error
	if err != nil {
		return nil, classifyError(ctx, "store.find_by_name", err)
	}
	return &account, nil
}

// FindByAccountNumber scans active accounts for the derived account number.
// The number is never stored, so there is no index to query.
func (r *accountStore) FindByAccountNumber(ctx context.Context, number string) (*models.Account, error) {
	if !models.IsValidAccountNumber(number) {
		return nil, apperrors.Validation("store.find_by_account_number", apperrors.AccountInvalidNumber,
			fmt.Errorf("malformed account number %q", number))
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		batch []models.Account
		found *models.Account
	)
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		FindInBatches(&batch, accountNumberScanBatch, func(tx *gorm.DB, _ int) error {
			for i := range batch {
				if batch[i].AccountNumber() == number {
					account := batch[i]
					found = &account
					return errStopScan
				}
			}
			return nil
		})
	if result.Error != nil && !errors.Is(result.Error, errStopScan) {
		return nil, classifyError(ctx, "store.find_by_account_number", result.Error)
	}
	if found == nil {
		return nil, apperrors.NotFound("store.find_by_account_number", apperrors.AccountNotFound, ErrAccountNotFound)
	}
	return found, nil
}

var errStopScan = errors.New("stop scan")

// Create inserts a new account
func (r *accountStore) Create(ctx context.Context, account *models.Account) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return classifyError(ctx, "store.create", err)
	}
	return nil
}

// Save inserts the account or overwrites every column of an existing row
func (r *accountStore) Save(ctx context.Context, account *models.Account) error {
	if err := account.Validate(); err != nil {
		return classifyError(ctx, "store.save", err)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	account.UpdatedAt = time.Now().UTC()
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return classifyError(ctx, "store.save", err)
	}
	return nil
}

// UpdateBalance overwrites the stored balance of one account
func (r *accountStore) UpdateBalance(ctx context.Context, id uuid.UUID, newBalance decimal.Decimal) error {
	if newBalance.IsNegative() {
		return apperrors.InsufficientFunds("store.update_balance", apperrors.TransactionInsufficientFunds, models.ErrInvalidBalance)
	}
	if !models.HasMoneyPrecision(newBalance) {
		return apperrors.Validation("store.update_balance", apperrors.ValidationPrecision, models.ErrAmountPrecision)
	}

	return r.updateColumns(ctx, "store.update_balance", id, map[string]interface{}{
		"balance": newBalance,
	})
}

// UpdateLastInterestPayout records when interest was last paid to an account
func (r *accountStore) UpdateLastInterestPayout(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.updateColumns(ctx, "store.update_last_interest_payout", id, map[string]interface{}{
		"last_interest_payout": at.UTC(),
	})
}

// SetActive soft-deletes or restores an account
func (r *accountStore) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return r.updateColumns(ctx, "store.set_active", id, map[string]interface{}{
		"is_active": active,
	})
}

// SetInterestRate sets an account's own daily rate; zero inherits the default
func (r *accountStore) SetInterestRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error {
	if rate.IsNegative() {
		return apperrors.Validation("store.set_interest_rate", apperrors.ValidationOutOfRange, models.ErrInvalidInterestRate)
	}

	return r.updateColumns(ctx, "store.set_interest_rate", id, map[string]interface{}{
		"interest_rate": rate,
	})
}

func (r *accountStore) updateColumns(ctx context.Context, op string, id uuid.UUID, columns map[string]interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	columns["updated_at"] = time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("id = ?", id).
		UpdateColumns(columns)
	if result.Error != nil {
		return classifyError(ctx, op, result.Error)
	}

	// MySQL reports changed rows rather than matched rows
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return classifyError(ctx, op, err)
		}
		if count == 0 {
			return apperrors.NotFound(op, apperrors.AccountNotFound, ErrAccountNotFound)
		}
	}
	return nil
}

// TopByBalance returns the richest active accounts, highest balance first
func (r *accountStore) TopByBalance(ctx context.Context, limit int) ([]models.Account, error) {
	if limit < 0 {
		return nil, classifyError(ctx, "store.top_by_balance", ErrInvalidPage)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var accounts []models.Account
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("balance DESC").
		Order("name ASC").
		Limit(limit).
		Find(&accounts).Error
	if err != nil {
		return nil, classifyError(ctx, "store.top_by_balance", err)
	}
	return accounts, nil
}

// EligibleForInterest returns active accounts holding at least minBalance
func (r *accountStore) EligibleForInterest(ctx context.Context, minBalance decimal.Decimal) ([]models.Account, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var accounts []models.Account
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND balance >= ?", true, minBalance).
		Order("id ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, classifyError(ctx, "store.eligible_for_interest", err)
	}
	return accounts, nil
}

// SumActiveBalances totals the balances of active accounts. Summing happens
// in decimal so no dialect rounds through floating point.
func (r *accountStore) SumActiveBalances(ctx context.Context) (decimal.Decimal, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var balances []decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("is_active = ?", true).
		Pluck("balance", &balances).Error
	if err != nil {
		return decimal.Zero, classifyError(ctx, "store.sum_active_balances", err)
	}
	return decimal.Sum(decimal.Zero, balances...), nil
}

// CountAccounts returns the number of accounts and how many are active
func (r *accountStore) CountAccounts(ctx context.Context) (int64, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total, active int64
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Count(&total).Error; err != nil {
		return 0, 0, classifyError(ctx, "store.count_accounts", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.Account{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, classifyError(ctx, "store.count_accounts", err)
	}
	return total, active, nil
}

// AppendTransaction writes one immutable ledger record
func (r *accountStore) AppendTransaction(ctx context.Context, record *models.Transaction) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return classifyError(ctx, "store.append_transaction", err)
	}
	return nil
}

// RunAtomic runs fn in a database transaction. Nested calls join the
// enclosing transaction.
func (r *accountStore) RunAtomic(ctx context.Context, fn func(tx AccountStoreInterface) error) (err error) {
	if r.inTx {
		return fn(r)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			err = apperrors.Persistence("store.run_atomic", apperrors.SystemInternalError, fmt.Errorf("%w: %v", ErrAtomicPanic, p))
		}
	}()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&accountStore{db: tx, timeout: r.timeout, inTx: true})
	})
	return classifyError(ctx, "store.run_atomic", err)
}
