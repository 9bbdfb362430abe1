package repositories

import (
	"context"
	"time"

	"banking-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB, timeout time.Duration) TransactionRepositoryInterface {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	return &transactionRepository{
		db:      db,
		timeout: timeout,
	}
}

// History returns an account's records newest first, with the total count
func (r *transactionRepository) History(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	return r.page(ctx, "transactions.history", offset, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("account_id = ?", accountID)
	})
}

// ByType returns an account's records of one type newest first
func (r *transactionRepository) ByType(ctx context.Context, accountID uuid.UUID, txType models.TransactionType, offset, limit int) ([]models.Transaction, int64, error) {
	return r.page(ctx, "transactions.by_type", offset, limit, func(db *gorm.DB) *gorm.DB {
		return db.Where("account_id = ? AND type = ?", accountID, txType)
	})
}

func (r *transactionRepository) page(ctx context.Context, op string, offset, limit int, scope func(*gorm.DB) *gorm.DB) ([]models.Transaction, int64, error) {
	if offset < 0 || limit < 0 {
		return nil, 0, classifyError(ctx, op, ErrInvalidPage)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, classifyError(ctx, op, err)
	}

	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, classifyError(ctx, op, err)
	}

	return transactions, total, nil
}

// BetweenDates returns an account's records created in [start, end], newest first
func (r *transactionRepository) BetweenDates(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var transactions []models.Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND created_at >= ? AND created_at <= ?", accountID, start.UTC(), end.UTC()).
		Order("id DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, classifyError(ctx, "transactions.between_dates", err)
	}
	return transactions, nil
}

// ByReference returns every record written by one mutation, oldest first
func (r *transactionRepository) ByReference(ctx context.Context, reference string) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).Order("id ASC").Find(&transactions).Error; err != nil {
		return nil, classifyError(ctx, "transactions.by_reference", err)
	}
	return transactions, nil
}

// TotalVolume sums |amount| over one account's records, or over every record
// when accountID is nil
func (r *transactionRepository) TotalVolume(ctx context.Context, accountID *uuid.UUID) (decimal.Decimal, error) {
	amounts, err := r.pluckAmounts(ctx, "transactions.total_volume", func(db *gorm.DB) *gorm.DB {
		if accountID != nil {
			return db.Where("account_id = ?", *accountID)
		}
		return db
	})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount.Abs())
	}
	return total, nil
}

// Count returns the number of records in the log
func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, classifyError(ctx, "transactions.count", err)
	}
	return count, nil
}

// AverageSize is the mean |amount| across the log
func (r *transactionRepository) AverageSize(ctx context.Context) (decimal.Decimal, error) {
	count, err := r.Count(ctx)
	if err != nil || count == 0 {
		return decimal.Zero, err
	}

	volume, err := r.TotalVolume(ctx, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return volume.Div(decimal.NewFromInt(count)).Round(models.MoneyScale), nil
}

type typeCount struct {
	Type  models.TransactionType
	Count int64
}

// CountsByType returns how many records exist per type
func (r *transactionRepository) CountsByType(ctx context.Context) (map[models.TransactionType]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rows []typeCount
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, classifyError(ctx, "transactions.counts_by_type", err)
	}

	counts := make(map[models.TransactionType]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

// TotalByType sums the signed amounts of one record type
func (r *transactionRepository) TotalByType(ctx context.Context, txType models.TransactionType) (decimal.Decimal, error) {
	amounts, err := r.pluckAmounts(ctx, "transactions.total_by_type", func(db *gorm.DB) *gorm.DB {
		return db.Where("type = ?", txType)
	})
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.Sum(decimal.Zero, amounts...), nil
}

func (r *transactionRepository) pluckAmounts(ctx context.Context, op string, scope func(*gorm.DB) *gorm.DB) ([]decimal.Decimal, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var amounts []decimal.Decimal
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Scopes(scope).Pluck("amount", &amounts).Error; err != nil {
		return nil, classifyError(ctx, op, err)
	}
	return amounts, nil
}
