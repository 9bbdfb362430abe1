package repositories

import (
	"context"
	"time"

	"banking-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountStoreInterface is the durable source of truth for accounts and the
// append-only transaction log. Every method runs under the store timeout.
type AccountStoreInterface interface {
	Load(ctx context.Context, id uuid.UUID) (*models.Account, error)
	// LoadForUpdate reads the row and locks it until the surrounding
	// RunAtomic unit ends, where the dialect supports row locks.
	LoadForUpdate(ctx context.Context, id uuid.UUID) (*models.Account, error)
	FindByName(ctx context.Context, name string) (*models.Account, error)
	FindByAccountNumber(ctx context.Context, number string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Save(ctx context.Context, account *models.Account) error
	UpdateBalance(ctx context.Context, id uuid.UUID, newBalance decimal.Decimal) error
	UpdateLastInterestPayout(ctx context.Context, id uuid.UUID, at time.Time) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	SetInterestRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error
	TopByBalance(ctx context.Context, limit int) ([]models.Account, error)
	EligibleForInterest(ctx context.Context, minBalance decimal.Decimal) ([]models.Account, error)
	SumActiveBalances(ctx context.Context) (decimal.Decimal, error)
	CountAccounts(ctx context.Context) (total int64, active int64, err error)
	AppendTransaction(ctx context.Context, record *models.Transaction) error
	// RunAtomic executes fn inside one database transaction. fn must use only
	// the store it is handed. A nil return commits; an error or panic rolls
	// back every write made through tx.
	RunAtomic(ctx context.Context, fn func(tx AccountStoreInterface) error) error
}

// TransactionRepositoryInterface answers read queries over the transaction log.
type TransactionRepositoryInterface interface {
	History(ctx context.Context, accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	ByType(ctx context.Context, accountID uuid.UUID, txType models.TransactionType, offset, limit int) ([]models.Transaction, int64, error)
	BetweenDates(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	ByReference(ctx context.Context, reference string) ([]models.Transaction, error)
	TotalVolume(ctx context.Context, accountID *uuid.UUID) (decimal.Decimal, error)
	Count(ctx context.Context) (int64, error)
	AverageSize(ctx context.Context) (decimal.Decimal, error)
	CountsByType(ctx context.Context) (map[models.TransactionType]int64, error)
	TotalByType(ctx context.Context, txType models.TransactionType) (decimal.Decimal, error)
}
