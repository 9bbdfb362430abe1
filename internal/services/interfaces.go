package services

import (
	"context"
	"time"

	"banking-ledger/internal/config"
	"banking-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountCacheInterface is the in-memory projection of the account store.
// Every returned account is a copy owned by the caller.
type AccountCacheInterface interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetOrCreate(ctx context.Context, id uuid.UUID, defaultName string) (*models.Account, error)
	Invalidate(id uuid.UUID)
	ClearAll()
	Refresh(account *models.Account)
	Len() int
}

// LedgerServiceInterface mutates balances together with their ledger records
type LedgerServiceInterface interface {
	RecordTransaction(ctx context.Context, req RecordRequest) (*models.Transaction, error)
	TransferMoney(ctx context.Context, fromID, toID uuid.UUID, amount decimal.Decimal, reason string) (*TransferResult, error)
	CreditSingleAccount(ctx context.Context, id uuid.UUID, amount decimal.Decimal, txType models.TransactionType, description string) (*models.Transaction, error)

	Deposit(ctx context.Context, id uuid.UUID, amount decimal.Decimal, description string) (*models.Transaction, error)
	Withdraw(ctx context.Context, id uuid.UUID, amount decimal.Decimal, description string) (*models.Transaction, error)
	AdminSet(ctx context.Context, id uuid.UUID, target decimal.Decimal) (*models.Transaction, error)
	AdminGive(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Transaction, error)
	AdminTake(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Transaction, error)
	BusinessPayment(ctx context.Context, fromID uuid.UUID, business string, amount decimal.Decimal) (*TransferResult, error)
	StockPurchase(ctx context.Context, id uuid.UUID, symbol string, amount decimal.Decimal) (*models.Transaction, error)
	StockSale(ctx context.Context, id uuid.UUID, symbol string, amount decimal.Decimal) (*models.Transaction, error)
	Dividend(ctx context.Context, id uuid.UUID, symbol string, amount decimal.Decimal) (*models.Transaction, error)
	CreditInterest(ctx context.Context, id uuid.UUID, calc InterestFunc, paidAt time.Time) (*models.Transaction, error)

	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	FindByName(ctx context.Context, name string) (*models.Account, error)
	FindByAccountNumber(ctx context.Context, number string) (*models.Account, error)

	History(ctx context.Context, id uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	HistoryByType(ctx context.Context, id uuid.UUID, txType models.TransactionType, offset, limit int) ([]models.Transaction, int64, error)
	HistoryBetween(ctx context.Context, id uuid.UUID, start, end time.Time) ([]models.Transaction, error)
	TotalVolume(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	TopByBalance(ctx context.Context, limit int) []models.Account
	TotalMoney(ctx context.Context) (decimal.Decimal, error)
	ServerStats(ctx context.Context) (*models.ServerStats, error)
	FormatAmount(amount decimal.Decimal) string
}

// InterestSchedulerInterface runs the periodic interest payout
type InterestSchedulerInterface interface {
	Start(ctx context.Context) error
	Stop()
	State() SchedulerState
	Enable(ctx context.Context) error
	Disable()
	Reconfigure(ctx context.Context, cfg config.InterestConfig) error
	ReconfigureEconomy(ctx context.Context, economy config.EconomyConfig) error

	RunCycle(ctx context.Context) (*CycleReport, error)
	ForcePayout(ctx context.Context) (*CycleReport, error)
	ManualPayout(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	LastReport() *CycleReport

	PotentialInterest(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	AccountInterest(ctx context.Context, id uuid.UUID) (*models.AccountInterest, error)
	NextPayout(ctx context.Context, id uuid.UUID) (time.Time, error)
	Statistics(ctx context.Context) (*models.InterestStatistics, error)
	SetInterestRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogAccountCreated(ctx context.Context, account *models.Account)
	LogAccountStatusChange(ctx context.Context, accountID uuid.UUID, active bool)
	LogBalanceChange(ctx context.Context, record *models.Transaction)
	LogTransferCompleted(ctx context.Context, result *TransferResult, duration time.Duration)
	LogMutationFailed(ctx context.Context, operation string, accountID uuid.UUID, err error)
	LogInterestCycle(ctx context.Context, report *CycleReport)
	LogTickSkipped(ctx context.Context, reason string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogConfigurationChange(ctx context.Context, section string, restarted bool)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
