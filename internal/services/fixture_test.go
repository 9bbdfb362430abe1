package services

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"banking-ledger/internal/config"
	"banking-ledger/internal/database"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// ledgerFixture wires the real services over an in-memory database.
type ledgerFixture struct {
	db           *database.DB
	store        repositories.AccountStoreInterface
	transactions repositories.TransactionRepositoryInterface
	economy      *config.EconomyHolder
	cache        *AccountCache
	locker       *AccountLocker
	breaker      CircuitBreakerInterface
	ledger       *LedgerService
	scheduler    *InterestScheduler
	clock        *fakeClock
	registry     *prometheus.Registry
}

func testEconomy() config.EconomyConfig {
	return config.EconomyConfig{
		StartingBalance: decimal.NewFromInt(100),
		CurrencySymbol:  "$",
		Interest: config.InterestConfig{
			Enabled:        true,
			DailyRate:      decimal.RequireFromString("0.01"),
			MinimumBalance: decimal.NewFromInt(100),
			MaximumPayout:  decimal.NewFromInt(1000),
			PayoutInterval: 24 * time.Hour,
		},
	}
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()

	db := database.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &ledgerFixture{
		db:           db,
		store:        repositories.NewAccountStore(db.DB, 5*time.Second),
		transactions: repositories.NewTransactionRepository(db.DB, 5*time.Second),
		economy:      config.NewEconomyHolder(testEconomy()),
		locker:       NewAccountLocker(),
		breaker:      NewCircuitBreaker(DefaultCircuitBreakerConfig(), nil),
		clock:        newFakeClock(time.Now().UTC()),
		registry:     prometheus.NewRegistry(),
	}

	metrics := NewPrometheusMetrics(f.registry)
	audit := NewAuditLogger(logger)

	f.cache = NewAccountCache(f.store, f.economy, audit, metrics, logger)
	f.ledger = NewLedgerService(f.store, f.transactions, f.cache, f.locker, f.economy, f.breaker, audit, metrics, logger)
	f.scheduler = NewInterestScheduler(f.ledger, f.cache, f.store, f.transactions, f.locker, f.economy, audit, metrics, logger,
		WithClock(f.clock.Now))

	t.Cleanup(f.scheduler.Stop)
	return f
}

func (f *ledgerFixture) account(t *testing.T, name, balance string) *models.Account {
	t.Helper()
	return database.CreateTestAccount(t, f.db, name, decimal.RequireFromString(balance))
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
