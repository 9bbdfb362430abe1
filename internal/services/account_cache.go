package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"banking-ledger/internal/config"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// AccountCache is a read-through projection of the account store. It holds
// value snapshots: callers get copies and the ledger replaces entries
// wholesale after each commit, so no caller ever sees a half-applied update.
type AccountCache struct {
	store   repositories.AccountStoreInterface
	economy *config.EconomyHolder
	audit   AuditLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger

	mu      sync.RWMutex
	entries map[uuid.UUID]models.Account
	// gen advances on every write so a load that raced with one cannot
	// install the older row it read.
	gen uint64

	loads singleflight.Group
}

func NewAccountCache(
	store repositories.AccountStoreInterface,
	economy *config.EconomyHolder,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *AccountCache {
	return &AccountCache{
		store:   store,
		economy: economy,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
		entries: make(map[uuid.UUID]models.Account),
	}
}

// Get returns the cached account, loading it from the store on a miss.
// Concurrent misses for one id share a single store read.
func (c *AccountCache) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if account, ok := c.lookup(id); ok {
		c.metrics.IncrementCounter(MetricCacheHit, nil)
		return account, nil
	}
	c.metrics.IncrementCounter(MetricCacheMiss, nil)

	v, err, _ := c.loads.Do(id.String(), func() (interface{}, error) {
		gen := c.generation()
		account, err := c.store.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		c.insertIfAbsent(gen, *account)
		return *account, nil
	})
	if err != nil {
		return nil, err
	}

	account := v.(models.Account)
	return &account, nil
}

// GetOrCreate returns the account, creating it with the configured starting
// balance when it does not exist yet.
func (c *AccountCache) GetOrCreate(ctx context.Context, id uuid.UUID, defaultName string) (*models.Account, error) {
	account, err := c.Get(ctx, id)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	v, err, _ := c.loads.Do("create:"+id.String(), func() (interface{}, error) {
		created := models.NewAccount(id, defaultName, c.economy.Get().StartingBalance, time.Now().UTC())
		createErr := c.store.Create(ctx, created)
		switch {
		case createErr == nil:
			c.audit.LogAccountCreated(ctx, created)
		case errors.Is(createErr, repositories.ErrAccountExists):
			// another process created it first
			existing, loadErr := c.store.Load(ctx, id)
			if loadErr != nil {
				return nil, loadErr
			}
			created = existing
		default:
			return nil, createErr
		}

		c.Refresh(created)
		return *created, nil
	})
	if err != nil {
		return nil, err
	}

	out := v.(models.Account)
	return &out, nil
}

// Refresh replaces the entry with a just-committed snapshot.
func (c *AccountCache) Refresh(account *models.Account) {
	if account == nil {
		return
	}

	c.mu.Lock()
	c.gen++
	c.entries[account.ID] = *account
	size := len(c.entries)
	c.mu.Unlock()

	c.metrics.RecordGauge(MetricCacheSize, float64(size), nil)
}

// Invalidate drops one entry; the next Get reloads it.
func (c *AccountCache) Invalidate(id uuid.UUID) {
	c.mu.Lock()
	c.gen++
	delete(c.entries, id)
	size := len(c.entries)
	c.mu.Unlock()

	c.metrics.RecordGauge(MetricCacheSize, float64(size), nil)
}

// ClearAll drops every entry.
func (c *AccountCache) ClearAll() {
	c.mu.Lock()
	c.gen++
	c.entries = make(map[uuid.UUID]models.Account)
	c.mu.Unlock()

	c.metrics.RecordGauge(MetricCacheSize, 0, nil)
	c.logger.Info("account cache cleared")
}

func (c *AccountCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *AccountCache) lookup(id uuid.UUID) (*models.Account, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	account, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	return &account, true
}

func (c *AccountCache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

func (c *AccountCache) insertIfAbsent(gen uint64, account models.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return
	}
	if _, ok := c.entries[account.ID]; ok {
		return
	}
	c.entries[account.ID] = account
}
