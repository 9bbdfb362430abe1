package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"banking-ledger/internal/config"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SchedulerState is the lifecycle state of the interest scheduler
type SchedulerState int32

const (
	SchedulerDisabled SchedulerState = iota
	SchedulerIdle
	SchedulerRunning
)

func (s SchedulerState) String() string {
	switch s {
	case SchedulerIdle:
		return "idle"
	case SchedulerRunning:
		return "running"
	default:
		return "disabled"
	}
}

// CycleReport summarizes one pass over the eligible accounts
type CycleReport struct {
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Forced     bool            `json:"forced"`
	Eligible   int             `json:"eligible"`
	Processed  int             `json:"processed"`
	Skipped    int             `json:"skipped"`
	Errors     int             `json:"errors"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
}

type SchedulerOption func(*InterestScheduler)

// WithClock replaces the wall clock used for elapsed-hour calculations
func WithClock(now func() time.Time) SchedulerOption {
	return func(s *InterestScheduler) {
		s.now = now
	}
}

// InterestScheduler pays interest on a ticker. At most one run is active at
// a time: a tick that fires during a run is dropped, never queued. It pays
// only through the ledger.
type InterestScheduler struct {
	ledger       LedgerServiceInterface
	cache        AccountCacheInterface
	store        repositories.AccountStoreInterface
	transactions repositories.TransactionRepositoryInterface
	locker       *AccountLocker
	economy      *config.EconomyHolder
	audit        AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	now          func() time.Time

	// lifecycle guards the loop fields below
	lifecycle sync.Mutex
	baseCtx   context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	// runMu is held for the whole of any run, periodic or manual
	runMu   sync.Mutex
	started atomic.Bool
	running atomic.Bool
	nextRun atomic.Pointer[time.Time]
	last    atomic.Pointer[CycleReport]
}

func NewInterestScheduler(
	ledger LedgerServiceInterface,
	cache AccountCacheInterface,
	store repositories.AccountStoreInterface,
	transactions repositories.TransactionRepositoryInterface,
	locker *AccountLocker,
	economy *config.EconomyHolder,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	opts ...SchedulerOption,
) *InterestScheduler {
	s := &InterestScheduler{
		ledger:       ledger,
		cache:        cache,
		store:        store,
		transactions: transactions,
		locker:       locker,
		economy:      economy,
		audit:        audit,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the periodic payout when interest is enabled. The loop ends
// when ctx is cancelled or Stop is called.
func (s *InterestScheduler) Start(ctx context.Context) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.baseCtx = ctx
	return s.startLocked()
}

func (s *InterestScheduler) startLocked() error {
	cfg := s.economy.Get().Interest
	if !cfg.Enabled {
		s.logger.Info("interest scheduler disabled by configuration")
		return nil
	}
	if s.cancel != nil {
		return nil
	}
	if cfg.PayoutInterval <= 0 {
		return apperrors.Configuration("interest.start", config.ErrNonPositiveInterval)
	}

	base := s.baseCtx
	if base == nil {
		base = context.Background()
	}
	loopCtx, cancel := context.WithCancel(base)
	s.cancel = cancel
	s.started.Store(true)
	s.scheduleNext(cfg.PayoutInterval)

	s.wg.Add(1)
	go s.loop(loopCtx, cfg.PayoutInterval)

	s.logger.Info("interest scheduler started",
		"interval", cfg.PayoutInterval.String(),
		"daily_rate", cfg.DailyRate.String(),
	)
	return nil
}

// Stop cancels the loop and returns once it and any in-flight run have
// finished. No timer outlives Stop.
func (s *InterestScheduler) Stop() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	s.stopLocked()
}

func (s *InterestScheduler) stopLocked() {
	if s.cancel != nil {
		s.cancel()
		s.wg.Wait()
		s.cancel = nil
		s.logger.Info("interest scheduler stopped")
	}
	s.started.Store(false)
	s.nextRun.Store(nil)

	// wait out a manual run that started outside the loop
	s.runMu.Lock()
	s.runMu.Unlock()
}

func (s *InterestScheduler) State() SchedulerState {
	switch {
	case s.running.Load():
		return SchedulerRunning
	case s.started.Load():
		return SchedulerIdle
	default:
		return SchedulerDisabled
	}
}

// Enable turns interest on and starts the loop
func (s *InterestScheduler) Enable(ctx context.Context) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	interest := s.economy.Get().Interest
	interest.Enabled = true
	s.economy.SwapInterest(interest)

	if s.baseCtx == nil {
		s.baseCtx = context.WithoutCancel(ctx)
	}
	if err := s.startLocked(); err != nil {
		return err
	}
	s.audit.LogConfigurationChange(ctx, "interest.enabled", true)
	return nil
}

// Disable turns interest off and stops the loop
func (s *InterestScheduler) Disable() {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	interest := s.economy.Get().Interest
	interest.Enabled = false
	s.economy.SwapInterest(interest)

	s.stopLocked()
	s.audit.LogConfigurationChange(context.Background(), "interest.enabled", false)
}

// Reconfigure installs new interest settings. The loop restarts only when
// the interval or the enabled flag changed.
func (s *InterestScheduler) Reconfigure(ctx context.Context, cfg config.InterestConfig) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	economy := s.economy.Get()
	economy.Interest = cfg
	return s.installLocked(ctx, economy)
}

// ReconfigureEconomy replaces the whole economy in one swap, so readers
// see either the old settings or the new ones and never a mix.
func (s *InterestScheduler) ReconfigureEconomy(ctx context.Context, economy config.EconomyConfig) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	return s.installLocked(ctx, economy)
}

func (s *InterestScheduler) installLocked(ctx context.Context, economy config.EconomyConfig) error {
	if err := economy.Validate(); err != nil {
		return err
	}

	old := s.economy.Swap(economy).Interest
	cfg := economy.Interest
	restart := old.PayoutInterval != cfg.PayoutInterval || old.Enabled != cfg.Enabled
	if restart {
		s.stopLocked()
		if s.baseCtx == nil {
			s.baseCtx = context.WithoutCancel(ctx)
		}
		if err := s.startLocked(); err != nil {
			return err
		}
	}

	s.audit.LogConfigurationChange(ctx, "interest", restart)
	return nil
}

func (s *InterestScheduler) loop(ctx context.Context, interval time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.scheduleNext(interval)
			s.tick(ctx)
		}
	}
}

func (s *InterestScheduler) scheduleNext(interval time.Duration) {
	next := s.now().Add(interval)
	s.nextRun.Store(&next)
}

// tick starts a run unless one is active. Runs execute off the loop
// goroutine so an overlapping tick is observed and dropped.
func (s *InterestScheduler) tick(ctx context.Context) {
	if !s.runMu.TryLock() {
		s.metrics.IncrementCounter(MetricInterestTickSkipped, nil)
		s.audit.LogTickSkipped(ctx, "previous run still active")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.runMu.Unlock()

		if _, err := s.runLocked(ctx, false, "scheduled"); err != nil && ctx.Err() == nil {
			s.logger.Error("scheduled interest run failed", "error", err)
		}
	}()
}

// RunCycle runs one periodic pass now, honouring each account's interval.
func (s *InterestScheduler) RunCycle(ctx context.Context) (*CycleReport, error) {
	return s.exclusive(ctx, false, "manual")
}

// ForcePayout pays every eligible account whatever has accrued, ignoring
// the interval.
func (s *InterestScheduler) ForcePayout(ctx context.Context) (*CycleReport, error) {
	return s.exclusive(ctx, true, "forced")
}

func (s *InterestScheduler) exclusive(ctx context.Context, forced bool, trigger string) (*CycleReport, error) {
	if !s.runMu.TryLock() {
		return nil, &apperrors.LedgerError{
			Kind: apperrors.KindConcurrencyConflict,
			Code: apperrors.InterestRunInProgress,
			Op:   "interest.run",
			Err:  ErrRunInProgress,
		}
	}
	defer s.runMu.Unlock()

	return s.runLocked(ctx, forced, trigger)
}

func (s *InterestScheduler) runLocked(ctx context.Context, forced bool, trigger string) (*CycleReport, error) {
	s.running.Store(true)
	defer s.running.Store(false)

	cfg := s.economy.Get().Interest
	now := s.now().UTC()
	report := &CycleReport{StartedAt: now, Forced: forced, TotalPaid: decimal.Zero}

	defer func() {
		report.FinishedAt = s.now().UTC()
		s.last.Store(report)
		s.metrics.IncrementCounter(MetricInterestCycle, map[string]string{"trigger": trigger})
		s.metrics.RecordProcessingTime(MetricInterestCycle, report.FinishedAt.Sub(report.StartedAt))
		s.metrics.RecordGauge(MetricInterestPaid, report.TotalPaid.InexactFloat64(), nil)
		s.audit.LogInterestCycle(ctx, report)
	}()

	accounts, err := s.store.EligibleForInterest(ctx, cfg.MinimumBalance)
	if err != nil {
		report.Errors++
		return report, err
	}
	report.Eligible = len(accounts)

	for _, account := range accounts {
		if ctx.Err() != nil {
			break
		}

		record, err := s.payoutAccount(ctx, account.ID, cfg, now, forced)
		switch {
		case err == nil:
			report.Processed++
			report.TotalPaid = report.TotalPaid.Add(record.Amount)
		case isSkip(err):
			report.Skipped++
		default:
			report.Errors++
			s.logger.WarnContext(ctx, "interest payout failed",
				"account_id", account.ID.String(),
				"error", err,
			)
		}
	}

	return report, nil
}

// payoutAccount is the one path every trigger pays interest through. The
// amount is computed against the balance loaded inside the atomic unit.
func (s *InterestScheduler) payoutAccount(ctx context.Context, id uuid.UUID, cfg config.InterestConfig, now time.Time, ignoreInterval bool) (*models.Transaction, error) {
	return s.ledger.CreditInterest(ctx, id, func(account models.Account) (decimal.Decimal, error) {
		return interestDue(account, cfg, now, ignoreInterval)
	}, now)
}

func isSkip(err error) bool {
	return errors.Is(err, ErrBelowMinimum) ||
		errors.Is(err, ErrIntervalNotElapsed) ||
		errors.Is(err, ErrNothingToPay) ||
		errors.Is(err, ErrAccountInactive)
}

// ManualPayout pays one account what has accrued so far. The minimum
// balance still applies.
func (s *InterestScheduler) ManualPayout(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	cfg := s.economy.Get().Interest
	return s.payoutAccount(ctx, id, cfg, s.now().UTC(), true)
}

func (s *InterestScheduler) LastReport() *CycleReport {
	return s.last.Load()
}

// PotentialInterest is what ManualPayout would pay right now
func (s *InterestScheduler) PotentialInterest(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	account, err := s.cache.Get(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	cfg := s.economy.Get().Interest
	if account.Balance.LessThan(cfg.MinimumBalance) {
		return decimal.Zero, nil
	}
	hours := wholeHoursBetween(account.LastInterestPayout, s.now())
	return CalculateInterest(account.Balance, account.EffectiveInterestRate(cfg.DailyRate), hours, cfg.MaximumPayout), nil
}

func (s *InterestScheduler) NextPayout(ctx context.Context, id uuid.UUID) (time.Time, error) {
	account, err := s.cache.Get(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	return account.LastInterestPayout.Add(s.economy.Get().Interest.PayoutInterval), nil
}

// AccountInterest describes one account's interest position
func (s *InterestScheduler) AccountInterest(ctx context.Context, id uuid.UUID) (*models.AccountInterest, error) {
	account, err := s.cache.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg := s.economy.Get().Interest
	eligible := account.IsActive && account.Balance.GreaterThanOrEqual(cfg.MinimumBalance)
	hours := wholeHoursBetween(account.LastInterestPayout, s.now())
	potential := decimal.Zero
	if eligible {
		potential = CalculateInterest(account.Balance, account.EffectiveInterestRate(cfg.DailyRate), hours, cfg.MaximumPayout)
	}

	return &models.AccountInterest{
		Balance:                account.Balance,
		InterestRate:           account.EffectiveInterestRate(cfg.DailyRate),
		Eligible:               eligible,
		LastInterestPayout:     account.LastInterestPayout,
		HoursSinceLastPayout:   hours,
		PotentialInterest:      potential,
		NextPayout:             account.LastInterestPayout.Add(cfg.PayoutInterval),
		MinimumBalanceRequired: cfg.MinimumBalance,
		MaximumPayout:          cfg.MaximumPayout,
	}, nil
}

// Statistics summarizes eligibility and payouts across all accounts
func (s *InterestScheduler) Statistics(ctx context.Context) (*models.InterestStatistics, error) {
	cfg := s.economy.Get().Interest

	accounts, err := s.store.EligibleForInterest(ctx, cfg.MinimumBalance)
	if err != nil {
		return nil, err
	}
	paid, err := s.transactions.TotalByType(ctx, models.TransactionTypeInterest)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.Balance)
	}
	average := decimal.Zero
	if len(accounts) > 0 {
		average = models.RoundMoney(total.Div(decimal.NewFromInt(int64(len(accounts)))))
	}

	return &models.InterestStatistics{
		Enabled:                cfg.Enabled,
		State:                  s.State().String(),
		EligibleAccounts:       len(accounts),
		TotalEligibleBalance:   total,
		AverageEligibleBalance: average,
		TotalInterestPaid:      paid,
		DailyRate:              cfg.DailyRate,
		MinimumBalance:         cfg.MinimumBalance,
		MaximumPayout:          cfg.MaximumPayout,
		PayoutInterval:         cfg.PayoutInterval,
		NextRunAt:              s.nextRun.Load(),
	}, nil
}

// SetInterestRate gives one account its own daily rate; zero restores the
// configured default.
func (s *InterestScheduler) SetInterestRate(ctx context.Context, id uuid.UUID, rate decimal.Decimal) error {
	const op = "interest.set_rate"

	if err := validateRate(op, rate); err != nil {
		return err
	}

	unlock := s.locker.Lock(id)
	defer unlock()

	if err := s.store.SetInterestRate(ctx, id, rate); err != nil {
		return err
	}
	account, err := s.store.Load(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Refresh(account)

	s.logger.InfoContext(ctx, "interest rate updated",
		"account_id", id.String(),
		"rate", rate.String(),
	)
	return nil
}
