package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"banking-ledger/internal/config"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories/repository_mocks"
	"banking-ledger/internal/services"
	"banking-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InterestSchedulerMockSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	ledger       *service_mocks.MockLedgerServiceInterface
	cache        *service_mocks.MockAccountCacheInterface
	audit        *service_mocks.MockAuditLoggerInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	store        *repository_mocks.MockAccountStoreInterface
	transactions *repository_mocks.MockTransactionRepositoryInterface
	scheduler    *services.InterestScheduler
	ctx          context.Context
}

func (s *InterestSchedulerMockSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ledger = service_mocks.NewMockLedgerServiceInterface(s.ctrl)
	s.cache = service_mocks.NewMockAccountCacheInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.store = repository_mocks.NewMockAccountStoreInterface(s.ctrl)
	s.transactions = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.ctx = context.Background()

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	economy := config.NewEconomyHolder(config.EconomyConfig{
		StartingBalance: decimal.NewFromInt(100),
		Interest: config.InterestConfig{
			Enabled:        true,
			DailyRate:      decimal.RequireFromString("0.01"),
			MinimumBalance: decimal.NewFromInt(100),
			MaximumPayout:  decimal.NewFromInt(1000),
			PayoutInterval: 24 * time.Hour,
		},
	})

	s.scheduler = services.NewInterestScheduler(s.ledger, s.cache, s.store, s.transactions, services.NewAccountLocker(),
		economy, s.audit, s.metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *InterestSchedulerMockSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInterestSchedulerMockSuite(t *testing.T) {
	suite.Run(t, new(InterestSchedulerMockSuite))
}

func (s *InterestSchedulerMockSuite) TestRunCycle_OverlappingRunsAreRejected() {
	account := models.NewAccount(uuid.New(), "slow", decimal.NewFromInt(1000), time.Now().Add(-48*time.Hour))
	entered := make(chan struct{})
	release := make(chan struct{})

	s.store.EXPECT().EligibleForInterest(gomock.Any(), gomock.Any()).Return([]models.Account{*account}, nil)
	s.ledger.EXPECT().CreditInterest(gomock.Any(), account.ID, gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, id uuid.UUID, calc services.InterestFunc, paidAt time.Time) (*models.Transaction, error) {
			close(entered)
			<-release
			amount, err := calc(*account)
			if err != nil {
				return nil, err
			}
			return &models.Transaction{AccountID: id, Amount: amount, Type: models.TransactionTypeInterest}, nil
		},
	)
	s.audit.EXPECT().LogInterestCycle(gomock.Any(), gomock.Any()).Times(1)

	done := make(chan *services.CycleReport)
	go func() {
		report, err := s.scheduler.RunCycle(s.ctx)
		s.NoError(err)
		done <- report
	}()

	<-entered
	s.Equal(services.SchedulerRunning, s.scheduler.State())

	_, err := s.scheduler.RunCycle(s.ctx)
	s.ErrorIs(err, services.ErrRunInProgress)
	_, err = s.scheduler.ForcePayout(s.ctx)
	s.ErrorIs(err, apperrors.ErrConcurrencyConflict)

	close(release)
	report := <-done
	s.Equal(1, report.Processed)
	s.Equal("20.00", report.TotalPaid.StringFixed(2))
	s.Equal(services.SchedulerDisabled, s.scheduler.State())
}

func (s *InterestSchedulerMockSuite) TestRunCycle_CountsFailuresWithoutAborting() {
	first := models.NewAccount(uuid.New(), "first", decimal.NewFromInt(500), time.Now().Add(-48*time.Hour))
	second := models.NewAccount(uuid.New(), "second", decimal.NewFromInt(500), time.Now().Add(-48*time.Hour))
	third := models.NewAccount(uuid.New(), "third", decimal.NewFromInt(500), time.Now().Add(-48*time.Hour))

	s.store.EXPECT().EligibleForInterest(gomock.Any(), gomock.Any()).
		Return([]models.Account{*first, *second, *third}, nil)
	s.ledger.EXPECT().CreditInterest(gomock.Any(), first.ID, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Persistence("store.run_atomic", apperrors.SystemDatabaseError, errors.New("disk I/O error")))
	s.ledger.EXPECT().CreditInterest(gomock.Any(), second.ID, gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Validation("ledger.credit_interest", apperrors.AccountInactive, services.ErrAccountInactive))
	s.ledger.EXPECT().CreditInterest(gomock.Any(), third.ID, gomock.Any(), gomock.Any()).
		Return(&models.Transaction{AccountID: third.ID, Amount: decimal.NewFromInt(10), Type: models.TransactionTypeInterest}, nil)
	s.audit.EXPECT().LogInterestCycle(gomock.Any(), gomock.Any()).Do(
		func(ctx context.Context, report *services.CycleReport) {
			s.Equal(3, report.Eligible)
		},
	)

	report, err := s.scheduler.ForcePayout(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, report.Errors)
	s.Equal(1, report.Skipped)
	s.Equal(1, report.Processed)
	s.Equal("10", report.TotalPaid.String())
	s.Same(report, s.scheduler.LastReport())
}

func (s *InterestSchedulerMockSuite) TestRunCycle_EligibilityQueryFails() {
	s.store.EXPECT().EligibleForInterest(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Persistence("store.eligible_for_interest", apperrors.SystemDatabaseError, errors.New("gone")))
	s.audit.EXPECT().LogInterestCycle(gomock.Any(), gomock.Any())

	report, err := s.scheduler.RunCycle(s.ctx)
	s.ErrorIs(err, apperrors.ErrPersistence)
	s.Equal(1, report.Errors)
}

func (s *InterestSchedulerMockSuite) TestEnableDisable_AuditsChange() {
	gomock.InOrder(
		s.audit.EXPECT().LogConfigurationChange(gomock.Any(), "interest.enabled", false),
		s.audit.EXPECT().LogConfigurationChange(gomock.Any(), "interest.enabled", true),
	)

	s.scheduler.Disable()
	s.Equal(services.SchedulerDisabled, s.scheduler.State())

	s.Require().NoError(s.scheduler.Enable(s.ctx))
	s.Equal(services.SchedulerIdle, s.scheduler.State())
	s.scheduler.Stop()
}

func (s *InterestSchedulerMockSuite) TestPotentialInterest_UsesCachedAccount() {
	account := models.NewAccount(uuid.New(), "cached", decimal.NewFromInt(2400), time.Now().Add(-90*time.Minute))
	s.cache.EXPECT().Get(gomock.Any(), account.ID).Return(account, nil)

	potential, err := s.scheduler.PotentialInterest(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal("1.00", potential.StringFixed(2))
}
