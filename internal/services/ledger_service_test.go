package services

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	f   *ledgerFixture
	ctx context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.f = newLedgerFixture(s.T())
	s.ctx = context.Background()
}

func (s *LedgerServiceTestSuite) balanceOf(id uuid.UUID) decimal.Decimal {
	account, err := s.f.store.Load(s.ctx, id)
	s.Require().NoError(err)
	return account.Balance
}

func (s *LedgerServiceTestSuite) assertMoney(expected string, actual decimal.Decimal) {
	s.T().Helper()
	s.Equal(decimal.RequireFromString(expected).StringFixed(2), actual.StringFixed(2))
}

func (s *LedgerServiceTestSuite) TestTransferMoney_Success() {
	alice := s.f.account(s.T(), "alice", "1000")
	bob := s.f.account(s.T(), "bob", "100")

	result, err := s.f.ledger.TransferMoney(s.ctx, alice.ID, bob.ID, decimal.NewFromInt(300), "rent")
	s.Require().NoError(err)

	s.assertMoney("700", result.From.Balance)
	s.assertMoney("400", result.To.Balance)
	s.assertMoney("700", s.balanceOf(alice.ID))
	s.assertMoney("400", s.balanceOf(bob.ID))

	s.Equal(result.Reference, result.Sent.Reference)
	s.Equal(result.Reference, result.Received.Reference)
	s.Equal(models.TransactionTypeTransferSent, result.Sent.Type)
	s.Equal(models.TransactionTypeTransferReceived, result.Received.Type)
	s.assertMoney("-300", result.Sent.Amount)
	s.assertMoney("300", result.Received.Amount)
	s.Equal("Transfer to bob: rent", result.Sent.Description)
	s.Equal("Transfer from alice: rent", result.Received.Description)
	s.Require().NotNil(result.Sent.CounterpartyID)
	s.Equal(bob.ID, *result.Sent.CounterpartyID)

	legs, err := s.f.transactions.ByReference(s.ctx, result.Reference)
	s.Require().NoError(err)
	s.Len(legs, 2)
}

func (s *LedgerServiceTestSuite) TestTransferMoney_RefreshesCache() {
	alice := s.f.account(s.T(), "alice", "1000")
	bob := s.f.account(s.T(), "bob", "100")

	// warm the cache so a stale entry would be visible
	_, err := s.f.cache.Get(s.ctx, alice.ID)
	s.Require().NoError(err)

	_, err = s.f.ledger.TransferMoney(s.ctx, alice.ID, bob.ID, decimal.NewFromInt(250), "")
	s.Require().NoError(err)

	cached, err := s.f.cache.Get(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.assertMoney("750", cached.Balance)

	cached, err = s.f.cache.Get(s.ctx, bob.ID)
	s.Require().NoError(err)
	s.assertMoney("350", cached.Balance)
}

func (s *LedgerServiceTestSuite) TestTransferMoney_InsufficientFunds() {
	alice := s.f.account(s.T(), "alice", "30")
	bob := s.f.account(s.T(), "bob", "0")

	_, err := s.f.ledger.TransferMoney(s.ctx, alice.ID, bob.ID, decimal.NewFromInt(50), "")
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrInsufficientFunds))
	s.Equal(apperrors.TransferInsufficientFunds, apperrors.CodeOf(err))

	s.assertMoney("30", s.balanceOf(alice.ID))
	s.assertMoney("0", s.balanceOf(bob.ID))

	_, total, err := s.f.transactions.History(s.ctx, alice.ID, 0, 10)
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *LedgerServiceTestSuite) TestTransferMoney_Rejections() {
	alice := s.f.account(s.T(), "alice", "100")
	bob := s.f.account(s.T(), "bob", "100")

	tests := []struct {
		name   string
		from   uuid.UUID
		to     uuid.UUID
		amount decimal.Decimal
		kind   error
		code   apperrors.ErrorCode
	}{
		{"zero amount", alice.ID, bob.ID, decimal.Zero, apperrors.ErrValidation, apperrors.TransferInvalidAmount},
		{"negative amount", alice.ID, bob.ID, decimal.NewFromInt(-5), apperrors.ErrValidation, apperrors.TransferInvalidAmount},
		{"sub-cent amount", alice.ID, bob.ID, decimal.RequireFromString("1.005"), apperrors.ErrValidation, apperrors.ValidationPrecision},
		{"same account", alice.ID, alice.ID, decimal.NewFromInt(5), apperrors.ErrValidation, apperrors.TransferSameAccount},
		{"unknown recipient", alice.ID, uuid.New(), decimal.NewFromInt(5), apperrors.ErrNotFound, apperrors.AccountNotFound},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.f.ledger.TransferMoney(s.ctx, tt.from, tt.to, tt.amount, "")
			s.Require().Error(err)
			s.True(errors.Is(err, tt.kind), "unexpected kind: %v", err)
			s.Equal(tt.code, apperrors.CodeOf(err))
		})
	}

	s.assertMoney("100", s.balanceOf(alice.ID))
	s.assertMoney("100", s.balanceOf(bob.ID))
}

func (s *LedgerServiceTestSuite) TestTransferMoney_InactiveAccount() {
	alice := s.f.account(s.T(), "alice", "100")
	bob := s.f.account(s.T(), "bob", "100")
	s.Require().NoError(s.f.ledger.Deactivate(s.ctx, bob.ID))

	_, err := s.f.ledger.TransferMoney(s.ctx, alice.ID, bob.ID, decimal.NewFromInt(10), "")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrAccountInactive))
	s.Equal(apperrors.AccountInactive, apperrors.CodeOf(err))
	s.assertMoney("100", s.balanceOf(alice.ID))

	s.Require().NoError(s.f.ledger.Reactivate(s.ctx, bob.ID))
	_, err = s.f.ledger.TransferMoney(s.ctx, alice.ID, bob.ID, decimal.NewFromInt(10), "")
	s.NoError(err)
}

func (s *LedgerServiceTestSuite) TestWithdraw_RejectedLeavesNoRecord() {
	account := s.f.account(s.T(), "carol", "30")

	_, err := s.f.ledger.Withdraw(s.ctx, account.ID, decimal.NewFromInt(50), "")
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrInsufficientFunds))

	s.assertMoney("30", s.balanceOf(account.ID))
	_, total, err := s.f.transactions.History(s.ctx, account.ID, 0, 10)
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *LedgerServiceTestSuite) TestDepositAndWithdraw_ChainBalances() {
	account := s.f.account(s.T(), "dave", "10")

	_, err := s.f.ledger.Deposit(s.ctx, account.ID, decimal.RequireFromString("15.25"), "")
	s.Require().NoError(err)
	_, err = s.f.ledger.Withdraw(s.ctx, account.ID, decimal.RequireFromString("5.50"), "atm")
	s.Require().NoError(err)
	_, err = s.f.ledger.AdminGive(s.ctx, account.ID, decimal.NewFromInt(1))
	s.Require().NoError(err)

	records, total, err := s.f.transactions.History(s.ctx, account.ID, 0, 10)
	s.Require().NoError(err)
	s.Require().EqualValues(3, total)

	// newest first: each record starts where the previous one ended
	for i := len(records) - 1; i > 0; i-- {
		s.True(records[i].BalanceAfter.Equal(records[i-1].BalanceBefore),
			"chain broken between %d and %d", records[i].ID, records[i-1].ID)
	}
	for _, r := range records {
		s.True(r.BalanceBefore.Add(r.Amount).Equal(r.BalanceAfter))
	}

	s.Equal("Deposit", records[2].Description)
	s.Equal("atm", records[1].Description)
	s.assertMoney("20.75", s.balanceOf(account.ID))
}

func (s *LedgerServiceTestSuite) TestCreditSingleAccount_Validation() {
	account := s.f.account(s.T(), "erin", "50")

	tests := []struct {
		name   string
		amount decimal.Decimal
		txType models.TransactionType
		code   apperrors.ErrorCode
	}{
		{"unknown type", decimal.NewFromInt(1), models.TransactionType("gift"), apperrors.TransactionInvalidType},
		{"zero", decimal.Zero, models.TransactionTypeDeposit, apperrors.TransactionInvalidAmount},
		{"negative deposit", decimal.NewFromInt(-1), models.TransactionTypeDeposit, apperrors.TransactionInvalidAmount},
		{"positive withdrawal", decimal.NewFromInt(1), models.TransactionTypeWithdrawal, apperrors.TransactionInvalidAmount},
		{"too precise", decimal.RequireFromString("0.001"), models.TransactionTypeDeposit, apperrors.ValidationPrecision},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.f.ledger.CreditSingleAccount(s.ctx, account.ID, tt.amount, tt.txType, "x")
			s.Require().Error(err)
			s.True(errors.Is(err, apperrors.ErrValidation))
			s.Equal(tt.code, apperrors.CodeOf(err))
		})
	}

	record, err := s.f.ledger.CreditSingleAccount(s.ctx, account.ID, decimal.NewFromInt(-20), models.TransactionTypePurchase, "lamp")
	s.Require().NoError(err)
	s.assertMoney("30", record.BalanceAfter)
}

func (s *LedgerServiceTestSuite) TestAdminOperations() {
	account := s.f.account(s.T(), "frank", "40")

	record, err := s.f.ledger.AdminSet(s.ctx, account.ID, decimal.NewFromInt(250))
	s.Require().NoError(err)
	s.assertMoney("210", record.Amount)
	s.Equal("Balance set to $250.00", record.Description)

	// setting the current balance again records a zero change
	record, err = s.f.ledger.AdminSet(s.ctx, account.ID, decimal.NewFromInt(250))
	s.Require().NoError(err)
	s.True(record.Amount.IsZero())

	_, err = s.f.ledger.AdminSet(s.ctx, account.ID, decimal.NewFromInt(-1))
	s.True(errors.Is(err, ErrNegativeTarget))

	record, err = s.f.ledger.AdminTake(s.ctx, account.ID, decimal.NewFromInt(1000))
	s.Require().NoError(err)
	s.assertMoney("-250", record.Amount)
	s.assertMoney("0", s.balanceOf(account.ID))

	_, err = s.f.ledger.AdminTake(s.ctx, account.ID, decimal.NewFromInt(1))
	s.True(errors.Is(err, apperrors.ErrInsufficientFunds))

	_, err = s.f.ledger.AdminGive(s.ctx, account.ID, decimal.RequireFromString("12.34"))
	s.Require().NoError(err)
	s.assertMoney("12.34", s.balanceOf(account.ID))
}

func (s *LedgerServiceTestSuite) TestBusinessPayment_CreatesBusinessAccount() {
	buyer := s.f.account(s.T(), "gina", "100")

	result, err := s.f.ledger.BusinessPayment(s.ctx, buyer.ID, "Coffee Shop", decimal.NewFromInt(40))
	s.Require().NoError(err)
	s.Equal(BusinessAccountID("coffee shop"), result.To.ID)
	s.Equal("Coffee Shop", result.To.Name)
	s.assertMoney("40", result.To.Balance)
	s.Equal(models.TransactionTypeBusinessPayment, result.Sent.Type)
	s.Equal("Payment to Coffee Shop", result.Sent.Description)

	// second payment reuses the same account
	result, err = s.f.ledger.BusinessPayment(s.ctx, buyer.ID, "  coffee shop ", decimal.NewFromInt(10))
	s.Require().NoError(err)
	s.assertMoney("50", result.To.Balance)
	s.assertMoney("50", s.balanceOf(buyer.ID))

	_, err = s.f.ledger.BusinessPayment(s.ctx, buyer.ID, " ", decimal.NewFromInt(10))
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *LedgerServiceTestSuite) TestStockOperations() {
	account := s.f.account(s.T(), "hank", "500")

	record, err := s.f.ledger.StockPurchase(s.ctx, account.ID, "acme", decimal.NewFromInt(200))
	s.Require().NoError(err)
	s.Equal("Bought shares of ACME", record.Description)
	s.assertMoney("-200", record.Amount)

	_, err = s.f.ledger.StockSale(s.ctx, account.ID, "acme", decimal.NewFromInt(150))
	s.Require().NoError(err)
	_, err = s.f.ledger.Dividend(s.ctx, account.ID, "acme", decimal.RequireFromString("2.50"))
	s.Require().NoError(err)

	s.assertMoney("452.50", s.balanceOf(account.ID))

	_, err = s.f.ledger.StockPurchase(s.ctx, account.ID, "acme", decimal.NewFromInt(1000))
	s.True(errors.Is(err, apperrors.ErrInsufficientFunds))
}

func (s *LedgerServiceTestSuite) TestRecordTransaction() {
	account := s.f.account(s.T(), "ivy", "100")

	record, err := s.f.ledger.RecordTransaction(s.ctx, RecordRequest{
		AccountID:     account.ID,
		Amount:        decimal.NewFromInt(-25),
		Type:          models.TransactionTypePurchase,
		Description:   "sword",
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(75),
	})
	s.Require().NoError(err)
	s.NotEmpty(record.Reference)
	s.assertMoney("75", s.balanceOf(account.ID))

	s.Run("mismatched chain", func() {
		_, err := s.f.ledger.RecordTransaction(s.ctx, RecordRequest{
			AccountID:     account.ID,
			Amount:        decimal.NewFromInt(10),
			Type:          models.TransactionTypeSale,
			BalanceBefore: decimal.NewFromInt(75),
			BalanceAfter:  decimal.NewFromInt(80),
		})
		s.True(errors.Is(err, models.ErrBalanceMismatch))
	})

	s.Run("stale balance before", func() {
		_, err := s.f.ledger.RecordTransaction(s.ctx, RecordRequest{
			AccountID:     account.ID,
			Amount:        decimal.NewFromInt(10),
			Type:          models.TransactionTypeSale,
			BalanceBefore: decimal.NewFromInt(100),
			BalanceAfter:  decimal.NewFromInt(110),
		})
		s.True(errors.Is(err, ErrStaleBalance))
		s.True(errors.Is(err, apperrors.ErrConcurrencyConflict))
	})

	s.Run("negative result", func() {
		_, err := s.f.ledger.RecordTransaction(s.ctx, RecordRequest{
			AccountID:     account.ID,
			Amount:        decimal.NewFromInt(-80),
			Type:          models.TransactionTypePurchase,
			BalanceBefore: decimal.NewFromInt(75),
			BalanceAfter:  decimal.NewFromInt(-5),
		})
		s.True(errors.Is(err, apperrors.ErrInsufficientFunds))
	})

	s.assertMoney("75", s.balanceOf(account.ID))
}

func (s *LedgerServiceTestSuite) TestQueries() {
	alice := s.f.account(s.T(), "alice", "300")
	bob := s.f.account(s.T(), "bob", "200")
	s.f.account(s.T(), "carl", "100")

	_, err := s.f.ledger.TransferMoney(s.ctx, alice.ID, bob.ID, decimal.NewFromInt(50), "")
	s.Require().NoError(err)
	_, err = s.f.ledger.Deposit(s.ctx, alice.ID, decimal.NewFromInt(20), "")
	s.Require().NoError(err)

	found, err := s.f.ledger.FindByName(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(bob.ID, found.ID)

	found, err = s.f.ledger.FindByAccountNumber(s.ctx, " "+alice.AccountNumber()+" ")
	s.Require().NoError(err)
	s.Equal(alice.ID, found.ID)

	_, err = s.f.ledger.FindByName(s.ctx, "")
	s.True(errors.Is(err, apperrors.ErrValidation))

	records, total, err := s.f.ledger.HistoryByType(s.ctx, alice.ID, models.TransactionTypeDeposit, 0, 10)
	s.Require().NoError(err)
	s.EqualValues(1, total)
	s.Len(records, 1)

	_, _, err = s.f.ledger.HistoryByType(s.ctx, alice.ID, "bogus", 0, 10)
	s.True(errors.Is(err, apperrors.ErrValidation))

	now := time.Now().UTC()
	records, err = s.f.ledger.HistoryBetween(s.ctx, alice.ID, now.Add(-time.Hour), now.Add(time.Hour))
	s.Require().NoError(err)
	s.Len(records, 2)
	_, err = s.f.ledger.HistoryBetween(s.ctx, alice.ID, now, now.Add(-time.Hour))
	s.True(errors.Is(err, ErrInvalidDateRange))

	volume, err := s.f.ledger.TotalVolume(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.assertMoney("70", volume)

	top := s.f.ledger.TopByBalance(s.ctx, 2)
	s.Require().Len(top, 2)
	s.Equal(alice.ID, top[0].ID)
	s.Equal(bob.ID, top[1].ID)

	money, err := s.f.ledger.TotalMoney(s.ctx)
	s.Require().NoError(err)
	s.assertMoney("620", money)

	stats, err := s.f.ledger.ServerStats(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(3, stats.TotalAccounts)
	s.EqualValues(3, stats.ActiveAccounts)
	s.EqualValues(3, stats.TotalTransactions)
	s.assertMoney("120", stats.TotalVolume)
	s.EqualValues(1, stats.TransactionsByType[models.TransactionTypeDeposit])
}

func (s *LedgerServiceTestSuite) TestFormatAmount() {
	s.Equal("$1,234.50", s.f.ledger.FormatAmount(decimal.RequireFromString("1234.5")))
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// Money is only ever moved, so the sum over all accounts never changes
// however transfers interleave.
func TestTransferMoney_ConcurrentTransfersConserveMoney(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = f.account(t, "holder"+string(rune('a'+i)), "1000").ID
	}

	const transfers = 1000
	rng := rand.New(rand.NewSource(42))
	type job struct {
		from, to uuid.UUID
		amount   decimal.Decimal
	}
	jobs := make([]job, transfers)
	for i := range jobs {
		from := rng.Intn(len(ids))
		to := (from + 1 + rng.Intn(len(ids)-1)) % len(ids)
		jobs[i] = job{ids[from], ids[to], decimal.NewFromInt(int64(1 + rng.Intn(50)))}
	}

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			_, err := f.ledger.TransferMoney(ctx, j.from, j.to, j.amount, "")
			if err != nil && !errors.Is(err, apperrors.ErrInsufficientFunds) {
				t.Errorf("unexpected transfer error: %v", err)
			}
		}(j)
	}
	wg.Wait()

	total := decimal.Zero
	for _, id := range ids {
		account, err := f.store.Load(ctx, id)
		require.NoError(t, err)
		assert.False(t, account.Balance.IsNegative(), "account %s went negative", id)
		total = total.Add(account.Balance)

		cached, err := f.cache.Get(ctx, id)
		require.NoError(t, err)
		assert.True(t, cached.Balance.Equal(account.Balance), "cache diverged for %s", id)
	}
	assert.Equal(t, "5000.00", total.StringFixed(2))
	assert.Zero(t, f.locker.Held())

	money, err := f.ledger.TotalMoney(ctx)
	require.NoError(t, err)
	assert.Equal(t, "5000.00", money.StringFixed(2))
}

func TestTransferMoney_OpposingTransfersDoNotDeadlock(t *testing.T) {
	f := newLedgerFixture(t)
	ctx := context.Background()

	a := f.account(t, "left", "500")
	b := f.account(t, "right", "500")

	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, _ = f.ledger.TransferMoney(ctx, a.ID, b.ID, decimal.NewFromInt(3), "")
			}()
			go func() {
				defer wg.Done()
				_, _ = f.ledger.TransferMoney(ctx, b.ID, a.ID, decimal.NewFromInt(2), "")
			}()
		}
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(30 * time.Second):
		t.Fatal("opposing transfers did not finish")
	}

	left, err := f.store.Load(ctx, a.ID)
	require.NoError(t, err)
	right, err := f.store.Load(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "1000.00", left.Balance.Add(right.Balance).StringFixed(2))
}
