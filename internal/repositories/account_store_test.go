package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"banking-ledger/internal/database"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountStoreSuite runs the store against an in-memory SQLite database
type AccountStoreSuite struct {
	suite.Suite
	db    *database.DB
	store AccountStoreInterface
	ctx   context.Context
}

func (s *AccountStoreSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.store = NewAccountStore(s.db.DB, time.Second)
	s.ctx = context.Background()
}

func (s *AccountStoreSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAccountStoreSuite(t *testing.T) {
	suite.Run(t, new(AccountStoreSuite))
}

func (s *AccountStoreSuite) newAccount(name string, balance string) *models.Account {
	account := models.NewAccount(uuid.New(), name, decimal.RequireFromString(balance), time.Now().UTC())
	s.Require().NoError(s.store.Create(s.ctx, account))
	return account
}

func (s *AccountStoreSuite) TestCreateAndLoad() {
	created := s.newAccount("alice", "100.25")

	loaded, err := s.store.Load(s.ctx, created.ID)

	s.Require().NoError(err)
	s.Equal(created.ID, loaded.ID)
	s.Equal("alice", loaded.Name)
	s.True(loaded.Balance.Equal(decimal.RequireFromString("100.25")))
	s.True(loaded.IsActive)
	s.False(loaded.LastInterestPayout.IsZero())
}

func (s *AccountStoreSuite) TestCreate_Duplicate() {
	created := s.newAccount("alice", "100")

	duplicate := models.NewAccount(created.ID, "alice again", decimal.NewFromInt(5), time.Now().UTC())
	err := s.store.Create(s.ctx, duplicate)

	s.ErrorIs(err, ErrAccountExists)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(apperrors.AccountAlreadyExists, apperrors.CodeOf(err))
}

func (s *AccountStoreSuite) TestCreate_RejectsInvalidAccount() {
	account := models.NewAccount(uuid.New(), "", decimal.NewFromInt(1), time.Now().UTC())

	err := s.store.Create(s.ctx, account)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(apperrors.AccountInvalidName, apperrors.CodeOf(err))
}

func (s *AccountStoreSuite) TestLoad_NotFound() {
	_, err := s.store.Load(s.ctx, uuid.New())

	s.ErrorIs(err, ErrAccountNotFound)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountStoreSuite) TestSave_InsertsAndOverwrites() {
	account := models.NewAccount(uuid.New(), "bob", decimal.NewFromInt(10), time.Now().UTC())
	s.Require().NoError(s.store.Save(s.ctx, account))

	account.Name = "bobby"
	account.Balance = decimal.RequireFromString("11.50")
	s.Require().NoError(s.store.Save(s.ctx, account))

	loaded, err := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(err)
	s.Equal("bobby", loaded.Name)
	s.True(loaded.Balance.Equal(decimal.RequireFromString("11.50")))
}

func (s *AccountStoreSuite) TestSave_RejectsExcessPrecision() {
	account := models.NewAccount(uuid.New(), "bob", decimal.RequireFromString("1.005"), time.Now().UTC())

	err := s.store.Save(s.ctx, account)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(apperrors.ValidationPrecision, apperrors.CodeOf(err))
}

func (s *AccountStoreSuite) TestUpdateBalance() {
	account := s.newAccount("alice", "100")

	s.Require().NoError(s.store.UpdateBalance(s.ctx, account.ID, decimal.RequireFromString("42.42")))

	loaded, err := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(err)
	s.True(loaded.Balance.Equal(decimal.RequireFromString("42.42")))
	s.False(loaded.UpdatedAt.Before(account.UpdatedAt))
}

func (s *AccountStoreSuite) TestUpdateBalance_Rejections() {
	account := s.newAccount("alice", "100")

	err := s.store.UpdateBalance(s.ctx, account.ID, decimal.NewFromInt(-1))
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)

	err = s.store.UpdateBalance(s.ctx, account.ID, decimal.RequireFromString("1.001"))
	s.ErrorIs(err, apperrors.ErrValidation)

	err = s.store.UpdateBalance(s.ctx, uuid.New(), decimal.NewFromInt(1))
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountStoreSuite) TestSetActive_And_FindByName() {
	account := s.newAccount("Alice", "100")

	found, err := s.store.FindByName(s.ctx, "  alice ")
	s.Require().NoError(err)
	s.Equal(account.ID, found.ID)

	s.Require().NoError(s.store.SetActive(s.ctx, account.ID, false))

	_, err = s.store.FindByName(s.ctx, "alice")
	s.ErrorIs(err, apperrors.ErrNotFound)

	loaded, err := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(err)
	s.False(loaded.IsActive)
}

func (s *AccountStoreSuite) TestFindByAccountNumber() {
	s.newAccount("noise-1", "1")
	account := s.newAccount("alice", "100")
	s.newAccount("noise-2", "1")

	found, err := s.store.FindByAccountNumber(s.ctx, account.AccountNumber())
	s.Require().NoError(err)
	s.Equal(account.ID, found.ID)

	_, err = s.store.FindByAccountNumber(s.ctx, "not-a-number")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(apperrors.AccountInvalidNumber, apperrors.CodeOf(err))
}

func (s *AccountStoreSuite) TestSetInterestRate_And_LastPayout() {
	account := s.newAccount("alice", "100")
	paidAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.Require().NoError(s.store.SetInterestRate(s.ctx, account.ID, decimal.RequireFromString("0.025")))
	s.Require().NoError(s.store.UpdateLastInterestPayout(s.ctx, account.ID, paidAt))

	loaded, err := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(err)
	s.True(loaded.InterestRate.Equal(decimal.RequireFromString("0.025")))
	s.True(loaded.LastInterestPayout.Equal(paidAt))

	err = s.store.SetInterestRate(s.ctx, account.ID, decimal.NewFromInt(-1))
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountStoreSuite) TestTopByBalance_ActiveOnlyDescending() {
	s.newAccount("poor", "5")
	rich := s.newAccount("rich", "500")
	mid := s.newAccount("mid", "50")
	gone := s.newAccount("gone", "9000")
	s.Require().NoError(s.store.SetActive(s.ctx, gone.ID, false))

	top, err := s.store.TopByBalance(s.ctx, 2)

	s.Require().NoError(err)
	s.Require().Len(top, 2)
	s.Equal(rich.ID, top[0].ID)
	s.Equal(mid.ID, top[1].ID)
}

func (s *AccountStoreSuite) TestEligibleForInterest() {
	s.newAccount("below", "99.99")
	at := s.newAccount("at", "100")
	above := s.newAccount("above", "250")
	inactive := s.newAccount("inactive", "1000")
	s.Require().NoError(s.store.SetActive(s.ctx, inactive.ID, false))

	eligible, err := s.store.EligibleForInterest(s.ctx, decimal.NewFromInt(100))

	s.Require().NoError(err)
	ids := []uuid.UUID{}
	for _, account := range eligible {
		ids = append(ids, account.ID)
	}
	s.ElementsMatch([]uuid.UUID{at.ID, above.ID}, ids)
}

func (s *AccountStoreSuite) TestSumActiveBalances_And_Count() {
	s.newAccount("a", "0.10")
	s.newAccount("b", "0.20")
	inactive := s.newAccount("c", "1000")
	s.Require().NoError(s.store.SetActive(s.ctx, inactive.ID, false))

	sum, err := s.store.SumActiveBalances(s.ctx)
	s.Require().NoError(err)
	s.Equal("0.3", sum.String())

	total, active, err := s.store.CountAccounts(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Equal(int64(2), active)
}

func (s *AccountStoreSuite) TestAppendTransaction_ValidatesChain() {
	account := s.newAccount("alice", "100")

	good := &models.Transaction{
		AccountID:     account.ID,
		Amount:        decimal.NewFromInt(10),
		Type:          models.TransactionTypeDeposit,
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(110),
	}
	s.Require().NoError(s.store.AppendTransaction(s.ctx, good))
	s.NotZero(good.ID)
	s.NotEmpty(good.Reference)

	broken := &models.Transaction{
		AccountID:     account.ID,
		Amount:        decimal.NewFromInt(10),
		Type:          models.TransactionTypeDeposit,
		BalanceBefore: decimal.NewFromInt(110),
		BalanceAfter:  decimal.NewFromInt(130),
	}
	err := s.store.AppendTransaction(s.ctx, broken)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, models.ErrBalanceMismatch)
}

func (s *AccountStoreSuite) TestTransactionsAreImmutable() {
	account := s.newAccount("alice", "100")
	record := &models.Transaction{
		AccountID:     account.ID,
		Amount:        decimal.NewFromInt(10),
		Type:          models.TransactionTypeDeposit,
		BalanceBefore: decimal.NewFromInt(100),
		BalanceAfter:  decimal.NewFromInt(110),
	}
	s.Require().NoError(s.store.AppendTransaction(s.ctx, record))

	record.Description = "rewritten"
	s.ErrorIs(s.db.Save(record).Error, models.ErrTransactionImmutable)
	s.ErrorIs(s.db.Delete(record).Error, models.ErrTransactionImmutable)
}

func (s *AccountStoreSuite) TestRunAtomic_CommitsOnNil() {
	account := s.newAccount("alice", "100")

	err := s.store.RunAtomic(s.ctx, func(tx AccountStoreInterface) error {
		locked, err := tx.LoadForUpdate(s.ctx, account.ID)
		if err != nil {
			return err
		}
		newBalance := locked.Balance.Sub(decimal.NewFromInt(30))
		if err := tx.UpdateBalance(s.ctx, account.ID, newBalance); err != nil {
			return err
		}
		return tx.AppendTransaction(s.ctx, &models.Transaction{
			AccountID:     account.ID,
			Amount:        decimal.NewFromInt(-30),
			Type:          models.TransactionTypeWithdrawal,
			BalanceBefore: locked.Balance,
			BalanceAfter:  newBalance,
		})
	})
	s.Require().NoError(err)

	loaded, err := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(err)
	s.True(loaded.Balance.Equal(decimal.NewFromInt(70)))
}

func (s *AccountStoreSuite) TestRunAtomic_RollsBackOnError() {
	account := s.newAccount("alice", "100")
	boom := errors.New("boom")

	err := s.store.RunAtomic(s.ctx, func(tx AccountStoreInterface) error {
		if err := tx.UpdateBalance(s.ctx, account.ID, decimal.NewFromInt(1)); err != nil {
			return err
		}
		return boom
	})

	s.ErrorIs(err, boom)
	s.ErrorIs(err, apperrors.ErrPersistence)
	loaded, loadErr := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(loadErr)
	s.True(loaded.Balance.Equal(decimal.NewFromInt(100)))
}

func (s *AccountStoreSuite) TestRunAtomic_RollsBackOnPanic() {
	account := s.newAccount("alice", "100")

	err := s.store.RunAtomic(s.ctx, func(tx AccountStoreInterface) error {
		if err := tx.UpdateBalance(s.ctx, account.ID, decimal.NewFromInt(1)); err != nil {
			return err
		}
		panic("mid-transfer crash")
	})

	s.ErrorIs(err, ErrAtomicPanic)
	s.ErrorIs(err, apperrors.ErrPersistence)
	loaded, loadErr := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(loadErr)
	s.True(loaded.Balance.Equal(decimal.NewFromInt(100)))
}

func (s *AccountStoreSuite) TestRunAtomic_NestedJoinsOuter() {
	account := s.newAccount("alice", "100")

	err := s.store.RunAtomic(s.ctx, func(tx AccountStoreInterface) error {
		inner := tx.RunAtomic(s.ctx, func(nested AccountStoreInterface) error {
			return nested.UpdateBalance(s.ctx, account.ID, decimal.NewFromInt(5))
		})
		if inner != nil {
			return inner
		}
		return errors.New("outer fails")
	})

	s.Error(err)
	loaded, loadErr := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(loadErr)
	s.True(loaded.Balance.Equal(decimal.NewFromInt(100)))
}

func (s *AccountStoreSuite) TestConcurrentAtomicUpdates_SingleConnection() {
	account := s.newAccount("alice", "0")
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// callers serialize per account before entering the unit
			mu.Lock()
			defer mu.Unlock()
			err := s.store.RunAtomic(s.ctx, func(tx AccountStoreInterface) error {
				locked, err := tx.LoadForUpdate(s.ctx, account.ID)
				if err != nil {
					return err
				}
				return tx.UpdateBalance(s.ctx, account.ID, locked.Balance.Add(decimal.NewFromInt(1)))
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	loaded, err := s.store.Load(s.ctx, account.ID)
	s.Require().NoError(err)
	s.True(loaded.Balance.Equal(decimal.NewFromInt(20)))
}
