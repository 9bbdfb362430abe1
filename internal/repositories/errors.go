package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
	ErrStoreTimeout    = errors.New("store operation timed out")
	ErrAtomicPanic     = errors.New("panic inside atomic unit")
	ErrInvalidPage     = errors.New("offset and limit must be non-negative")
)

// Postgres SQLSTATEs that mean "retry the transaction".
var pgConflictCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"55P03": true, // lock_not_available
}

// MySQL error numbers for deadlock and lock wait timeout.
var mysqlConflictNumbers = map[uint16]bool{
	1213: true,
	1205: true,
}

// classifyError maps driver and gorm errors onto the ledger error kinds.
// ctx is the context the failing call ran under.
func classifyError(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsLedgerError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrAccountNotFound):
		return apperrors.NotFound(op, apperrors.AccountNotFound, ErrAccountNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.Validation(op, apperrors.AccountAlreadyExists, ErrAccountExists)
	case errors.Is(err, ErrInvalidPage):
		return apperrors.Validation(op, apperrors.ValidationOutOfRange, err)
	case errors.Is(err, models.ErrInvalidBalance):
		return apperrors.InsufficientFunds(op, apperrors.TransactionInsufficientFunds, err)
	}

	if code, ok := modelValidationCode(err); ok {
		return apperrors.Validation(op, code, err)
	}

	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.Persistence(op, apperrors.SystemStoreTimeout, fmt.Errorf("%w: %v", ErrStoreTimeout, err))
	}

	if isConflict(err) {
		return apperrors.ConcurrencyConflict(op, err)
	}

	return apperrors.Persistence(op, apperrors.SystemDatabaseError, err)
}

func modelValidationCode(err error) (apperrors.ErrorCode, bool) {
	switch {
	case errors.Is(err, models.ErrAmountPrecision):
		return apperrors.ValidationPrecision, true
	case errors.Is(err, models.ErrAccountNameRequired), errors.Is(err, models.ErrAccountNameTooLong):
		return apperrors.AccountInvalidName, true
	case errors.Is(err, models.ErrInvalidTransactionType):
		return apperrors.TransactionInvalidType, true
	case errors.Is(err, models.ErrBalanceMismatch),
		errors.Is(err, models.ErrZeroAmount),
		errors.Is(err, models.ErrAmountDirection),
		errors.Is(err, models.ErrTransactionImmutable),
		errors.Is(err, models.ErrAccountIDRequired),
		errors.Is(err, models.ErrInvalidInterestRate):
		return apperrors.TransactionValidationFailed, true
	}
	return "", false
}

func isConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgConflictCodes[pgErr.Code]
	}

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		return mysqlConflictNumbers[myErr.Number]
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code == sqlite3.ErrBusy || liteErr.Code == sqlite3.ErrLocked
	}

	return strings.Contains(err.Error(), "database is locked")
}
