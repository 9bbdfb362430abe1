package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a failure for callers deciding how to react.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindInsufficientFunds
	KindPersistence
	KindConcurrencyConflict
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindPersistence:
		return "persistence"
	case KindConcurrencyConflict:
		return "concurrency_conflict"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Kind sentinels for errors.Is checks, e.g. errors.Is(err, ErrNotFound).
var (
	ErrValidation          = &LedgerError{Kind: KindValidation}
	ErrNotFound            = &LedgerError{Kind: KindNotFound}
	ErrInsufficientFunds   = &LedgerError{Kind: KindInsufficientFunds}
	ErrPersistence         = &LedgerError{Kind: KindPersistence}
	ErrConcurrencyConflict = &LedgerError{Kind: KindConcurrencyConflict}
	ErrConfiguration       = &LedgerError{Kind: KindConfiguration}
)

// LedgerError is the typed error returned by every public ledger operation.
type LedgerError struct {
	Kind Kind
	Code ErrorCode
	Op   string
	Err  error
}

func (e *LedgerError) Error() string {
	msg := GetErrorMessage(e.Code)
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// Is matches kind sentinels, which carry neither a code nor a cause.
func (e *LedgerError) Is(target error) bool {
	t, ok := target.(*LedgerError)
	if !ok {
		return false
	}
	return t.Code == "" && t.Err == nil && t.Op == "" && t.Kind == e.Kind
}

// Retriable reports whether the same call may succeed if repeated. Store
// timeouts qualify; the ledger itself only retries concurrency conflicts.
func (e *LedgerError) Retriable() bool {
	return e.Kind == KindConcurrencyConflict || e.Code == SystemStoreTimeout
}

func newLedgerError(kind Kind, op string, code ErrorCode, err error) *LedgerError {
	return &LedgerError{Kind: kind, Code: code, Op: op, Err: err}
}

func Validation(op string, code ErrorCode, err error) *LedgerError {
	return newLedgerError(KindValidation, op, code, err)
}

func NotFound(op string, code ErrorCode, err error) *LedgerError {
	return newLedgerError(KindNotFound, op, code, err)
}

func InsufficientFunds(op string, code ErrorCode, err error) *LedgerError {
	return newLedgerError(KindInsufficientFunds, op, code, err)
}

func Persistence(op string, code ErrorCode, err error) *LedgerError {
	if code == "" {
		code = SystemDatabaseError
	}
	return newLedgerError(KindPersistence, op, code, err)
}

func ConcurrencyConflict(op string, err error) *LedgerError {
	return newLedgerError(KindConcurrencyConflict, op, SystemConcurrentUpdate, err)
}

func Configuration(op string, err error) *LedgerError {
	return newLedgerError(KindConfiguration, op, SystemConfigurationError, err)
}

// AsLedgerError unwraps err to its LedgerError, if any.
func AsLedgerError(err error) (*LedgerError, bool) {
	var le *LedgerError
	if stderrors.As(err, &le) {
		return le, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindUnknown for untyped errors.
func KindOf(err error) Kind {
	if le, ok := AsLedgerError(err); ok {
		return le.Kind
	}
	return KindUnknown
}

// CodeOf returns the API error code carried by err.
func CodeOf(err error) ErrorCode {
	if le, ok := AsLedgerError(err); ok && le.Code != "" {
		return le.Code
	}
	return SystemInternalError
}

// IsRetriable reports whether err is a conflict or a store timeout.
func IsRetriable(err error) bool {
	le, ok := AsLedgerError(err)
	return ok && le.Retriable()
}
