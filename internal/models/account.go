package models

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxAccountNameLength = 64

	accountNumberDigits = 12
	accountNumberGroup  = 3
)

var (
	ErrInvalidBalance      = errors.New("balance cannot be negative")
	ErrInvalidInterestRate = errors.New("interest rate cannot be negative")
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountNameTooLong  = errors.New("account name is too long")
	ErrAccountIDRequired   = errors.New("account ID is required")
)

// Account is a holder's balance. It is never physically deleted; IsActive
// marks soft-deleted accounts.
type Account struct {
	ID                 uuid.UUID       `gorm:"type:char(36);primaryKey" json:"id"`
	Name               string          `gorm:"type:varchar(64);not null;index" json:"name"`
	Balance            decimal.Decimal `gorm:"type:decimal(20,2);not null;default:0" json:"balance"`
	IsActive           bool            `gorm:"not null;index" json:"is_active"`
	InterestRate       decimal.Decimal `gorm:"type:decimal(10,6);not null;default:0" json:"interest_rate"`
	LastInterestPayout time.Time       `gorm:"not null" json:"last_interest_payout"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

// NewAccount builds an active account with the given opening balance. The
// interest clock starts at creation time.
func NewAccount(id uuid.UUID, name string, openingBalance decimal.Decimal, now time.Time) *Account {
	return &Account{
		ID:                 id,
		Name:               strings.TrimSpace(name),
		Balance:            openingBalance,
		IsActive:           true,
		InterestRate:       decimal.Zero,
		LastInterestPayout: now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}
	if a.LastInterestPayout.IsZero() {
		a.LastInterestPayout = a.CreatedAt
	}

	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrAccountIDRequired
	}

	name := strings.TrimSpace(a.Name)
	if name == "" {
		return ErrAccountNameRequired
	}
	if len(name) > MaxAccountNameLength {
		return ErrAccountNameTooLong
	}

	if a.Balance.IsNegative() {
		return ErrInvalidBalance
	}
	if !HasMoneyPrecision(a.Balance) {
		return ErrAmountPrecision
	}

	if a.InterestRate.IsNegative() {
		return ErrInvalidInterestRate
	}

	return nil
}

// EffectiveInterestRate returns the account's own daily rate, or the fallback
// when the account has none.
func (a *Account) EffectiveInterestRate(fallback decimal.Decimal) decimal.Decimal {
	if a.InterestRate.IsPositive() {
		return a.InterestRate
	}
	return fallback
}

// AccountNumber returns the display account number, a pure function of the
// account ID formatted as XXX-XXX-XXX-XXX.
func (a *Account) AccountNumber() string {
	return AccountNumberFor(a.ID)
}

// AccountNumberFor derives the display account number for an ID.
func AccountNumberFor(id uuid.UUID) string {
	sum := sha256.Sum256(id[:])
	n := binary.BigEndian.Uint64(sum[:8]) % 1_000_000_000_000
	digits := fmt.Sprintf("%0*d", accountNumberDigits, n)

	groups := make([]string, 0, accountNumberDigits/accountNumberGroup)
	for i := 0; i < len(digits); i += accountNumberGroup {
		groups = append(groups, digits[i:i+accountNumberGroup])
	}
	return strings.Join(groups, "-")
}

// IsValidAccountNumber reports whether s has the XXX-XXX-XXX-XXX shape.
func IsValidAccountNumber(s string) bool {
	if len(s) != accountNumberDigits+accountNumberDigits/accountNumberGroup-1 {
		return false
	}
	for i, r := range s {
		if (i+1)%(accountNumberGroup+1) == 0 {
			if r != '-' {
				return false
			}
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
