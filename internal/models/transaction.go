package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType tags a ledger record. Display labels live in
// TransactionTypeLabels.
type TransactionType string

const (
	TransactionTypeDeposit          TransactionType = "deposit"
	TransactionTypeWithdrawal       TransactionType = "withdrawal"
	TransactionTypeTransferSent     TransactionType = "transfer_sent"
	TransactionTypeTransferReceived TransactionType = "transfer_received"
	TransactionTypeInterest         TransactionType = "interest"
	TransactionTypePurchase         TransactionType = "purchase"
	TransactionTypeSale             TransactionType = "sale"
	TransactionTypeAdminSet         TransactionType = "admin_set"
	TransactionTypeAdminGive        TransactionType = "admin_give"
	TransactionTypeAdminTake        TransactionType = "admin_take"
	TransactionTypeBusinessPayment  TransactionType = "business_payment"
	TransactionTypeStockPurchase    TransactionType = "stock_purchase"
	TransactionTypeStockSale        TransactionType = "stock_sale"
	TransactionTypeDividend         TransactionType = "dividend"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrZeroAmount             = errors.New("transaction amount cannot be zero")
	ErrAmountDirection        = errors.New("transaction amount has the wrong sign for its type")
	ErrBalanceMismatch        = errors.New("balance after must equal balance before plus amount")
	ErrTransactionImmutable   = errors.New("transaction records are immutable")
)

// TransactionTypeLabels maps each type to its display name.
var TransactionTypeLabels = map[TransactionType]string{
	TransactionTypeDeposit:          "Deposit",
	TransactionTypeWithdrawal:       "Withdrawal",
	TransactionTypeTransferSent:     "Transfer Sent",
	TransactionTypeTransferReceived: "Transfer Received",
	TransactionTypeInterest:         "Interest",
	TransactionTypePurchase:         "Purchase",
	TransactionTypeSale:             "Sale",
	TransactionTypeAdminSet:         "Admin Set",
	TransactionTypeAdminGive:        "Admin Give",
	TransactionTypeAdminTake:        "Admin Take",
	TransactionTypeBusinessPayment:  "Business Payment",
	TransactionTypeStockPurchase:    "Stock Purchase",
	TransactionTypeStockSale:        "Stock Sale",
	TransactionTypeDividend:         "Dividend",
}

// AllTransactionTypes lists every type in display order.
var AllTransactionTypes = []TransactionType{
	TransactionTypeDeposit,
	TransactionTypeWithdrawal,
	TransactionTypeTransferSent,
	TransactionTypeTransferReceived,
	TransactionTypeInterest,
	TransactionTypePurchase,
	TransactionTypeSale,
	TransactionTypeAdminSet,
	TransactionTypeAdminGive,
	TransactionTypeAdminTake,
	TransactionTypeBusinessPayment,
	TransactionTypeStockPurchase,
	TransactionTypeStockSale,
	TransactionTypeDividend,
}

// Label returns the display name of the type.
func (t TransactionType) Label() string {
	if label, ok := TransactionTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// IsValid reports whether t is a known type.
func (t TransactionType) IsValid() bool {
	_, ok := TransactionTypeLabels[t]
	return ok
}

// Direction returns +1 for types that only credit, -1 for types that only
// debit and 0 for types that may go either way.
func (t TransactionType) Direction() int {
	switch t {
	case TransactionTypeDeposit, TransactionTypeTransferReceived, TransactionTypeInterest,
		TransactionTypeSale, TransactionTypeAdminGive, TransactionTypeStockSale, TransactionTypeDividend:
		return 1
	case TransactionTypeWithdrawal, TransactionTypeTransferSent, TransactionTypePurchase,
		TransactionTypeAdminTake, TransactionTypeStockPurchase:
		return -1
	default:
		return 0
	}
}

// Transaction is one immutable ledger record. Amount is signed: negative
// for debits, positive for credits. Both legs of a transfer share a Reference.
type Transaction struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AccountID      uuid.UUID       `gorm:"type:char(36);not null;index" json:"account_id"`
	CounterpartyID *uuid.UUID      `gorm:"type:char(36)" json:"counterparty_id,omitempty"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Type           TransactionType `gorm:"type:varchar(32);not null;index" json:"type"`
	Description    string          `gorm:"type:varchar(255)" json:"description"`
	Reference      string          `gorm:"type:varchar(26);not null;index" json:"reference"`
	BalanceBefore  decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"balance_before"`
	BalanceAfter   decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"balance_after"`
	CreatedAt      time.Time       `gorm:"not null;index" json:"created_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Reference == "" {
		t.Reference = NewReference()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return t.Validate()
}

// BeforeUpdate rejects any change to a persisted record.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return ErrTransactionImmutable
}

// BeforeDelete rejects removal of a persisted record.
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return ErrTransactionImmutable
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return ErrAccountIDRequired
	}

	if !t.Type.IsValid() {
		return ErrInvalidTransactionType
	}

	for _, d := range []decimal.Decimal{t.Amount, t.BalanceBefore, t.BalanceAfter} {
		if !HasMoneyPrecision(d) {
			return ErrAmountPrecision
		}
	}

	if t.Amount.IsZero() && t.Type != TransactionTypeAdminSet {
		return ErrZeroAmount
	}

	switch t.Type.Direction() {
	case 1:
		if t.Amount.IsNegative() {
			return ErrAmountDirection
		}
	case -1:
		if t.Amount.IsPositive() {
			return ErrAmountDirection
		}
	}

	if t.BalanceBefore.IsNegative() || t.BalanceAfter.IsNegative() {
		return ErrInvalidBalance
	}

	return t.ensureBalanceIsCorrect()
}

func (t *Transaction) ensureBalanceIsCorrect() error {
	if !t.BalanceBefore.Add(t.Amount).Equal(t.BalanceAfter) {
		return ErrBalanceMismatch
	}
	return nil
}

// IsCredit returns true if the record increased the balance
func (t *Transaction) IsCredit() bool {
	return t.Amount.IsPositive()
}
