package validation

import (
	"reflect"
	"strings"
	"sync"

	"banking-ledger/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the ledger's custom rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("money_nonnegative", validateNonNegativeMoney)
	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s against its struct tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateMoney accepts decimal strings greater than zero with at most two
// fractional digits
func validateMoney(fl validator.FieldLevel) bool {
	amount, err := models.ParseMoney(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.IsPositive()
}

func validateNonNegativeMoney(fl validator.FieldLevel) bool {
	amount, err := models.ParseMoney(fl.Field().String())
	if err != nil {
		return false
	}
	return !amount.IsNegative()
}

// validateAccountNumber checks the XXX-XXX-XXX-XXX display format
func validateAccountNumber(fl validator.FieldLevel) bool {
	return models.IsValidAccountNumber(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.TransactionType(strings.ToLower(fl.Field().String())).IsValid()
}
