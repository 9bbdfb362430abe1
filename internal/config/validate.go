package config

import (
	"errors"
	"fmt"
	"strings"

	apperrors "banking-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeStartingBalance = errors.New("starting balance cannot be negative")
	ErrNegativeDailyRate       = errors.New("interest daily rate cannot be negative")
	ErrNegativeMinimumBalance  = errors.New("interest minimum balance cannot be negative")
	ErrNonPositiveMaxPayout    = errors.New("interest maximum payout must be positive")
	ErrNonPositiveInterval     = errors.New("interest payout interval must be positive")
	ErrMoneyPrecision          = errors.New("monetary settings may carry at most two decimal places")
)

var structValidator = validator.New()

// Validate checks the whole configuration and returns a configuration error
// naming every invalid field.
func (c *Config) Validate() error {
	var problems []string

	for _, section := range []interface{}{c.Server, c.Database, c.Security, c.Logging} {
		problems = append(problems, structProblems(section)...)
	}
	if err := c.Economy.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return apperrors.Configuration("config.validate", errors.New(strings.Join(problems, "; ")))
	}
	return nil
}

// Validate checks the economy settings.
func (e EconomyConfig) Validate() error {
	problems := structProblems(e)

	if e.StartingBalance.IsNegative() {
		problems = append(problems, ErrNegativeStartingBalance.Error())
	}
	if e.Interest.DailyRate.IsNegative() {
		problems = append(problems, ErrNegativeDailyRate.Error())
	}
	if e.Interest.MinimumBalance.IsNegative() {
		problems = append(problems, ErrNegativeMinimumBalance.Error())
	}
	if e.Interest.PayoutInterval <= 0 {
		problems = append(problems, ErrNonPositiveInterval.Error())
	}
	if !e.Interest.MaximumPayout.IsPositive() {
		problems = append(problems, ErrNonPositiveMaxPayout.Error())
	}
	for _, d := range []decimal.Decimal{e.StartingBalance, e.Interest.MinimumBalance, e.Interest.MaximumPayout} {
		if !d.Equal(d.Truncate(2)) {
			problems = append(problems, ErrMoneyPrecision.Error())
			break
		}
	}

	if len(problems) > 0 {
		return apperrors.Configuration("config.economy", errors.New(strings.Join(problems, "; ")))
	}
	return nil
}

func structProblems(s interface{}) []string {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return problems
}
