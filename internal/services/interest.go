package services

import (
	"errors"
	"time"

	"banking-ledger/internal/config"
	apperrors "banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrBelowMinimum       = errors.New("balance is below the interest minimum")
	ErrIntervalNotElapsed = errors.New("payout interval has not elapsed")
	ErrNothingToPay       = errors.New("no interest is due")
	ErrRunInProgress      = errors.New("an interest run is already in progress")
	ErrInvalidRate        = errors.New("interest rate must be non-negative with at most six decimal places")
)

const interestRateScale = 6

var hoursPerDay = decimal.NewFromInt(24)

// scheduleTolerance absorbs tick jitter: a scheduled run that lands a
// moment short of the interval still counts as a full one.
const scheduleTolerance = time.Minute

// CalculateInterest is the single interest formula: balance × dailyRate ×
// hours / 24, rounded half-up to cents and capped at maxPayout.
func CalculateInterest(balance, dailyRate decimal.Decimal, hours int64, maxPayout decimal.Decimal) decimal.Decimal {
	if hours <= 0 || !balance.IsPositive() || !dailyRate.IsPositive() {
		return decimal.Zero
	}

	interest := models.RoundMoney(balance.Mul(dailyRate).Mul(decimal.NewFromInt(hours)).Div(hoursPerDay))
	if maxPayout.IsPositive() && interest.GreaterThan(maxPayout) {
		return maxPayout
	}
	return interest
}

// wholeHoursBetween counts completed hours from since to now
func wholeHoursBetween(since, now time.Time) int64 {
	if !now.After(since) {
		return 0
	}
	return int64(now.Sub(since) / time.Hour)
}

func intervalElapsed(since, now time.Time, interval time.Duration) bool {
	tolerance := scheduleTolerance
	if interval/10 < tolerance {
		tolerance = interval / 10
	}
	return now.Sub(since) >= interval-tolerance
}

// interestDue decides what one account is owed at now. The periodic run
// honours the payout interval; manual and forced payouts pay whatever has
// accrued so far.
func interestDue(account models.Account, cfg config.InterestConfig, now time.Time, ignoreInterval bool) (decimal.Decimal, error) {
	const op = "interest.due"

	if account.Balance.LessThan(cfg.MinimumBalance) {
		return decimal.Zero, apperrors.Validation(op, apperrors.InterestBelowMinimum, ErrBelowMinimum)
	}

	hours := wholeHoursBetween(account.LastInterestPayout, now)
	if !ignoreInterval {
		if !intervalElapsed(account.LastInterestPayout, now, cfg.PayoutInterval) {
			return decimal.Zero, apperrors.Validation(op, apperrors.InterestNothingToPay, ErrIntervalNotElapsed)
		}
		if interval := cfg.IntervalHours(); hours < interval {
			hours = interval
		}
	}

	interest := CalculateInterest(account.Balance, account.EffectiveInterestRate(cfg.DailyRate), hours, cfg.MaximumPayout)
	if !interest.IsPositive() {
		return decimal.Zero, apperrors.Validation(op, apperrors.InterestNothingToPay, ErrNothingToPay)
	}
	return interest, nil
}

func validateRate(op string, rate decimal.Decimal) error {
	if rate.IsNegative() || !rate.Equal(rate.Truncate(interestRateScale)) {
		return apperrors.Validation(op, apperrors.ValidationOutOfRange, ErrInvalidRate)
	}
	return nil
}
