package dto

import (
	"banking-ledger/internal/models"
)

// InterestConfigRequest replaces the interest settings. Durations use Go
// syntax, e.g. "24h".
type InterestConfigRequest struct {
	Enabled        *bool  `json:"enabled" validate:"required"`
	DailyRate      string `json:"daily_rate" validate:"required,numeric"`
	MinimumBalance string `json:"minimum_balance" validate:"required,money_nonnegative"`
	MaximumPayout  string `json:"maximum_payout" validate:"required,money"`
	PayoutInterval string `json:"payout_interval" validate:"required"`
}

// InterestRateRequest sets an account's own daily rate. Zero falls back to
// the economy-wide rate.
type InterestRateRequest struct {
	Rate string `json:"rate" validate:"required,numeric"`
}

// AccountInterestResponse describes an account's interest position
type AccountInterestResponse struct {
	AccountID string `json:"account_id"`
	*models.AccountInterest
	FormattedPotential string `json:"formatted_potential"`
}

// PayoutResponse reports a single-account payout
type PayoutResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Message     string              `json:"message"`
}
