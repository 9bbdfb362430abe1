package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CircuitBreakerState is the state of a circuit breaker guarding the store.
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}

// ServerStats is the economy-wide summary.
type ServerStats struct {
	TotalAccounts          int64                     `json:"total_accounts"`
	ActiveAccounts         int64                     `json:"active_accounts"`
	TotalMoney             decimal.Decimal           `json:"total_money"`
	TotalTransactions      int64                     `json:"total_transactions"`
	TotalVolume            decimal.Decimal           `json:"total_volume"`
	AverageTransactionSize decimal.Decimal           `json:"average_transaction_size"`
	TotalInterestPaid      decimal.Decimal           `json:"total_interest_paid"`
	TransactionsByType     map[TransactionType]int64 `json:"transactions_by_type"`
}

// InterestStatistics summarizes interest eligibility and payouts.
type InterestStatistics struct {
	Enabled                bool            `json:"enabled"`
	State                  string          `json:"state"`
	EligibleAccounts       int             `json:"eligible_accounts"`
	TotalEligibleBalance   decimal.Decimal `json:"total_eligible_balance"`
	AverageEligibleBalance decimal.Decimal `json:"average_eligible_balance"`
	TotalInterestPaid      decimal.Decimal `json:"total_interest_paid"`
	DailyRate              decimal.Decimal `json:"daily_rate"`
	MinimumBalance         decimal.Decimal `json:"minimum_balance"`
	MaximumPayout          decimal.Decimal `json:"maximum_payout"`
	PayoutInterval         time.Duration   `json:"payout_interval"`
	NextRunAt              *time.Time      `json:"next_run_at,omitempty"`
}

// AccountInterest describes one account's interest position.
type AccountInterest struct {
	Balance                decimal.Decimal `json:"balance"`
	InterestRate           decimal.Decimal `json:"interest_rate"`
	Eligible               bool            `json:"eligible"`
	LastInterestPayout     time.Time       `json:"last_interest_payout"`
	HoursSinceLastPayout   int64           `json:"hours_since_last_payout"`
	PotentialInterest      decimal.Decimal `json:"potential_interest"`
	NextPayout             time.Time       `json:"next_payout"`
	MinimumBalanceRequired decimal.Decimal `json:"minimum_balance_required"`
	MaximumPayout          decimal.Decimal `json:"maximum_payout"`
}
