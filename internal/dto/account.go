package dto

import (
	"time"

	"banking-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// Account Request DTOs

// OpenAccountRequest opens an account, or returns it unchanged when the ID
// is already known.
type OpenAccountRequest struct {
	ID   string `json:"id" validate:"required,uuid"`
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// MoneyRequest carries a single positive amount
type MoneyRequest struct {
	Amount      string `json:"amount" validate:"required,money"`
	Description string `json:"description" validate:"max=255"`
}

// Account Response DTOs

// AccountResponse represents a single account in API responses
type AccountResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	AccountNumber      string          `json:"account_number"`
	Balance            decimal.Decimal `json:"balance"`
	FormattedBalance   string          `json:"formatted_balance"`
	IsActive           bool            `json:"is_active"`
	InterestRate       decimal.Decimal `json:"interest_rate"`
	LastInterestPayout time.Time       `json:"last_interest_payout"`
	CreatedAt          time.Time       `json:"created_at"`
}

// NewAccountResponse renders account, formatting its balance with format.
func NewAccountResponse(account *models.Account, format func(decimal.Decimal) string) AccountResponse {
	return AccountResponse{
		ID:                 account.ID.String(),
		Name:               account.Name,
		AccountNumber:      account.AccountNumber(),
		Balance:            account.Balance,
		FormattedBalance:   format(account.Balance),
		IsActive:           account.IsActive,
		InterestRate:       account.InterestRate,
		LastInterestPayout: account.LastInterestPayout,
		CreatedAt:          account.CreatedAt,
	}
}

// LeaderboardEntry is one ranked account
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	AccountResponse
}

// LeaderboardResponse lists the richest active accounts
type LeaderboardResponse struct {
	Accounts []LeaderboardEntry `json:"accounts"`
	Limit    int                `json:"limit"`
}

// StatsResponse is the economy-wide summary with formatted totals
type StatsResponse struct {
	*models.ServerStats
	FormattedTotalMoney string `json:"formatted_total_money"`
}
