package dto

import (
	"banking-ledger/internal/models"
)

// TransferRequest moves money between two accounts
type TransferRequest struct {
	FromAccountID string `json:"from_account_id" validate:"required,uuid"`
	ToAccountID   string `json:"to_account_id" validate:"required,uuid"`
	Amount        string `json:"amount" validate:"required,money"`
	Reason        string `json:"reason" validate:"max=255"`
}

// HistoryQuery filters an account's transaction history. Start and End are
// RFC 3339 timestamps and, when both are present, override pagination.
type HistoryQuery struct {
	Type   string `query:"type" validate:"omitempty,transaction_type"`
	Start  string `query:"start"`
	End    string `query:"end"`
	Offset int    `query:"offset" validate:"gte=0"`
	Limit  int    `query:"limit" validate:"gte=0"`
}

// TransactionResponse is a ledger record with its display fields
type TransactionResponse struct {
	models.Transaction
	TypeLabel       string `json:"type_label"`
	FormattedAmount string `json:"formatted_amount"`
}

// TransactionListResponse represents a page of ledger records
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}

// TransferResponse reports both legs of a completed transfer
type TransferResponse struct {
	Reference string              `json:"reference"`
	From      AccountResponse     `json:"from"`
	To        AccountResponse     `json:"to"`
	Sent      TransactionResponse `json:"sent"`
	Received  TransactionResponse `json:"received"`
	Message   string              `json:"message"`
}
