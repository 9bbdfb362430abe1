package dto

// AdminAmountRequest carries the amount for an administrative balance change.
// Zero is accepted so that set can empty an account.
type AdminAmountRequest struct {
	Amount string `json:"amount" validate:"required,money_nonnegative"`
}

// AdminActionResponse reports the result of an administrative change
type AdminActionResponse struct {
	Account     AccountResponse      `json:"account"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Message     string               `json:"message"`
}
