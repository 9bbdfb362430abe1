package handlers

import (
	"net/http"
	"strings"
	"time"

	"banking-ledger/internal/dto"
	"banking-ledger/internal/errors"
	"banking-ledger/internal/models"
	"banking-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// TransactionHandler handles transfers and ledger history
type TransactionHandler struct {
	ledger services.LedgerServiceInterface
}

func NewTransactionHandler(ledger services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// Transfer moves money between two accounts atomically
// @Summary Transfer money
// @Tags Transfers
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSFER_001 - Cannot transfer to the same account"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 422 {object} errors.ErrorResponse "TRANSFER_002 - Insufficient funds"
// @Router /transfers [post]
func (h *TransactionHandler) Transfer(c echo.Context) error {
	var req dto.TransferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return SendLedgerError(c, err)
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendLedgerError(c, err)
	}

	result, err := h.ledger.TransferMoney(c.Request().Context(),
		uuid.MustParse(req.FromAccountID), uuid.MustParse(req.ToAccountID), amount, req.Reason)
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.TransferResponse{
		Reference: result.Reference,
		From:      dto.NewAccountResponse(&result.From, h.ledger.FormatAmount),
		To:        dto.NewAccountResponse(&result.To, h.ledger.FormatAmount),
		Sent:      transactionResponse(&result.Sent, h.ledger.FormatAmount),
		Received:  transactionResponse(&result.Received, h.ledger.FormatAmount),
		Message:   "Transferred " + h.ledger.FormatAmount(amount),
	})
}

// History lists an account's ledger records, newest first. A start/end
// window replaces pagination; type filters by transaction type.
// @Summary Transaction history
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param type query string false "Transaction type"
// @Param start query string false "RFC 3339 start of window"
// @Param end query string false "RFC 3339 end of window"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(20)
// @Success 200 {object} dto.TransactionListResponse
// @Router /accounts/{id}/transactions [get]
func (h *TransactionHandler) History(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return SendLedgerError(c, err)
	}

	var q dto.HistoryQuery
	if err := bindAndValidate(c, &q); err != nil {
		return SendLedgerError(c, err)
	}
	if q.Limit == 0 {
		q.Limit = defaultHistoryLimit
	}
	if q.Limit > maxHistoryLimit {
		q.Limit = maxHistoryLimit
	}

	ctx := c.Request().Context()

	if q.Start != "" || q.End != "" {
		start, end, err := parseWindow(q.Start, q.End)
		if err != nil {
			return SendLedgerError(c, err)
		}
		records, err := h.ledger.HistoryBetween(ctx, id, start, end)
		if err != nil {
			return SendLedgerError(c, err)
		}
		return c.JSON(http.StatusOK, dto.TransactionListResponse{
			Transactions: transactionResponses(records, h.ledger.FormatAmount),
			Total:        int64(len(records)),
			Limit:        len(records),
		})
	}

	var (
		records []models.Transaction
		total   int64
	)
	if q.Type != "" {
		records, total, err = h.ledger.HistoryByType(ctx, id, models.TransactionType(strings.ToLower(q.Type)), q.Offset, q.Limit)
	} else {
		records, total, err = h.ledger.History(ctx, id, q.Offset, q.Limit)
	}
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactionResponses(records, h.ledger.FormatAmount),
		Total:        total,
		Offset:       q.Offset,
		Limit:        q.Limit,
	})
}

func parseWindow(rawStart, rawEnd string) (time.Time, time.Time, error) {
	if rawStart == "" || rawEnd == "" {
		return time.Time{}, time.Time{}, errors.Validation("http.history_window", errors.ValidationRequiredField,
			errInvalidWindow)
	}
	start, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Validation("http.history_window", errors.ValidationInvalidFormat, err)
	}
	end, err := time.Parse(time.RFC3339, rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Validation("http.history_window", errors.ValidationInvalidFormat, err)
	}
	return start, end, nil
}
