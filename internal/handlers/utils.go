package handlers

import (
	stderrors "errors"
	"fmt"

	"banking-ledger/internal/dto"
	"banking-ledger/internal/errors"
	"banking-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAccountID = stderrors.New("invalid account ID")
	ErrInvalidBody      = stderrors.New("invalid request body")

	errInvalidWindow = stderrors.New("start and end must be given together")
)

type formatter func(decimal.Decimal) string

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parseAccountID reads the :id path parameter
func parseAccountID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.Validation("http.account_id", errors.ValidationInvalidFormat, ErrInvalidAccountID)
	}
	return id, nil
}

// bindAndValidate binds the request into req and runs its validation tags
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.Validation("http.bind", errors.ValidationGeneral, ErrInvalidBody)
	}
	if err := c.Validate(req); err != nil {
		if _, ok := errors.AsLedgerError(err); ok {
			return err
		}
		return errors.Validation("http.validate", errors.ValidationGeneral, err)
	}
	return nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := models.ParseMoney(raw)
	if err != nil {
		return decimal.Zero, errors.Validation("http.amount", errors.ValidationPrecision, err)
	}
	return amount, nil
}

func transactionResponse(t *models.Transaction, format formatter) dto.TransactionResponse {
	return dto.TransactionResponse{
		Transaction:     *t,
		TypeLabel:       t.Type.Label(),
		FormattedAmount: format(t.Amount),
	}
}

func transactionResponses(records []models.Transaction, format formatter) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(records))
	for i := range records {
		out = append(out, transactionResponse(&records[i], format))
	}
	return out
}
