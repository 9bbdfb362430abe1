package handlers

import (
	"context"
	"net/http"

	"banking-ledger/internal/dto"
	"banking-ledger/internal/models"
	"banking-ledger/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	ledger services.LedgerServiceInterface
	cache  services.AccountCacheInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(ledger services.LedgerServiceInterface, cache services.AccountCacheInterface) *AccountHandler {
	return &AccountHandler{
		ledger: ledger,
		cache:  cache,
	}
}

// OpenAccount returns the account with the given ID, creating it with the
// configured starting balance on first use
// @Summary Open or fetch an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.OpenAccountRequest true "Account ID and display name"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Database error"
// @Router /accounts [post]
func (h *AccountHandler) OpenAccount(c echo.Context) error {
	var req dto.OpenAccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return SendLedgerError(c, err)
	}

	account, err := h.cache.GetOrCreate(c.Request().Context(), uuid.MustParse(req.ID), req.Name)
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, h.ledger.FormatAmount))
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return SendLedgerError(c, err)
	}

	account, err := h.cache.Get(c.Request().Context(), id)
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, h.ledger.FormatAmount))
}

// GetByNumber resolves an XXX-XXX-XXX-XXX account number
// @Router /accounts/by-number/{number} [get]
func (h *AccountHandler) GetByNumber(c echo.Context) error {
	account, err := h.ledger.FindByAccountNumber(c.Request().Context(), c.Param("number"))
	if err != nil {
		return SendLedgerError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, h.ledger.FormatAmount))
}

// GetByName resolves a display name, case-insensitively
// @Router /accounts/by-name/{name} [get]
func (h *AccountHandler) GetByName(c echo.Context) error {
	account, err := h.ledger.FindByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return SendLedgerError(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewAccountResponse(account, h.ledger.FormatAmount))
}

// Deposit credits an account
// @Summary Deposit money
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.MoneyRequest true "Amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errors.ErrorResponse "TRANSACTION_001 - Invalid amount"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id}/deposit [post]
func (h *AccountHandler) Deposit(c echo.Context) error {
	return h.moveMoney(c, h.ledger.Deposit)
}

// Withdraw debits an account
// @Summary Withdraw money
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.MoneyRequest true "Amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_002 - Insufficient funds"
// @Router /accounts/{id}/withdraw [post]
func (h *AccountHandler) Withdraw(c echo.Context) error {
	return h.moveMoney(c, h.ledger.Withdraw)
}

type singleAccountOp func(ctx context.Context, id uuid.UUID, amount decimal.Decimal, description string) (*models.Transaction, error)

func (h *AccountHandler) moveMoney(c echo.Context, op singleAccountOp) error {
	id, err := parseAccountID(c)
	if err != nil {
		return SendLedgerError(c, err)
	}

	var req dto.MoneyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return SendLedgerError(c, err)
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendLedgerError(c, err)
	}

	record, err := op(c.Request().Context(), id, amount, req.Description)
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, transactionResponse(record, h.ledger.FormatAmount))
}
