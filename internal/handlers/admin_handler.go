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

// AdminHandler handles administrative balance and status changes
type AdminHandler struct {
	ledger services.LedgerServiceInterface
	cache  services.AccountCacheInterface
}

func NewAdminHandler(ledger services.LedgerServiceInterface, cache services.AccountCacheInterface) *AdminHandler {
	return &AdminHandler{
		ledger: ledger,
		cache:  cache,
	}
}

// SetBalance overwrites an account's balance
// @Summary Set balance
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.AdminAmountRequest true "Target balance"
// @Success 200 {object} dto.AdminActionResponse
// @Router /admin/accounts/{id}/set [post]
func (h *AdminHandler) SetBalance(c echo.Context) error {
	return h.adjust(c, h.ledger.AdminSet, "Balance set to")
}

// GiveMoney credits an account from outside the economy
// @Router /admin/accounts/{id}/give [post]
func (h *AdminHandler) GiveMoney(c echo.Context) error {
	return h.adjust(c, h.ledger.AdminGive, "Gave")
}

// TakeMoney debits an account, never below zero
// @Router /admin/accounts/{id}/take [post]
func (h *AdminHandler) TakeMoney(c echo.Context) error {
	return h.adjust(c, h.ledger.AdminTake, "Took")
}

type adminOp func(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*models.Transaction, error)

func (h *AdminHandler) adjust(c echo.Context, op adminOp, verb string) error {
	id, err := parseAccountID(c)
	if err != nil {
		return SendLedgerError(c, err)
	}

	var req dto.AdminAmountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return SendLedgerError(c, err)
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return SendLedgerError(c, err)
	}

	ctx := c.Request().Context()
	record, err := op(ctx, id, amount)
	if err != nil {
		return SendLedgerError(c, err)
	}
	account, err := h.cache.Get(ctx, id)
	if err != nil {
		return SendLedgerError(c, err)
	}

	// take reports what was actually removed after clamping at zero
	shown := record.Amount.Abs()
	if record.Type == models.TransactionTypeAdminSet {
		shown = record.BalanceAfter
	}
	tx := transactionResponse(record, h.ledger.FormatAmount)
	return c.JSON(http.StatusOK, dto.AdminActionResponse{
		Account:     dto.NewAccountResponse(account, h.ledger.FormatAmount),
		Transaction: &tx,
		Message:     verb + " " + h.ledger.FormatAmount(shown),
	})
}

// DeactivateAccount soft-deletes an account. Its history is kept.
// @Summary Deactivate account
// @Tags Admin
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} dto.AdminActionResponse
// @Router /admin/accounts/{id} [delete]
func (h *AdminHandler) DeactivateAccount(c echo.Context) error {
	return h.setActive(c, h.ledger.Deactivate, "Account deactivated")
}

// ReactivateAccount restores a soft-deleted account
// @Router /admin/accounts/{id}/reactivate [post]
func (h *AdminHandler) ReactivateAccount(c echo.Context) error {
	return h.setActive(c, h.ledger.Reactivate, "Account reactivated")
}

func (h *AdminHandler) setActive(c echo.Context, op func(context.Context, uuid.UUID) error, message string) error {
	id, err := parseAccountID(c)
	if err != nil {
		return SendLedgerError(c, err)
	}

	ctx := c.Request().Context()
	if err := op(ctx, id); err != nil {
		return SendLedgerError(c, err)
	}
	account, err := h.cache.Get(ctx, id)
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AdminActionResponse{
		Account: dto.NewAccountResponse(account, h.ledger.FormatAmount),
		Message: message,
	})
}
