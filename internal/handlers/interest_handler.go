package handlers

import (
	"net/http"
	"time"

	"banking-ledger/internal/config"
	"banking-ledger/internal/dto"
	"banking-ledger/internal/errors"
	"banking-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// InterestHandler exposes the interest scheduler
type InterestHandler struct {
	scheduler services.InterestSchedulerInterface
	ledger    services.LedgerServiceInterface
}

func NewInterestHandler(scheduler services.InterestSchedulerInterface, ledger services.LedgerServiceInterface) *InterestHandler {
	return &InterestHandler{
		scheduler: scheduler,
		ledger:    ledger,
	}
}

// ForcePayout runs a payout over every eligible account now, ignoring the
// payout interval
// @Summary Force interest payout
// @Tags Interest
// @Produce json
// @Success 200 {object} services.CycleReport
// @Failure 409 {object} errors.ErrorResponse "INTEREST_003 - A payout run is already in progress"
// @Router /admin/interest/payout [post]
func (h *InterestHandler) ForcePayout(c echo.Context) error {
	report, err := h.scheduler.ForcePayout(c.Request().Context())
	if err != nil {
		return SendLedgerError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

// PayAccount pays one account what has accrued so far
// @Summary Manual interest payout
// @Tags Interest
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 201 {object} dto.PayoutResponse
// @Failure 422 {object} errors.ErrorResponse "INTEREST_001 - Balance below the interest minimum"
// @Router /admin/interest/accounts/{id} [post]
func (h *InterestHandler) PayAccount(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return SendLedgerError(c, err)
	}

	record, err := h.scheduler.ManualPayout(c.Request().Context(), id)
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.PayoutResponse{
		Transaction: transactionResponse(record, h.ledger.FormatAmount),
		Message:     "Paid " + h.ledger.FormatAmount(record.Amount) + " interest",
	})
}

// AccountInterest describes an account's accrued interest and next payout
// @Summary Account interest
// @Tags Interest
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountInterestResponse
// @Router /interest/accounts/{id} [get]
func (h *InterestHandler) AccountInterest(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return SendLedgerError(c, err)
	}

	info, err := h.scheduler.AccountInterest(c.Request().Context(), id)
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountInterestResponse{
		AccountID:          id.String(),
		AccountInterest:    info,
		FormattedPotential: h.ledger.FormatAmount(info.PotentialInterest),
	})
}

// SetRate gives an account its own daily rate
// @Router /admin/interest/accounts/{id}/rate [put]
func (h *InterestHandler) SetRate(c echo.Context) error {
	id, err := parseAccountID(c)
	if err != nil {
		return SendLedgerError(c, err)
	}

	var req dto.InterestRateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return SendLedgerError(c, err)
	}
	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid rate"))
	}

	ctx := c.Request().Context()
	if err := h.scheduler.SetInterestRate(ctx, id, rate); err != nil {
		return SendLedgerError(c, err)
	}
	info, err := h.scheduler.AccountInterest(ctx, id)
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountInterestResponse{
		AccountID:          id.String(),
		AccountInterest:    info,
		FormattedPotential: h.ledger.FormatAmount(info.PotentialInterest),
	})
}

// Statistics summarizes interest eligibility and payouts
// @Summary Interest statistics
// @Tags Interest
// @Produce json
// @Success 200 {object} models.InterestStatistics
// @Router /admin/interest/stats [get]
func (h *InterestHandler) Statistics(c echo.Context) error {
	stats, err := h.scheduler.Statistics(c.Request().Context())
	if err != nil {
		return SendLedgerError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// UpdateConfig replaces the interest settings. The scheduler restarts when
// the interval or the enabled flag changed.
// @Summary Update interest configuration
// @Tags Interest
// @Accept json
// @Produce json
// @Param request body dto.InterestConfigRequest true "Interest settings"
// @Success 200 {object} models.InterestStatistics
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_004 - Invalid configuration"
// @Router /admin/interest/config [put]
func (h *InterestHandler) UpdateConfig(c echo.Context) error {
	var req dto.InterestConfigRequest
	if err := bindAndValidate(c, &req); err != nil {
		return SendLedgerError(c, err)
	}

	cfg, err := interestConfigFrom(req)
	if err != nil {
		return SendError(c, errors.InterestInvalidConfig, errors.WithDetails(err.Error()))
	}

	ctx := c.Request().Context()
	if err := h.scheduler.Reconfigure(ctx, cfg); err != nil {
		if errors.KindOf(err) == errors.KindConfiguration {
			return SendError(c, errors.InterestInvalidConfig, errors.WithDetails(err.Error()))
		}
		return SendLedgerError(c, err)
	}

	stats, err := h.scheduler.Statistics(ctx)
	if err != nil {
		return SendLedgerError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func interestConfigFrom(req dto.InterestConfigRequest) (config.InterestConfig, error) {
	rate, err := decimal.NewFromString(req.DailyRate)
	if err != nil {
		return config.InterestConfig{}, err
	}
	minimum, err := decimal.NewFromString(req.MinimumBalance)
	if err != nil {
		return config.InterestConfig{}, err
	}
	maximum, err := decimal.NewFromString(req.MaximumPayout)
	if err != nil {
		return config.InterestConfig{}, err
	}
	interval, err := time.ParseDuration(req.PayoutInterval)
	if err != nil {
		return config.InterestConfig{}, err
	}

	return config.InterestConfig{
		Enabled:        *req.Enabled,
		DailyRate:      rate,
		MinimumBalance: minimum,
		MaximumPayout:  maximum,
		PayoutInterval: interval,
	}, nil
}
