package handlers

import (
	"net/http"

	"banking-ledger/internal/dto"
	"banking-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultLeaderboardSize = 10
	maxLeaderboardSize     = 100
)

// ReportHandler serves the economy-wide read models
type ReportHandler struct {
	ledger services.LedgerServiceInterface
}

func NewReportHandler(ledger services.LedgerServiceInterface) *ReportHandler {
	return &ReportHandler{ledger: ledger}
}

// Leaderboard lists the richest active accounts
// @Summary Leaderboard
// @Tags Reports
// @Produce json
// @Param limit query int false "Number of accounts" default(10)
// @Success 200 {object} dto.LeaderboardResponse
// @Router /leaderboard [get]
func (h *ReportHandler) Leaderboard(c echo.Context) error {
	limit := getIntParam(c, "limit", defaultLeaderboardSize)
	if limit < 1 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	accounts := h.ledger.TopByBalance(c.Request().Context(), limit)

	entries := make([]dto.LeaderboardEntry, 0, len(accounts))
	for i := range accounts {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:            i + 1,
			AccountResponse: dto.NewAccountResponse(&accounts[i], h.ledger.FormatAmount),
		})
	}

	return c.JSON(http.StatusOK, dto.LeaderboardResponse{Accounts: entries, Limit: limit})
}

// Stats returns the economy-wide summary
// @Summary Server statistics
// @Tags Reports
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /stats [get]
func (h *ReportHandler) Stats(c echo.Context) error {
	stats, err := h.ledger.ServerStats(c.Request().Context())
	if err != nil {
		return SendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.StatsResponse{
		ServerStats:         stats,
		FormattedTotalMoney: h.ledger.FormatAmount(stats.TotalMoney),
	})
}
