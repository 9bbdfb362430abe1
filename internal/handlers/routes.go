package handlers

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups every handler mounted by RegisterRoutes
type Handlers struct {
	Account     *AccountHandler
	Transaction *TransactionHandler
	Report      *ReportHandler
	Admin       *AdminHandler
	Interest    *InterestHandler
	Health      *HealthCheckHandler
}

// RegisterRoutes mounts the JSON API under /api/v1 and the health check at
// the root. Middleware is the caller's concern.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)

	api := e.Group("/api/v1")

	api.POST("/accounts", h.Account.OpenAccount)
	api.GET("/accounts/by-number/:number", h.Account.GetByNumber)
	api.GET("/accounts/by-name/:name", h.Account.GetByName)
	api.GET("/accounts/:id", h.Account.GetAccount)
	api.POST("/accounts/:id/deposit", h.Account.Deposit)
	api.POST("/accounts/:id/withdraw", h.Account.Withdraw)
	api.GET("/accounts/:id/transactions", h.Transaction.History)

	api.POST("/transfers", h.Transaction.Transfer)

	api.GET("/leaderboard", h.Report.Leaderboard)
	api.GET("/stats", h.Report.Stats)
	api.GET("/interest/accounts/:id", h.Interest.AccountInterest)

	admin := api.Group("/admin")
	admin.POST("/accounts/:id/set", h.Admin.SetBalance)
	admin.POST("/accounts/:id/give", h.Admin.GiveMoney)
	admin.POST("/accounts/:id/take", h.Admin.TakeMoney)
	admin.POST("/accounts/:id/reactivate", h.Admin.ReactivateAccount)
	admin.DELETE("/accounts/:id", h.Admin.DeactivateAccount)

	admin.POST("/interest/payout", h.Interest.ForcePayout)
	admin.POST("/interest/accounts/:id", h.Interest.PayAccount)
	admin.PUT("/interest/accounts/:id/rate", h.Interest.SetRate)
	admin.GET("/interest/stats", h.Interest.Statistics)
	admin.PUT("/interest/config", h.Interest.UpdateConfig)
}
