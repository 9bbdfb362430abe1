package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"banking-ledger/internal/config"
	"banking-ledger/internal/database"
	"banking-ledger/internal/handlers"
	"banking-ledger/internal/middleware"
	"banking-ledger/internal/models"
	"banking-ledger/internal/repositories"
	"banking-ledger/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const breakerService = "account_store"

// App owns every long-lived component of the ledger server.
type App struct {
	Config   *config.Config
	DB       *database.DB
	Echo     *echo.Echo
	Registry *prometheus.Registry

	Economy   *config.EconomyHolder
	Store     repositories.AccountStoreInterface
	Cache     *services.AccountCache
	Ledger    *services.LedgerService
	Scheduler *services.InterestScheduler
	Breaker   services.CircuitBreakerInterface

	limiter *middleware.RateLimiter
	logger  *slog.Logger
	cancel  context.CancelFunc
}

// New wires the store, the services and the HTTP surface on top of db.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := repositories.NewAccountStore(db.DB, cfg.Database.StoreTimeout)
	transactions := repositories.NewTransactionRepository(db.DB, cfg.Database.StoreTimeout)

	metrics := services.NewPrometheusMetrics(registry)
	audit := services.NewAuditLogger(logger)
	economy := config.NewEconomyHolder(cfg.Economy)
	locker := services.NewAccountLocker()
	cache := services.NewAccountCache(store, economy, audit, metrics, logger)

	breaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig(),
		func(from, to models.CircuitBreakerState) {
			audit.LogCircuitBreakerStateChange(context.Background(), breakerService, from.String(), to.String())
			metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), map[string]string{"service": breakerService})
		})

	ledger := services.NewLedgerService(store, transactions, cache, locker, economy, breaker, audit, metrics, logger)
	scheduler := services.NewInterestScheduler(ledger, cache, store, transactions, locker, economy, audit, metrics, logger)

	a := &App{
		Config:    cfg,
		DB:        db,
		Registry:  registry,
		Economy:   economy,
		Store:     store,
		Cache:     cache,
		Ledger:    ledger,
		Scheduler: scheduler,
		Breaker:   breaker,
		limiter:   middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst),
		logger:    logger,
	}
	a.Echo = a.newEcho()

	return a, nil
}

func (a *App) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = a.Config.IsDevelopment()
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(a.Registry, a.logger).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(a.logger))
	e.Use(middleware.SecurityHeaders(a.Config.IsDevelopment()))
	e.Use(a.limiter.Middleware())

	handlers.RegisterRoutes(e, handlers.Handlers{
		Account:     handlers.NewAccountHandler(a.Ledger, a.Cache),
		Transaction: handlers.NewTransactionHandler(a.Ledger),
		Report:      handlers.NewReportHandler(a.Ledger),
		Admin:       handlers.NewAdminHandler(a.Ledger, a.Cache),
		Interest:    handlers.NewInterestHandler(a.Scheduler, a.Ledger),
		Health:      handlers.NewHealthCheckHandler(a.DB, a.Breaker, a.Scheduler),
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})))

	return e
}

// Start launches the background workers. They run until Shutdown.
func (a *App) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)

	go a.limiter.Run(ctx)

	if err := a.Scheduler.Start(ctx); err != nil {
		a.cancel()
		return fmt.Errorf("failed to start interest scheduler: %w", err)
	}

	a.logger.Info("Ledger started",
		"driver", a.DB.Driver(),
		"interest", a.Scheduler.State().String(),
	)
	return nil
}

// Reconfigure installs a new economy. It goes through the scheduler so the
// payout loop restarts when its interval changed.
func (a *App) Reconfigure(ctx context.Context, economy config.EconomyConfig) error {
	return a.Scheduler.ReconfigureEconomy(ctx, economy)
}

// Shutdown drains HTTP traffic, stops the workers and closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error

	if err := a.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errs = append(errs, fmt.Errorf("failed to shut down http server: %w", err))
	}

	a.Scheduler.Stop()
	if a.cancel != nil {
		a.cancel()
	}

	if err := a.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}

	a.logger.Info("Ledger stopped")
	return errors.Join(errs...)
}
