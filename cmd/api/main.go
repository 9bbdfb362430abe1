package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"banking-ledger/internal/app"
	"banking-ledger/internal/config"
	"banking-ledger/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	if cfg.EconomyFile != "" {
		economy, err := config.LoadEconomyFile(cfg.EconomyFile, cfg.Economy)
		if err != nil {
			logger.Error("Failed to load economy file", "path", cfg.EconomyFile, "error", err)
			os.Exit(1)
		}
		cfg.Economy = economy
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	ledger, err := app.New(cfg, db, logger)
	if err != nil {
		logger.Error("Failed to build application", "error", err)
		_ = db.Close()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ledger.Start(ctx); err != nil {
		logger.Error("Failed to start application", "error", err)
		_ = db.Close()
		os.Exit(1)
	}

	srv := ledger.Echo.Server
	srv.Addr = net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	srv.ReadTimeout = cfg.Server.ReadTimeout
	srv.WriteTimeout = cfg.Server.WriteTimeout

	go func() {
		logger.Info("Starting server", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := ledger.Echo.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	go reloadOnHangup(ctx, ledger, cfg, logger)

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := ledger.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown finished with errors", "error", err)
		os.Exit(1)
	}
}

// reloadOnHangup re-reads the economy file on SIGHUP
func reloadOnHangup(ctx context.Context, ledger *app.App, cfg *config.Config, logger *slog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
		}

		if cfg.EconomyFile == "" {
			logger.Warn("SIGHUP ignored, ECONOMY_CONFIG_FILE is not set")
			continue
		}
		economy, err := config.LoadEconomyFile(cfg.EconomyFile, ledger.Economy.Get())
		if err != nil {
			logger.Error("Failed to reload economy file", "path", cfg.EconomyFile, "error", err)
			continue
		}
		if err := ledger.Reconfigure(ctx, economy); err != nil {
			logger.Error("Failed to apply economy file", "path", cfg.EconomyFile, "error", err)
			continue
		}
		logger.Info("Economy reloaded", "path", cfg.EconomyFile)
	}
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
