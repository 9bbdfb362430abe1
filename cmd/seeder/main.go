package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"banking-ledger/internal/app"
	"banking-ledger/internal/config"
	"banking-ledger/internal/database"
	apperrors "banking-ledger/internal/errors"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	accounts := flag.Int("accounts", 100, "number of accounts to open")
	transfers := flag.Int("transfers", 500, "number of random transfers between seeded accounts")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	// seeding never starts the interest loop
	cfg.Economy.Interest.Enabled = false

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// the services log every mutation; keep the seeder output readable
	ledger, err := app.New(cfg, db, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		logger.Error("Failed to build application", "error", err)
		_ = db.Close()
		os.Exit(1)
	}
	defer func() { _ = ledger.Shutdown(context.Background()) }()

	s := &seeder{app: ledger, logger: logger}
	if err := s.run(context.Background(), *accounts, *transfers); err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

type seeder struct {
	app    *app.App
	logger *slog.Logger
	ids    []uuid.UUID
}

func (s *seeder) run(ctx context.Context, accounts, transfers int) error {
	s.logger.Info("--- Seeding Database ---", "accounts", accounts, "transfers", transfers)

	for i := 0; i < accounts; i++ {
		id := uuid.New()
		name := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		if _, err := s.app.Cache.GetOrCreate(ctx, id, name); err != nil {
			return fmt.Errorf("failed to open account %s: %w", name, err)
		}
		s.ids = append(s.ids, id)

		if _, err := s.app.Ledger.Deposit(ctx, id, price(5, 2000), gofakeit.Sentence(4)); err != nil {
			return fmt.Errorf("failed to fund account %s: %w", name, err)
		}
	}
	if len(s.ids) < 2 {
		return nil
	}

	var completed, rejected int
	for i := 0; i < transfers; i++ {
		err := s.randomActivity(ctx)
		switch {
		case err == nil:
			completed++
		case apperrors.KindOf(err) == apperrors.KindInsufficientFunds:
			rejected++
		default:
			return err
		}
	}

	total, err := s.app.Ledger.TotalMoney(ctx)
	if err != nil {
		return fmt.Errorf("failed to total balances: %w", err)
	}

	s.logger.Info("Seeding complete",
		"accounts", len(s.ids),
		"completed", completed,
		"rejected", rejected,
		"total_money", s.app.Ledger.FormatAmount(total),
	)
	return nil
}

func (s *seeder) randomActivity(ctx context.Context) error {
	from := s.pick()

	switch gofakeit.Number(0, 9) {
	case 0:
		_, err := s.app.Ledger.BusinessPayment(ctx, from, gofakeit.Company(), price(1, 100))
		return err
	case 1:
		symbol := strings.ToUpper(gofakeit.LetterN(4))
		if _, err := s.app.Ledger.StockPurchase(ctx, from, symbol, price(10, 300)); err != nil {
			return err
		}
		_, err := s.app.Ledger.Dividend(ctx, from, symbol, price(1, 10))
		return err
	default:
		to := s.pick()
		for to == from {
			to = s.pick()
		}
		_, err := s.app.Ledger.TransferMoney(ctx, from, to, price(1, 250), gofakeit.Sentence(3))
		return err
	}
}

func (s *seeder) pick() uuid.UUID {
	return s.ids[gofakeit.Number(0, len(s.ids)-1)]
}

func price(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(min, max)).Round(2)
}
