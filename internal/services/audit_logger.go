package services

import (
	"context"
	"log/slog"
	"time"

	"banking-ledger/internal/models"

	"github.com/google/uuid"
)

type correlationKey struct{}

// WithCorrelationID tags ctx so audit events emitted under it can be joined
// with the request that caused them.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the id stored by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogAccountCreated(ctx context.Context, account *models.Account) {
	al.logger.InfoContext(ctx, "account created",
		slog.String("event_type", "account_created"),
		slog.String("account_id", account.ID.String()),
		slog.String("account_number", account.AccountNumber()),
		slog.String("name", account.Name),
		slog.String("opening_balance", account.Balance.StringFixed(models.MoneyScale)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogAccountStatusChange(ctx context.Context, accountID uuid.UUID, active bool) {
	al.logger.InfoContext(ctx, "account status change",
		slog.String("event_type", "account_status_change"),
		slog.String("account_id", accountID.String()),
		slog.Bool("active", active),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceChange(ctx context.Context, record *models.Transaction) {
	attrs := []slog.Attr{
		slog.String("event_type", "balance_change"),
		slog.Int64("transaction_id", record.ID),
		slog.String("account_id", record.AccountID.String()),
		slog.String("type", string(record.Type)),
		slog.String("amount", record.Amount.StringFixed(models.MoneyScale)),
		slog.String("balance_before", record.BalanceBefore.StringFixed(models.MoneyScale)),
		slog.String("balance_after", record.BalanceAfter.StringFixed(models.MoneyScale)),
		slog.String("reference", record.Reference),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	}
	if record.CounterpartyID != nil {
		attrs = append(attrs, slog.String("counterparty_id", record.CounterpartyID.String()))
	}

	al.logger.LogAttrs(ctx, slog.LevelInfo, "balance change", attrs...)
}

func (al *AuditLogger) LogTransferCompleted(ctx context.Context, result *TransferResult, duration time.Duration) {
	al.logger.InfoContext(ctx, "transfer completed",
		slog.String("event_type", "transfer_completed"),
		slog.String("reference", result.Reference),
		slog.String("from_account_id", result.Sent.AccountID.String()),
		slog.String("to_account_id", result.Received.AccountID.String()),
		slog.String("amount", result.Received.Amount.StringFixed(models.MoneyScale)),
		slog.Int64("debit_transaction_id", result.Sent.ID),
		slog.Int64("credit_transaction_id", result.Received.ID),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMutationFailed(ctx context.Context, operation string, accountID uuid.UUID, err error) {
	al.logger.WarnContext(ctx, "ledger mutation failed",
		slog.String("event_type", "mutation_failed"),
		slog.String("operation", operation),
		slog.String("account_id", accountID.String()),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogInterestCycle(ctx context.Context, report *CycleReport) {
	level := slog.LevelInfo
	if report.Errors > 0 {
		level = slog.LevelWarn
	}

	al.logger.LogAttrs(ctx, level, "interest cycle finished",
		slog.String("event_type", "interest_cycle"),
		slog.Bool("forced", report.Forced),
		slog.Int("eligible", report.Eligible),
		slog.Int("processed", report.Processed),
		slog.Int("skipped", report.Skipped),
		slog.Int("errors", report.Errors),
		slog.String("total_paid", report.TotalPaid.StringFixed(models.MoneyScale)),
		slog.Int64("duration_ms", report.FinishedAt.Sub(report.StartedAt).Milliseconds()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTickSkipped(ctx context.Context, reason string) {
	al.logger.WarnContext(ctx, "interest tick skipped",
		slog.String("event_type", "interest_tick_skipped"),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogConfigurationChange(ctx context.Context, section string, restarted bool) {
	al.logger.InfoContext(ctx, "configuration change",
		slog.String("event_type", "configuration_change"),
		slog.String("section", section),
		slog.Bool("scheduler_restarted", restarted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}
