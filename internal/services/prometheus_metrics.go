package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricLedgerMutation      = "ledger.mutation"
	MetricLedgerRetry         = "ledger.retry"
	MetricTransfers           = "transfers_total"
	MetricTransferDuration    = "transfer_duration"
	MetricTransferAmount      = "transfer_amount"
	MetricInterestCycle       = "interest.cycle"
	MetricInterestPaid        = "interest.paid"
	MetricInterestTickSkipped = "interest.tick_skipped"
	MetricCacheHit            = "cache.hit"
	MetricCacheMiss           = "cache.miss"
	MetricCacheSize           = "cache.size"
	MetricCircuitBreakerState = "circuit_breaker.state"
)

type PrometheusMetrics struct {
	ledgerMutations      *prometheus.CounterVec
	mutationDuration     prometheus.Histogram
	retryAttempts        *prometheus.CounterVec
	transfersTotal       *prometheus.CounterVec
	transferDuration     prometheus.Histogram
	transferAmount       prometheus.Histogram
	interestCycles       *prometheus.CounterVec
	interestCycleTime    prometheus.Histogram
	interestPaid         prometheus.Counter
	interestTicksSkipped prometheus.Counter
	cacheLookups         *prometheus.CounterVec
	cacheSize            prometheus.Gauge
	circuitBreakerState  *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the ledger collectors with reg. A nil
// registerer falls back to the default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ledgerMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of ledger mutations by transaction type and outcome",
			},
			[]string{"type", "status"},
		),
		mutationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_mutation_duration_milliseconds",
				Help:    "Single-account mutation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		retryAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_retry_attempts_total",
				Help: "Total number of retries after a concurrency conflict",
			},
			[]string{"operation"},
		),
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_total",
				Help: "Total number of transfers processed",
			},
			[]string{"status"},
		),
		transferDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_duration_milliseconds",
				Help:    "Transfer processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transferAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transfer_amount",
				Help:    "Transfer amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		interestCycles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interest_cycles_total",
				Help: "Total number of interest cycles by trigger",
			},
			[]string{"trigger"},
		),
		interestCycleTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "interest_cycle_duration_seconds",
				Help:    "Interest cycle duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		interestPaid: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "interest_paid_total",
				Help: "Total interest credited in base currency units",
			},
		),
		interestTicksSkipped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "interest_ticks_skipped_total",
				Help: "Scheduler ticks skipped because a run was still active",
			},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_cache_lookups_total",
				Help: "Account cache lookups by result",
			},
			[]string{"result"},
		),
		cacheSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "account_cache_entries",
				Help: "Current number of cached accounts",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricLedgerMutation:
		m.ledgerMutations.WithLabelValues(tags["type"], status).Inc()
	case MetricLedgerRetry:
		m.retryAttempts.WithLabelValues(tags["operation"]).Inc()
	case MetricTransfers:
		if status != "" {
			m.transfersTotal.WithLabelValues(status).Inc()
		}
	case MetricInterestCycle:
		m.interestCycles.WithLabelValues(tags["trigger"]).Inc()
	case MetricInterestTickSkipped:
		m.interestTicksSkipped.Inc()
	case MetricCacheHit:
		m.cacheLookups.WithLabelValues("hit").Inc()
	case MetricCacheMiss:
		m.cacheLookups.WithLabelValues("miss").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricLedgerMutation:
		m.mutationDuration.Observe(float64(duration.Milliseconds()))
	case MetricTransferDuration:
		m.transferDuration.Observe(float64(duration.Milliseconds()))
	case MetricInterestCycle:
		m.interestCycleTime.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricTransferAmount:
		m.transferAmount.Observe(value)
	case MetricInterestPaid:
		if value > 0 {
			m.interestPaid.Add(value)
		}
	case MetricCacheSize:
		m.cacheSize.Set(value)
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
