package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BridgeMetrics holds all Prometheus metrics for the trading bridge
type BridgeMetrics struct {
	// Invocation metrics
	Invocations       *prometheus.CounterVec
	InvocationLatency *prometheus.HistogramVec

	// Trade metrics
	TradeVolume    *prometheus.CounterVec
	RemainderDust  *prometheus.CounterVec
	LedgerMessages *prometheus.CounterVec

	// Admin metrics
	AdminUpdates *prometheus.CounterVec
	Migrations   prometheus.Counter
}

var (
	bridgeMetricsOnce sync.Once
	bridgeMetrics     *BridgeMetrics
)

// NewBridgeMetrics creates and registers trading bridge metrics (singleton pattern)
func NewBridgeMetrics() *BridgeMetrics {
	bridgeMetricsOnce.Do(func() {
		bridgeMetrics = &BridgeMetrics{
			Invocations: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "tradingbridge",
					Name:      "invocations_total",
					Help:      "Total number of contract invocations by route and result",
				},
				[]string{"route", "result"},
			),
			InvocationLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "paw",
					Subsystem: "tradingbridge",
					Name:      "invocation_latency_seconds",
					Help:      "Time spent executing a contract invocation",
					Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
				},
				[]string{"route"},
			),
			TradeVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "tradingbridge",
					Name:      "trade_volume_total",
					Help:      "Converted source amount in smallest units of the input denom",
				},
				[]string{"route", "denom"},
			),
			RemainderDust: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "tradingbridge",
					Name:      "remainder_events_total",
					Help:      "Trades that left an unconvertible remainder with the caller",
				},
				[]string{"route"},
			),
			LedgerMessages: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "tradingbridge",
					Name:      "ledger_messages_total",
					Help:      "Ledger messages dispatched by type",
				},
				[]string{"type"},
			),
			AdminUpdates: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "tradingbridge",
					Name:      "admin_updates_total",
					Help:      "Successful admin reconfigurations by route",
				},
				[]string{"route"},
			),
			Migrations: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "paw",
					Subsystem: "tradingbridge",
					Name:      "migrations_total",
					Help:      "Successful contract migrations",
				},
			),
		}
	})
	return bridgeMetrics
}
