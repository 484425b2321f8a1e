package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Movements
	MovementsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movements_total",
			Help: "Movement mutations by type and operation",
		},
		[]string{"type", "op"}, // income|expense, create|update|delete
	)
	BalanceComputations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "monthly_balance_computations_total",
			Help: "Monthly balances computed",
		},
	)
	AuthFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failures_total",
			Help: "Rejected authentication attempts",
		},
		[]string{"reason"},
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry; calling it again is a no-op.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			MovementsTotal,
			BalanceComputations,
			AuthFailures,
			WorkerQueueDepth,
		)
	})
}
