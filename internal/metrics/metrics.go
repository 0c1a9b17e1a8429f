// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCDuration observes every RPC by procedure and result code.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mosquefund",
		Name:      "rpc_duration_seconds",
		Help:      "Duration of RPC calls by procedure and code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"procedure", "code"})

	// SignIns counts PIN sign-in attempts by outcome.
	SignIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mosquefund",
		Name:      "sign_ins_total",
		Help:      "PIN sign-in attempts by outcome.",
	}, []string{"outcome"})

	// TransactionsRecorded counts ledger entries written, by type.
	TransactionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mosquefund",
		Name:      "transactions_recorded_total",
		Help:      "Ledger entries recorded by type.",
	}, []string{"type"})
)

// Sign-in outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeInvalidPIN  = "invalid_pin"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
)
