// Package metrics defines the prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	// RPCRequests counts finished RPCs by procedure and Connect code.
	RPCRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "futmanager_rpc_requests_total",
		Help: "Total RPCs handled, by procedure and result code.",
	}, []string{"procedure", "code"})

	// RPCDuration observes RPC latency.
	RPCDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "futmanager_rpc_duration_seconds",
		Help:    "RPC latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"procedure"})

	// TeamDraws counts draws by strategy and outcome.
	TeamDraws = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "futmanager_team_draws_total",
		Help: "Team draws, by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	// OracleCalls counts calls to the generative oracle.
	OracleCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "futmanager_oracle_calls_total",
		Help: "Generative oracle calls, by operation and outcome.",
	}, []string{"operation", "outcome"})
)

// Outcome maps an error to its label value.
func Outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
