package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DataAPIRequests counts calls to the headless data API by resource and outcome
var DataAPIRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "deskd_dataapi_requests_total",
		Help: "Total number of requests issued to the data API",
	},
	[]string{"resource", "outcome"},
)

// PricerRequests counts calls to the external pricing engine by outcome
var PricerRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "deskd_pricer_requests_total",
		Help: "Total number of risk batches posted to the pricing engine",
	},
	[]string{"outcome"},
)

// RiskPipelineLatency records end-to-end latency of the position risk pipeline
var RiskPipelineLatency = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "deskd_risk_pipeline_latency_seconds",
		Help:    "Latency in seconds of fetch, build, price and correlate",
		Buckets: prometheus.DefBuckets,
	},
)

// AuthExpiredShortCircuits counts position fetches skipped on an expired session
var AuthExpiredShortCircuits = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "deskd_auth_expired_short_circuits_total",
		Help: "Position fetches answered empty because the session token had expired",
	},
)

// CSVExports counts CSV export renders by row variant
var CSVExports = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "deskd_csv_exports_total",
		Help: "Total number of CSV exports rendered",
	},
	[]string{"variant"},
)

func init() {
	prometheus.MustRegister(DataAPIRequests, PricerRequests, RiskPipelineLatency)
	prometheus.MustRegister(AuthExpiredShortCircuits, CSVExports)
}
