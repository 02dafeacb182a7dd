// Package metrics defines the Prometheus collectors of the service. All of
// them are registered with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chargemap"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTPRequestDuration measures request latency.
// Labels:
//   - method: the HTTP method
//   - route: the matched route pattern, or "unmatched"
//   - status: the response status code
var HTTPRequestDuration = promauto.NewHistogramVec( //nolint: gochecknoglobals
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method, route and status code.",
		Buckets:   DefaultBuckets,
	},
	[]string{"method", "route", "status"},
)

// StationStatusChanges counts successful station status updates.
// Label:
//   - status: the status the station was moved to
var StationStatusChanges = promauto.NewCounterVec( //nolint: gochecknoglobals
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "station_status_changes_total",
		Help:      "Total number of charging station status changes, by new status.",
	},
	[]string{"status"},
)

// LoginAttempts counts login attempts.
// Label:
//   - result: "success", "invalid_credentials" or "error"
var LoginAttempts = promauto.NewCounterVec( //nolint: gochecknoglobals
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ImportedRows counts rows handled by the CSV importer.
// Labels:
//   - dataset: "postal_codes" or "stations"
//   - outcome: "stored" or "skipped"
var ImportedRows = promauto.NewCounterVec( //nolint: gochecknoglobals
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "imported_rows_total",
		Help:      "Total number of CSV rows handled by the importer, by dataset and outcome.",
	},
	[]string{"dataset", "outcome"},
)
