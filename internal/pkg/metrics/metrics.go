// Package metrics defines the console's Prometheus metrics. All of them are
// registered with the default registry at init; cmd/console exposes them when
// METRICS_ADDR is set.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog_console"

// ── API client ───────────────────────────────────────────────────────────────

// RequestsTotal counts round trips to the catalog API.
// Labels:
//   - method, path: the request line
//   - outcome: "ok", "unauthorized", "http_error" or "transport_error"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "api_requests_total",
		Help:      "Total number of catalog API requests, by outcome.",
	},
	[]string{"method", "path", "outcome"},
)

// RequestDuration measures catalog API round trips, including failed ones.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "api_request_duration_seconds",
		Help:      "Duration of catalog API round trips.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// ── Forms and lists ──────────────────────────────────────────────────────────

// SubmissionsTotal counts form submissions.
// Label result: "success", "invalid" (rejected before any call) or "failed".
var SubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "form_submissions_total",
		Help:      "Total number of form submissions, by form and result.",
	},
	[]string{"form", "result"},
)

// ListEntriesDroppedTotal counts list entries skipped because they lacked
// identifying fields.
var ListEntriesDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_entries_dropped_total",
		Help:      "Total number of malformed list entries skipped during rendering.",
	},
	[]string{"kind"},
)

// StaleListResponsesTotal counts list responses discarded because a newer
// list request for the same kind had already been issued.
var StaleListResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_list_responses_total",
		Help:      "Total number of list responses discarded as stale.",
	},
	[]string{"kind"},
)
