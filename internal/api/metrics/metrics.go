// Package metrics defines and registers all custom Prometheus metrics for
// the billing portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time via promauto;
// the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts login attempts through the portal.
// Label:
//   - outcome: "success", "rejected", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// GuardDecisionsTotal counts route gate decisions.
// Label:
//   - verdict: "allow", "redirect_login", or "redirect_fallback"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of authorization gate decisions, by verdict.",
	},
	[]string{"verdict"},
)

// ── Dashboard metrics ────────────────────────────────────────────────────────

// DashboardLoadsTotal counts dashboard assembly runs.
// Label:
//   - result: "admin", "complete", "partial", "no_customer", or "error"
var DashboardLoadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_loads_total",
		Help:      "Total number of dashboard aggregations, by result.",
	},
	[]string{"result"},
)

// ── Upstream metrics ─────────────────────────────────────────────────────────

// UpstreamRequestDuration measures billing API round-trip time.
// Labels:
//   - operation: short name of the remote operation (e.g. "list_invoices")
//   - outcome: "ok", "not_found", or "error"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of billing API calls, by operation and outcome.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation", "outcome"},
)
