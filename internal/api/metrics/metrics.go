// Package metrics defines the custom Prometheus metrics of the hostel
// complaint API. Metrics register with the default registry on package init
// and are exposed on /metrics next to the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hostel"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts register and login attempts.
// Labels:
//   - action: "register" or "login"
//   - result: "success", "rejected" or "error"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of register and login attempts, by outcome.",
	},
	[]string{"action", "result"},
)

// RateLimitedTotal counts requests rejected by the global rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_requests_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)

// ── Complaint metrics ─────────────────────────────────────────────────────────

// ComplaintsCreatedTotal counts newly filed complaints.
// Label:
//   - category: water, electricity, internet, cleaning, furniture, other
var ComplaintsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_created_total",
		Help:      "Total number of complaints created, by category.",
	},
	[]string{"category"},
)

// ComplaintStatusUpdatesTotal counts status changes applied by caretakers.
// Label:
//   - status: the status that was set
var ComplaintStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaint_status_updates_total",
		Help:      "Total number of complaint status updates, by new status.",
	},
	[]string{"status"},
)

// ComplaintListDuration measures how long a role-scoped listing takes.
// Label:
//   - role: "student" or "caretaker"
var ComplaintListDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "complaint_list_duration_seconds",
		Help:      "Duration of complaint list queries, by requester role.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"role"},
)
