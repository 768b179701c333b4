// Package metrics defines and registers all custom Prometheus metrics for
// the admin backend. It is the single source of truth for metric names,
// labels, and help strings. Registration happens via promauto at package
// init; the exposition endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "techutsav_admin"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// PaymentUpdatesTotal counts payment verification verdicts.
// Label:
//   - result: "verified", "rejected", or "error"
var PaymentUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_updates_total",
		Help:      "Total number of payment status updates, by verdict.",
	},
	[]string{"result"},
)

// StatusEmailsTotal counts status notification emails.
// Label:
//   - result: "success" or "failure"
var StatusEmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_emails_total",
		Help:      "Total number of payment status notification emails, by result.",
	},
	[]string{"result"},
)

// ExportsTotal counts CSV exports.
// Label:
//   - department: the caller's department scope ("all" for super admin)
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of CSV exports, by department scope.",
	},
	[]string{"department"},
)

// ExportDuration measures how long building and serving one export takes.
var ExportDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_duration_seconds",
		Help:      "Duration of CSV export generation.",
		Buckets:   prometheus.DefBuckets,
	},
)
