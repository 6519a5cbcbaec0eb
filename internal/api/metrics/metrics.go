// Package metrics defines the custom Prometheus metrics for the review
// service. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reviews"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthRejectionsTotal counts requests short-circuited by the auth
// middleware chain.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "forbidden_role"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by authentication or authorization middleware.",
	},
	[]string{"reason"},
)

// MutationsTotal counts review write operations that reached the store.
// Labels:
//   - operation: "create", "update", "delete"
//   - outcome: "ok", "not_found", "error"
var MutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Total number of review mutations, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)
