// Package metrics defines and registers all custom Prometheus metrics for the
// dashboard API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default registry via promauto at
// package load; the HTTP layer only needs to expose /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dashboard"

// LoginsTotal counts successful logins.
// Labels:
//   - source: "static" (demo table) or "persisted" (user store)
//   - role: the canonical role on the issued session
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by identity source and role.",
	},
	[]string{"source", "role"},
)

// LoginFailuresTotal counts failed login attempts.
// Label:
//   - reason: "missing_input", "invalid_credentials", "not_found",
//     "role_mismatch", or "internal"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of failed login attempts, by failure reason.",
	},
	[]string{"reason"},
)

// UsersCreatedTotal counts directory inserts.
// Label:
//   - origin: "signup" or "direct" (the create-and-notify endpoint)
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user records created, by originating endpoint.",
	},
	[]string{"origin"},
)

// UserEventsPublishedTotal counts newUser publish attempts on the real-time
// channel.
// Label:
//   - result: "ok" or "error"
var UserEventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_events_published_total",
		Help:      "Total number of newUser event publish attempts, by result.",
	},
	[]string{"result"},
)
