package stub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "sessions_stub"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ParticipationTotal counts participation toggles.
// Labels:
//   - action: "join" or "leave"
//   - result: "success", "conflict", or "not_found"
var ParticipationTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "participation_total",
		Help:      "Total number of participation toggles, by action and result.",
	},
	[]string{"action", "result"},
)

// SessionsCreatedTotal counts sessions created through the admin endpoint.
var SessionsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "sessions_created_total",
		Help:      "Total number of sessions created.",
	},
)
