package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// authAttemptsTotal counts authentication attempts on protected
// endpoints by result.
var authAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Authentication attempts on protected endpoints by result",
	},
	[]string{"result"}, // success | missing_token | invalid_token | unknown_user
)

// RecordAuthAttempt records an authentication attempt outcome.
func RecordAuthAttempt(result string) {
	authAttemptsTotal.WithLabelValues(result).Inc()
}
