package news

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// proxyRequestsTotal counts proxied provider requests by endpoint and
// outcome.
var proxyRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "news_proxy_requests_total",
		Help: "Proxied news provider requests by endpoint and outcome",
	},
	[]string{"endpoint", "outcome"}, // outcome: success | failure
)

func recordProxyRequest(endpoint string, success bool) {
	outcome := "failure"
	if success {
		outcome = "success"
	}
	proxyRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
}
