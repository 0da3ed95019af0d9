package upstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_upstream_requests_total",
		Help: "Platform API calls by resource and outcome.",
	}, []string{"resource", "outcome"})

	requestSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "portal_upstream_request_seconds",
		Help:    "Platform API call latency by resource.",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource"})
)

func observe(resource string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(KindOf(err))
	}
	requestsTotal.WithLabelValues(resource, outcome).Inc()
}
