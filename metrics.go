package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "personaltrainer_client",
			Name:      "requests_total",
			Help:      "API requests issued, by resource and method.",
		},
		[]string{"resource", "method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "personaltrainer_client",
			Name:      "request_failures_total",
			Help:      "API requests that returned an error, by resource and method.",
		},
		[]string{"resource", "method"},
	)
)
