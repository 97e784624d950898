package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var noticesPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "personaltrainer_client",
		Name:      "notices_published_total",
		Help:      "Change notices published on the in-process bus.",
	},
	[]string{"topic"},
)
