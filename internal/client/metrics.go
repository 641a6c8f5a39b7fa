package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "homefix"

// requestsTotal counts completed pipeline calls.
// Labels:
//   - method: HTTP method of the request (e.g. "GET")
//   - status: numeric HTTP status, or "transport_error" when no
//     response was received
var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Total number of API requests issued by the client.",
	},
	[]string{"method", "status"},
)

// requestDuration measures wall time from request build to body read.
var requestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Duration of API requests end-to-end.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)
