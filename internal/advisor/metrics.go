package advisor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// advisorRequestsTotal counts recommendation passes by outcome.
	// Labels: info, recommendation, unclassified, no_match, timeout,
	// catalog_unavailable.
	advisorRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cuppa_advisor_requests_total",
		Help: "Total recommendation requests by outcome",
	}, []string{"outcome"})

	// advisorDuration observes wall time of one recommendation pass.
	advisorDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cuppa_advisor_request_duration_seconds",
		Help:    "Duration of recommendation requests",
		Buckets: prometheus.DefBuckets,
	})
)
