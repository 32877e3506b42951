package http

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instruments for the HTTP API.
type Metrics struct {
	DistanceRequests *prometheus.CounterVec
	SearchScanned    prometheus.Counter
}

// NewMetrics creates the instruments and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DistanceRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamming_distance_requests_total",
				Help: "Total number of distance computations served",
			},
			[]string{"mode", "outcome"},
		),
		SearchScanned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "hamming_search_scanned_total",
				Help: "Total number of fingerprints scanned by searches",
			},
		),
	}
	reg.MustRegister(m.DistanceRequests, m.SearchScanned)
	return m
}
