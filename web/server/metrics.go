package server

import "github.com/prometheus/client_golang/prometheus"

// metrics holds the server's Prometheus instruments on a private registry so
// multiple handlers (tests included) never fight over global registration.
type metrics struct {
	registry      *prometheus.Registry
	traces        *prometheus.CounterVec
	traceDuration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		traces: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paraxial_traces_total",
				Help: "Total number of trace requests served, by outcome",
			},
			[]string{"outcome"},
		),
		traceDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "paraxial_trace_duration_seconds",
				Help: "Duration of trace computations",
			},
		),
	}
	m.registry.MustRegister(m.traces, m.traceDuration)
	return m
}
