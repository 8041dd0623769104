package web

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	commandsTotal     *prometheus.CounterVec
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "csvrepl",
			Name:      "commands_total",
			Help:      "Submitted command lines, labeled by command name (unknown for unregistered names).",
		}, []string{"command"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "csvrepl",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed, labeled by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "csvrepl",
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of request durations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(m.commandsTotal, m.httpRequestsTotal, m.httpDuration)
	return m
}
