//go:build prometheus

package server

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the responder
var (
	connectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "responder",
			Subsystem: "server",
			Name:      "connections_total",
			Help:      "Total number of accepted connections",
		},
	)

	responsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "responder",
			Subsystem: "server",
			Name:      "responses_total",
			Help:      "Total number of responses written, by status code",
		},
		[]string{"code"},
	)

	acceptErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "responder",
			Subsystem: "server",
			Name:      "accept_errors_total",
			Help:      "Total number of failed accepts",
		},
	)

	writeErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "responder",
			Subsystem: "server",
			Name:      "write_errors_total",
			Help:      "Total number of write failures other than would-block",
		},
	)
)

func metricConnection() {
	connectionsTotal.Inc()
}

func metricResponse(code int) {
	responsesTotal.WithLabelValues(strconv.Itoa(code)).Inc()
}

func metricAcceptError() {
	acceptErrorsTotal.Inc()
}

func metricWriteError() {
	writeErrorsTotal.Inc()
}
