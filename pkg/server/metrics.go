//go:build !prometheus

package server

// Metric hooks compile to no-ops unless the prometheus build tag is set;
// see metrics_prometheus.go.

func metricConnection() {}

func metricResponse(code int) {}

func metricAcceptError() {}

func metricWriteError() {}
