// Package metrics holds the Prometheus instruments for rig traffic.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	rigRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lumictl",
		Subsystem: "rig",
		Name:      "requests_total",
		Help:      "Remote calls issued to the lighting rig",
	}, []string{"op", "result"})

	rigRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lumictl",
		Subsystem: "rig",
		Name:      "request_duration_seconds",
		Help:      "Round trip time of remote calls to the lighting rig",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
)

// ObserveRigRequest records one finished remote call.
func ObserveRigRequest(op string, took time.Duration, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	rigRequests.WithLabelValues(op, result).Inc()
	rigRequestDuration.WithLabelValues(op).Observe(took.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
