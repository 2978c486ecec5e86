// Package telemetry implements the domain.Metrics interface on Prometheus
// and serves the optional observability listener.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"mpmcp/internal/domain"
)

type PrometheusMetrics struct {
	toolCallDuration *prometheus.HistogramVec
	authExchanges    *prometheus.CounterVec
	authRetries      prometheus.Counter
}

func NewPrometheusMetrics(registerer prometheus.Registerer) *PrometheusMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		toolCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mpmcp_tool_call_duration_seconds",
				Help:    "Duration of tool calls in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"tool", "outcome"},
		),
		authExchanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mpmcp_auth_exchanges_total",
				Help: "Total number of OAuth client-credentials exchanges",
			},
			[]string{"status"},
		),
		authRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "mpmcp_auth_retries_total",
				Help: "Total number of calls re-issued after a 401",
			},
		),
	}
}

func (p *PrometheusMetrics) ObserveToolCall(tool string, outcome domain.ToolOutcome, duration time.Duration) {
	p.toolCallDuration.WithLabelValues(tool, string(outcome)).Observe(duration.Seconds())
}

func (p *PrometheusMetrics) ObserveAuthExchange(duration time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	p.authExchanges.WithLabelValues(status).Inc()
}

func (p *PrometheusMetrics) ObserveAuthRetry() {
	p.authRetries.Inc()
}
