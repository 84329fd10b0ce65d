// Package metrics exposes prometheus collectors for HTTP, wallet and LLM activity.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
)

const namespace = "agent_console"

// Prometheus implements core.Metrics and records HTTP traffic
type Prometheus struct {
	registry *prometheus.Registry

	httpInFlight  prometheus.Gauge
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	walletOps     *prometheus.CounterVec
	llmRequests   *prometheus.CounterVec
	llmDuration   *prometheus.HistogramVec
	toolExecution *prometheus.CounterVec
}

var _ coreport.Metrics = (*Prometheus)(nil)

// NewPrometheus registers every collector on a private registry
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "path"}),
		walletOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "operations_total",
			Help:      "Wallet mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "LLM provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		llmDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Duration of LLM provider calls.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"provider"}),
		toolExecution: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chat",
			Name:      "tool_executions_total",
			Help:      "Tool calls executed for the model.",
		}, []string{"tool", "outcome"}),
	}
	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.httpInFlight, p.httpRequests, p.httpDuration,
		p.walletOps, p.llmRequests, p.llmDuration, p.toolExecution,
	)
	return p
}

// Registry exposes the underlying registry for tests and extra collectors
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the prometheus text format
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Prometheus) WalletOperation(operation, outcome string) {
	p.walletOps.WithLabelValues(operation, outcome).Inc()
}

func (p *Prometheus) LLMRequest(provider, outcome string, d time.Duration) {
	p.llmRequests.WithLabelValues(provider, outcome).Inc()
	p.llmDuration.WithLabelValues(provider).Observe(d.Seconds())
}

func (p *Prometheus) ToolExecution(tool, outcome string) {
	p.toolExecution.WithLabelValues(tool, outcome).Inc()
}

// RequestStarted tracks an in-flight request and returns the function that records its completion
func (p *Prometheus) RequestStarted() func(method, path, status string, d time.Duration) {
	p.httpInFlight.Inc()
	return func(method, path, status string, d time.Duration) {
		p.httpInFlight.Dec()
		p.httpRequests.WithLabelValues(method, path, status).Inc()
		p.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
	}
}
