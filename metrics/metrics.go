// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for merge activity.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for MergesTotal.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Collector holds every rankmerge metric on its own registry, so several
// collectors can coexist in one process (tests, embedded use).
type Collector struct {
	registry *prometheus.Registry

	merges         *prometheus.CounterVec
	mergeDuration  prometheus.Histogram
	stageDuration  *prometheus.HistogramVec
	objects        prometheus.Histogram
	contradictions prometheus.Histogram
	residual       prometheus.Counter
	requests       *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// New creates a Collector with Go runtime and process collectors registered.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Collector{
		registry: reg,
		merges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rankmerge_merges_total",
			Help: "Merges attempted, by outcome.",
		}, []string{"outcome"}),
		mergeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rankmerge_merge_duration_seconds",
			Help:    "Wall time of one merge including parsing.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		stageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rankmerge_stage_duration_seconds",
			Help:    "Wall time of one merge pipeline stage.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"stage"}),
		objects: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rankmerge_objects",
			Help:    "Universe size per successful merge.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		contradictions: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rankmerge_contradictions",
			Help:    "Contradicting pairs per successful merge.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		residual: f.NewCounter(prometheus.CounterOpts{
			Name: "rankmerge_residual_total",
			Help: "Merges whose cluster order needed the cycle fallback.",
		}),
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "rankmerge_http_requests_total",
			Help: "HTTP requests, by route and status code.",
		}, []string{"route", "code"}),
		requestLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rankmerge_http_request_duration_seconds",
			Help:    "HTTP request latency, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Registry returns the private registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// ObserveMerge records one finished merge. objects and contradictions are
// only observed for OutcomeOK.
func (c *Collector) ObserveMerge(outcome string, elapsed time.Duration, objects, contradictions int, residual bool) {
	c.merges.WithLabelValues(outcome).Inc()
	c.mergeDuration.Observe(elapsed.Seconds())
	if outcome != OutcomeOK {
		return
	}
	c.objects.Observe(float64(objects))
	c.contradictions.Observe(float64(contradictions))
	if residual {
		c.residual.Inc()
	}
}

// ObserveStage records the duration of one pipeline stage.
func (c *Collector) ObserveStage(stage string, elapsed time.Duration) {
	c.stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// ObserveRequest records one HTTP request.
func (c *Collector) ObserveRequest(route, code string, elapsed time.Duration) {
	c.requests.WithLabelValues(route, code).Inc()
	c.requestLatency.WithLabelValues(route).Observe(elapsed.Seconds())
}
