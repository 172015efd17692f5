// Package metrics holds the prometheus collectors of the connector.
package metrics

import (
	"net/http"
	"time"

	"karla-connector/internal/core/domain"
	"karla-connector/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "karla"

var _ ports.Metrics = (*Collector)(nil)

// Collector implements ports.Metrics.
type Collector struct {
	webhooks    *prometheus.CounterVec
	batches     *prometheus.CounterVec
	batchItems  *prometheus.CounterVec
	sinkCalls   *prometheus.CounterVec
	sinkLatency *prometheus.HistogramVec
	registry    *prometheus.Registry
}

// New creates the collectors and registers them on a private registry
// together with the process and Go runtime collectors.
func New() *Collector {
	c := &Collector{
		webhooks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhooks_total",
				Help:      "Inbound webhooks by event family and outcome",
			},
			[]string{"family", "outcome"},
		),
		batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_batches_total",
				Help:      "Catalog sync batches by outcome",
			},
			[]string{"outcome"},
		),
		batchItems: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_items_total",
				Help:      "Variant payloads submitted by batch outcome",
			},
			[]string{"outcome"},
		),
		sinkCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sink_calls_total",
				Help:      "Karla API calls by operation and result",
			},
			[]string{"operation", "result"},
		),
		sinkLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sink_call_duration_seconds",
				Help:      "Karla API call latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(
		c.webhooks,
		c.batches,
		c.batchItems,
		c.sinkCalls,
		c.sinkLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// WebhookReceived counts one webhook. Groups outside the known set share the
// "unknown" family so label cardinality stays bounded.
func (c *Collector) WebhookReceived(group domain.EventGroup, outcome string) {
	family := "unknown"
	if group.IsKnown() {
		family = group.Family()
	}
	c.webhooks.WithLabelValues(family, outcome).Inc()
}

func (c *Collector) BatchProcessed(outcome string, items int) {
	c.batches.WithLabelValues(outcome).Inc()
	if items > 0 {
		c.batchItems.WithLabelValues(outcome).Add(float64(items))
	}
}

func (c *Collector) SinkCall(operation string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.sinkCalls.WithLabelValues(operation, result).Inc()
	c.sinkLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// Handler serves the exposition format for the private registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
