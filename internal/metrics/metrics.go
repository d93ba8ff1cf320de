// Package metrics exposes Prometheus collectors for scene generation and
// rendering.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/geonym"
)

// Collector records playground activity.
// A nil *Collector is valid and records nothing.
type Collector struct {
	scenes     *prometheus.CounterVec
	failures   *prometheus.CounterVec
	treeNodes  *prometheus.HistogramVec
	renderTime *prometheus.HistogramVec
	shapes     *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		scenes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geonym_scenes_total",
				Help: "Total number of generated scenes",
			},
			[]string{"space"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geonym_failures_total",
				Help: "Total number of failed generate or render calls",
			},
			[]string{"space", "stage"},
		),
		treeNodes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "geonym_tree_nodes",
				Help:    "Number of nodes in generated trees",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"space"},
		),
		renderTime: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "geonym_render_duration_seconds",
				Help:    "Duration of scene renders",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"space", "surface"},
		),
		shapes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "geonym_shapes_total",
				Help: "Total number of primitives drawn",
			},
			[]string{"space"},
		),
	}
	reg.MustRegister(c.scenes, c.failures, c.treeNodes, c.renderTime, c.shapes)
	return c
}

// Composed records a generated scene.
func (c *Collector) Composed(s *geonym.Scene) {
	if c == nil {
		return
	}
	id := s.Space.Descriptor().ID
	c.scenes.WithLabelValues(id).Inc()
	c.treeNodes.WithLabelValues(id).Observe(float64(s.Tree.Stats().Nodes))
}

// Rendered records a completed render onto the named surface kind.
func (c *Collector) Rendered(space, surface string, shapes int, d time.Duration) {
	if c == nil {
		return
	}
	c.renderTime.WithLabelValues(space, surface).Observe(d.Seconds())
	c.shapes.WithLabelValues(space).Add(float64(shapes))
}

// Failed records a failure in the given stage ("generate" or "render").
func (c *Collector) Failed(space, stage string) {
	if c == nil {
		return
	}
	c.failures.WithLabelValues(space, stage).Inc()
}
