package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/geonym"
	"github.com/gogpu/geonym/spaces"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	scene, err := geonym.Compose(spaces.NewZen(), 1, nil)
	require.NoError(t, err)
	c.Composed(scene)
	c.Composed(scene)
	c.Rendered("zen", "png", 1, 3*time.Millisecond)
	c.Failed("burrito", "generate")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.scenes.WithLabelValues("zen")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.shapes.WithLabelValues("zen")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.failures.WithLabelValues("burrito", "generate")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.treeNodes))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["geonym_render_duration_seconds"])
	assert.True(t, names["geonym_tree_nodes"])
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	scene := &geonym.Scene{Space: spaces.NewZen(), Tree: geonym.Tree{}}
	assert.NotPanics(t, func() {
		c.Composed(scene)
		c.Rendered("zen", "svg", 1, time.Millisecond)
		c.Failed("zen", "render")
	})
}
