package playground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/geonym"
)

func TestNavigate(t *testing.T) {
	pg := newPlayground(t)
	current, err := pg.Express()
	require.NoError(t, err)

	steps := []struct {
		action Action
		index  int
		want   string
	}{
		{Next, 0, "mandala"},
		{Next, 0, "zen"},
		{Next, 0, "burrito"},
		{Previous, 0, "zen"},
		{Select, 1, "mandala"},
		{Regenerate, 0, "mandala"},
	}
	for _, st := range steps {
		scene, err := pg.Navigate(st.action, st.index, current)
		require.NoError(t, err)
		require.NotNil(t, scene)
		assert.Equal(t, st.want, scene.Space.Descriptor().ID)
		assert.True(t, pg.Registry().IsActive(st.want))
		current = scene
	}
}

func TestNavigateNoop(t *testing.T) {
	pg := newPlayground(t)
	for _, tt := range []struct {
		action Action
		index  int
	}{
		{None, 0},
		{Select, 9},
		{Select, -1},
		{Regenerate, 0},
	} {
		scene, err := pg.Navigate(tt.action, tt.index, nil)
		require.NoError(t, err)
		assert.Nil(t, scene)
	}
	assert.Nil(t, pg.Registry().Active())
}

func TestNavigateRegenerateDrawsFreshSeed(t *testing.T) {
	next := uint64(100)
	pg := newPlayground(t, WithSeedSource(func() uint64 { next++; return next }))
	current, err := pg.Show("burrito", 7, geonym.Params{"depth": 2})
	require.NoError(t, err)

	scene, err := pg.Navigate(Regenerate, 0, current)
	require.NoError(t, err)
	assert.Equal(t, uint64(101), scene.Seed)
	assert.Equal(t, 2, scene.Params["depth"])
}
