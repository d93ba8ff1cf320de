package geonym

import (
	"errors"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dot is a minimal space: one leaf per requested child, one circle per leaf.
type dot struct {
	desc Descriptor
}

func newDot(id string) *dot { return &dot{desc: Descriptor{ID: id, Title: id + " title"}} }

func (d *dot) Descriptor() Descriptor { return d.desc }

func (d *dot) Generate(rng *rand.Rand, params Params) (Tree, error) {
	p := struct {
		Children int `param:"children"`
	}{Children: 1}
	if err := DecodeParams(params, &p); err != nil {
		return nil, err
	}
	if p.Children < 0 {
		return nil, ErrNegativeDepth
	}
	return make(Tree, p.Children), nil
}

func (d *dot) Render(dc Surface, rng *rand.Rand, t Tree, at Coord, size float64) error {
	for range t {
		if err := dc.DrawCircle(at, size/2, MutedColor(rng), NoBorder); err != nil {
			return err
		}
	}
	return nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	a, b := newDot("a"), newDot("b")
	require.NoError(t, reg.Register(a))
	require.NoError(t, reg.Register(b))

	got, err := reg.Lookup("b")
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = reg.Lookup("missing")
	assert.True(t, errors.Is(err, ErrUnknownSpace))

	all := reg.Spaces()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Descriptor().ID, "registration order is kept")
	assert.Equal(t, 2, reg.Len())
}

func TestRegistry_RegisterRejects(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newDot("a")))

	err := reg.Register(newDot("a"))
	assert.True(t, errors.Is(err, ErrDuplicateSpace))

	err = reg.Register(newDot(""))
	assert.True(t, errors.Is(err, ErrEmptyIdentifier))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_Activate(t *testing.T) {
	reg := NewRegistry()
	assert.Nil(t, reg.Active())

	a, b := newDot("a"), newDot("b")
	require.NoError(t, reg.Register(a))
	require.NoError(t, reg.Register(b))

	sp, err := reg.Activate("b")
	require.NoError(t, err)
	assert.Same(t, b, sp)
	assert.Same(t, b, reg.Active())
	assert.True(t, reg.IsActive("b"))
	assert.False(t, reg.IsActive("a"))

	_, err = reg.Activate("nope")
	assert.True(t, errors.Is(err, ErrUnknownSpace))
	assert.Same(t, b, reg.Active(), "failed activation keeps the previous space")
}

func TestRegistry_SpacesIsCopy(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newDot("a")))
	all := reg.Spaces()
	all[0] = newDot("z")
	assert.Equal(t, "a", reg.Spaces()[0].Descriptor().ID)
}

func TestRegistry_Neighbor(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Neighbor(1)
	assert.True(t, errors.Is(err, ErrUnknownSpace))

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, reg.Register(newDot(id)))
	}

	next, err := reg.Neighbor(1)
	require.NoError(t, err)
	assert.Equal(t, "b", next.Descriptor().ID, "no active space counts as the first")

	_, err = reg.Activate("c")
	require.NoError(t, err)
	next, err = reg.Neighbor(1)
	require.NoError(t, err)
	assert.Equal(t, "a", next.Descriptor().ID)

	prev, err := reg.Neighbor(-1)
	require.NoError(t, err)
	assert.Equal(t, "b", prev.Descriptor().ID)

	wrap, err := reg.Neighbor(-4)
	require.NoError(t, err)
	assert.Equal(t, "b", wrap.Descriptor().ID)
}

func TestRegistry_Concurrent(t *testing.T) {
	reg := NewRegistry()
	for _, id := range []string{"a", "b"} {
		require.NoError(t, reg.Register(newDot(id)))
	}
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := "a"
			if i%2 == 1 {
				id = "b"
			}
			_, _ = reg.Activate(id)
			_ = reg.Active()
			_ = reg.Spaces()
		}()
	}
	wg.Wait()
	assert.NotNil(t, reg.Active())
}
