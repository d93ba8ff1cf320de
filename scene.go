package geonym

import (
	"fmt"
	"math/rand/v2"
)

// Streams keep generation and rendering draws independent, so that redrawing
// a scene repeats its colors without disturbing its tree.
const (
	generateStream = 0x67656e65
	renderStream   = 0x72656e64
)

// Scene is one generated tree together with everything needed to draw it
// again: the space that produced it, the seed and the parameters.
type Scene struct {
	Space  Space
	Seed   uint64
	Params Params
	Tree   Tree
}

// Compose generates a fresh tree for sp from seed.
func Compose(sp Space, seed uint64, params Params) (*Scene, error) {
	rng := rand.New(rand.NewPCG(seed, generateStream))
	t, err := sp.Generate(rng, params)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", sp.Descriptor().ID, err)
	}
	s := &Scene{Space: sp, Seed: seed, Params: params, Tree: t}
	Logger().Debug("scene composed",
		"space", sp.Descriptor().ID,
		"seed", seed,
		"stats", t.Stats(),
	)
	return s, nil
}

// Draw renders the scene onto dc at the origin with unit size.
// Drawing the same scene twice produces the same primitives.
func (s *Scene) Draw(dc Surface) error {
	rng := rand.New(rand.NewPCG(s.Seed, renderStream))
	if err := Draw(dc, rng, s.Space, s.Tree); err != nil {
		return fmt.Errorf("render %s: %w", s.Space.Descriptor().ID, err)
	}
	return nil
}
