package spaces

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/geonym"
)

// BurritoArity is the number of children of every burrito node:
// one per quadrant.
const BurritoArity = 4

// DefaultBurritoDepth is the depth used when no depth parameter is given.
const DefaultBurritoDepth = 5

// BurritoParams are the generation parameters of the burrito space.
type BurritoParams struct {
	Depth int `param:"depth"`
}

// Burrito is a space-filling exploration of burritos and coolers.
//
// A burrito tree is a quadtree: every node has four children, one per
// quadrant, and each child is either a leaf or another node. Leaves are
// drawn as circles inscribed in their quadrant.
type Burrito struct {
	desc geonym.Descriptor
}

var _ geonym.Space = (*Burrito)(nil)

// NewBurrito returns the burrito space.
func NewBurrito() *Burrito {
	return &Burrito{desc: geonym.Descriptor{
		ID:      "burrito",
		Title:   "space filling burritos",
		Summary: "An exploration of space-filling shapes inspired by calculations approximating how many burritos will fit into a cooler.",
	}}
}

// Descriptor returns the burrito descriptor.
func (b *Burrito) Descriptor() geonym.Descriptor { return b.desc }

// Generate builds a random quadtree. The "depth" parameter defaults to
// DefaultBurritoDepth.
func (b *Burrito) Generate(rng *rand.Rand, params geonym.Params) (geonym.Tree, error) {
	p := BurritoParams{Depth: DefaultBurritoDepth}
	if err := geonym.DecodeParams(params, &p); err != nil {
		return nil, err
	}
	switch {
	case p.Depth < 0:
		return nil, fmt.Errorf("burrito depth %d: %w", p.Depth, geonym.ErrNegativeDepth)
	case p.Depth > geonym.MaxDepth:
		return nil, fmt.Errorf("burrito depth %d: %w", p.Depth, geonym.ErrDepthLimit)
	}
	return GenerateBurrito(rng, p.Depth), nil
}

// GenerateBurrito builds a quadtree of at most depth levels.
//
// Depth 0 is a leaf. Otherwise each of the four children recurses with
// probability 1 - 3/depth², and is a leaf otherwise. For depth 1 the
// threshold is 3, so every child is a leaf.
//
// depth must be in [0, geonym.MaxDepth].
func GenerateBurrito(rng *rand.Rand, depth int) geonym.Tree {
	if depth <= 0 {
		return geonym.Leaf
	}
	threshold := 3 / float64(depth*depth)
	t := make(geonym.Tree, 0, BurritoArity)
	for range BurritoArity {
		if rng.Float64() > threshold {
			t = append(t, GenerateBurrito(rng, depth-1))
		} else {
			t = append(t, geonym.Leaf)
		}
	}
	return t
}

// Render draws the quadtree. Child i sits at rotation i·π/2 + π/4 from the
// parent position, at distance size·√2/2, with half the parent's size.
func (b *Burrito) Render(dc geonym.Surface, rng *rand.Rand, t geonym.Tree, at geonym.Coord, size float64) error {
	return b.render(dc, rng, t, at, size, 0)
}

func (b *Burrito) render(dc geonym.Surface, rng *rand.Rand, t geonym.Tree, at geonym.Coord, size float64, level int) error {
	if t.IsLeaf() {
		return nil
	}
	if level >= geonym.MaxDepth {
		return fmt.Errorf("burrito level %d: %w", level, geonym.ErrDepthLimit)
	}
	if len(t) != BurritoArity {
		return fmt.Errorf("burrito node with %d children: %w", len(t), geonym.ErrArity)
	}

	length := math.Sqrt2 * size / 2
	for i, child := range t {
		rotation := float64(i)*(math.Pi/2) + math.Pi/4
		pos := at.Add(geonym.Polar(rotation, length))
		if !child.IsLeaf() {
			if err := b.render(dc, rng, child, pos, length/math.Sqrt2, level+1); err != nil {
				return err
			}
			continue
		}
		if err := dc.DrawCircle(pos, 0.9*(length/math.Sqrt2), geonym.MutedColor(rng), geonym.NoBorder); err != nil {
			return err
		}
	}
	return nil
}
