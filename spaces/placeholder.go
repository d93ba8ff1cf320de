package spaces

import (
	"math/rand/v2"

	"github.com/gogpu/geonym"
)

// PlaceholderRadius is the radius of the single circle drawn by spaces that
// do not generate anything yet.
const PlaceholderRadius = 0.8

// placeholder is a space slot without an algorithm: it generates an empty
// tree and draws one bordered circle at the origin.
type placeholder struct {
	desc geonym.Descriptor
}

func (p *placeholder) Descriptor() geonym.Descriptor { return p.desc }

func (p *placeholder) Generate(*rand.Rand, geonym.Params) (geonym.Tree, error) {
	return geonym.Tree{}, nil
}

// Render ignores the tree.
func (p *placeholder) Render(dc geonym.Surface, _ *rand.Rand, _ geonym.Tree, _ geonym.Coord, _ float64) error {
	return dc.DrawCircle(geonym.Origin, PlaceholderRadius, geonym.Paper, geonym.Ink)
}

// Mandala is a mandala generator. It currently draws a blank disc.
type Mandala struct {
	placeholder
}

var _ geonym.Space = (*Mandala)(nil)

// NewMandala returns the mandala space.
func NewMandala() *Mandala {
	return &Mandala{placeholder{desc: geonym.Descriptor{
		ID:      "mandala",
		Title:   "an exploration of ephemeral symmetries",
		Summary: "Summary.",
	}}}
}

// Zen is the absence of attachment.
type Zen struct {
	placeholder
}

var _ geonym.Space = (*Zen)(nil)

// NewZen returns the zen space.
func NewZen() *Zen {
	return &Zen{placeholder{desc: geonym.Descriptor{
		ID:    "zen",
		Title: "the absence of attachment",
	}}}
}
