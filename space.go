package geonym

import (
	"fmt"
	"math/rand/v2"

	"github.com/mitchellh/mapstructure"
)

// Descriptor identifies a space.
// ID is the unique key used for routing, URL fragments and element ids.
// A Descriptor is fixed when the space is constructed and never changes.
type Descriptor struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// Space is a generator and renderer pair.
//
// Generate builds a fresh tree, drawing any random decisions from rng.
// Render walks a tree produced by the same space's Generate and draws it on
// dc, treating at as the logical position of the root and size as its extent.
// Implementations must not retain the tree or the surface.
type Space interface {
	Descriptor() Descriptor
	Generate(rng *rand.Rand, params Params) (Tree, error)
	Render(dc Surface, rng *rand.Rand, t Tree, at Coord, size float64) error
}

// Draw renders t with the root at the origin and unit size.
func Draw(dc Surface, rng *rand.Rand, sp Space, t Tree) error {
	return sp.Render(dc, rng, t, Origin, 1)
}

// Params carries loosely typed generation parameters, as they arrive from
// query strings, flags or configuration files.
type Params map[string]any

// DecodeParams decodes p into the struct pointed to by out.
// Fields are matched on their `param` tag; string values are converted to the
// field type, so Params{"depth": "3"} decodes into an int field.
// Keys out does not declare are ignored.
func DecodeParams(p Params, out any) error {
	if len(p) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "param",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("params decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(p)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}
