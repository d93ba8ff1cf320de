// Package geonym is a computational geometry playground.
//
// # Overview
//
// A geonym playground is a small registry of spaces. Each [Space] generates a
// nested [Tree] and renders it onto a square drawing [Surface] using simple
// recursive geometric rules. The spaces themselves live in the spaces
// sub-package; this package holds the shared vocabulary: coordinates, trees,
// surfaces and the registry.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/geonym"
//	    "github.com/gogpu/geonym/canvas"
//	    "github.com/gogpu/geonym/spaces"
//	)
//
//	reg := geonym.NewRegistry()
//	spaces.RegisterAll(reg)
//
//	scene, err := geonym.Compose(spaces.NewBurrito(), 42, nil)
//	if err != nil {
//	    return err
//	}
//	dc := canvas.New(800)
//	if err := scene.Draw(dc); err != nil {
//	    return err
//	}
//	dc.SavePNG("burrito.png")
//
// # Coordinate System
//
// Spaces draw in logical coordinates:
//   - Origin (0,0) at the center of the surface
//   - X increases right, Y increases up
//   - Both axes span [-1, 1] edge to edge
//
// Surfaces convert logical coordinates into pixels with a [Mapper], which
// flips the y axis and scales by half the surface size.
//
// # Randomness
//
// Generation and rendering take an explicit *rand.Rand, so a scene is fully
// reproducible from its seed.
package geonym

// Version information
const (
	// Version is the current version of the playground
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
