//go:build !cgo

// Package viewer shows the playground in a desktop window.
package viewer

import (
	"errors"

	"github.com/gogpu/geonym/internal/playground"
)

// Run reports that the desktop viewer is unavailable in this build.
func Run(_ *playground.Playground) error {
	return errors.New("viewer requires cgo (build with CGO_ENABLED=1)")
}
