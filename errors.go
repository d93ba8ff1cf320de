package geonym

import "errors"

// MaxDepth bounds how deep a space may generate or render a tree.
const MaxDepth = 12

// Sentinel errors returned by spaces and the registry.
var (
	// ErrNegativeDepth is returned when a tree is requested with depth < 0.
	ErrNegativeDepth = errors.New("geonym: negative depth")

	// ErrDepthLimit is returned when generation or rendering would recurse
	// deeper than MaxDepth.
	ErrDepthLimit = errors.New("geonym: depth limit exceeded")

	// ErrArity is returned when a node does not have the number of children
	// the rendering space expects.
	ErrArity = errors.New("geonym: tree arity mismatch")

	// ErrInvalidParams is returned when generation parameters cannot be
	// decoded for a space.
	ErrInvalidParams = errors.New("geonym: invalid parameters")

	// ErrUnknownSpace is returned when a registry lookup misses.
	ErrUnknownSpace = errors.New("geonym: unknown space")

	// ErrDuplicateSpace is returned when two spaces share an identifier.
	ErrDuplicateSpace = errors.New("geonym: duplicate space")

	// ErrEmptyIdentifier is returned when registering a space without an
	// identifier.
	ErrEmptyIdentifier = errors.New("geonym: empty space identifier")
)
