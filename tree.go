package geonym

import (
	"encoding/json"
	"fmt"
)

// Tree is the recursive structure a space generates.
//
// A nil Tree is a leaf: a terminal that the space draws as a shape.
// A non-nil Tree is a node whose elements are its ordered children.
// The arity of a node is space-specific and co-designed with the space's
// Render method.
//
// Trees serialize naturally to JSON: a leaf is null and a node is an array,
// so a burrito tree reads as nested arrays of nulls.
type Tree []Tree

// Leaf is the terminal tree.
var Leaf Tree

// IsLeaf reports whether t is a leaf.
func (t Tree) IsLeaf() bool {
	return t == nil
}

// TreeStats summarizes the shape of a tree.
type TreeStats struct {
	Nodes  int `json:"nodes"`
	Leaves int `json:"leaves"`
	Depth  int `json:"depth"`
}

// Stats walks the tree and counts its nodes and leaves.
// Depth is 0 for a leaf and 1 + the deepest child for a node.
func (t Tree) Stats() TreeStats {
	if t.IsLeaf() {
		return TreeStats{Leaves: 1}
	}
	s := TreeStats{Nodes: 1, Depth: 1}
	for _, child := range t {
		cs := child.Stats()
		s.Nodes += cs.Nodes
		s.Leaves += cs.Leaves
		if cs.Depth+1 > s.Depth {
			s.Depth = cs.Depth + 1
		}
	}
	return s
}

// CheckArity verifies that every node in t has exactly n children and that
// the tree is no deeper than MaxDepth.
func (t Tree) CheckArity(n int) error {
	return t.checkArity(n, 0)
}

func (t Tree) checkArity(n, level int) error {
	if t.IsLeaf() {
		return nil
	}
	if level >= MaxDepth {
		return fmt.Errorf("tree nested below level %d: %w", MaxDepth, ErrDepthLimit)
	}
	if len(t) != n {
		return fmt.Errorf("node at level %d has %d children, want %d: %w", level, len(t), n, ErrArity)
	}
	for _, child := range t {
		if err := child.checkArity(n, level+1); err != nil {
			return err
		}
	}
	return nil
}

// MarshalIndent renders the tree as indented JSON for display.
// The output is a diagnostic view and carries no compatibility promise.
func (t Tree) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
