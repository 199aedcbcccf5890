package cst

import "github.com/cab-lang/cab/kind"

// Green is an immutable, shareable tree value: either a token leaf holding
// interned source text, or an interior node holding ordered children.
//
// Green trees carry no parent pointers and no absolute offsets — that
// information belongs entirely to the Red layer built on top, keeping the
// tree itself a strictly downward ownership graph with no back-edges to
// tangle sharing or garbage collection (spec.md §9).
type Green struct {
	Kind     kind.Kind
	Len      uint32
	TextID   TokenID // meaningful only when Children is nil
	Children []*Green
}

// IsToken reports whether g is a leaf.
func (g *Green) IsToken() bool { return g.Children == nil }
