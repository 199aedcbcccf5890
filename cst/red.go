package cst

import "github.com/cab-lang/cab/kind"

// Span is a byte-offset range into the original source, end-exclusive.
type Span struct {
	Start uint32
	End   uint32
}

// Red is a navigable view over a Green tree. It layers in the absolute
// offset and parent link the Green layer deliberately omits (spec.md §9);
// nothing about it mutates the underlying Green tree, so any number of Reds
// can walk the same Green tree concurrently and read-only.
type Red struct {
	green         *Green
	offset        uint32
	parent        *Red
	indexInParent int
	interner      *Interner
}

// NewRoot wraps a completed Green tree as the root of a Red traversal at
// offset 0.
func NewRoot(g *Green, interner *Interner) *Red {
	return &Red{green: g, interner: interner}
}

// Kind returns the node or token kind this Red wraps.
func (r *Red) Kind() kind.Kind { return r.green.Kind }

// Span returns the byte range this subtree covers in the original source.
func (r *Red) Span() Span { return Span{Start: r.offset, End: r.offset + r.green.Len} }

// Parent returns the enclosing Red, or nil at the root.
func (r *Red) Parent() *Red { return r.parent }

// IndexInParent returns this Red's position among its parent's
// ChildrenWithTokens, or -1 at the root.
func (r *Red) IndexInParent() int {
	if r.parent == nil {
		return -1
	}
	return r.indexInParent
}

// Text returns the exact source bytes a token leaf covers. It panics if
// called on an interior node.
func (r *Red) Text() []byte {
	if !r.green.IsToken() {
		panic("cst: Text called on a non-token node")
	}
	return r.interner.Text(r.green.TextID)
}

// ChildrenWithTokens returns every direct child — tokens and nodes alike —
// in source order. Spans are contiguous by construction (spec.md §8,
// invariant 4): each child's offset is exactly its predecessor's end.
func (r *Red) ChildrenWithTokens() []*Red {
	if r.green.IsToken() {
		return nil
	}
	out := make([]*Red, len(r.green.Children))
	offset := r.offset
	for i, c := range r.green.Children {
		out[i] = &Red{green: c, offset: offset, parent: r, indexInParent: i, interner: r.interner}
		offset += c.Len
	}
	return out
}

// Children returns only the direct children that are themselves interior
// nodes, skipping token leaves (including trivia).
func (r *Red) Children() []*Red {
	var out []*Red
	for _, c := range r.ChildrenWithTokens() {
		if !c.green.IsToken() {
			out = append(out, c)
		}
	}
	return out
}

// FirstToken returns the first non-trivia leaf in this subtree's pre-order
// walk, or nil if the subtree holds none.
func (r *Red) FirstToken() *Red {
	if r.green.IsToken() {
		if r.green.Kind.IsTrivia() {
			return nil
		}
		return r
	}
	for _, c := range r.ChildrenWithTokens() {
		if t := c.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}
