package cst

import "github.com/cab-lang/cab/kind"

// Builder assembles a Green tree bottom-up from a flat token stream, mirroring
// how a Pratt parser naturally produces one: open a node, feed it tokens and
// already-built child nodes, close it. Checkpoint/StartNodeAt let a caller
// retroactively wrap siblings it already emitted into a new parent once it
// learns, after the fact, that they belong under one — the same shape the
// reference parser's event log gets with EventOpen inserted before an
// already-recorded run of EventToken/EventClose entries, except realized as
// a direct tree rather than replayed from a recorded event stream.
//
// A Builder is not safe for concurrent use; the Noder that drives it is
// expected to be single-threaded per spec.md §5.
type Builder struct {
	interner *Interner
	stack    [][]*Green // stack[i] holds the children accumulated for the i-th open frame
}

// NewBuilder returns a Builder that interns token text through interner.
func NewBuilder(interner *Interner) *Builder {
	return &Builder{interner: interner, stack: [][]*Green{nil}}
}

// Checkpoint marks a position within the currently open frame's sibling
// list, to be passed later to StartNodeAt.
type Checkpoint int

// Token appends a leaf of kind k covering exactly text to the currently open
// frame.
func (b *Builder) Token(k kind.Kind, text []byte) {
	id := b.interner.Intern(text)
	top := len(b.stack) - 1
	b.stack[top] = append(b.stack[top], &Green{Kind: k, Len: uint32(len(text)), TextID: id})
}

// StartNode opens a new frame; children accumulate in it until the matching
// FinishNode.
func (b *Builder) StartNode() {
	b.stack = append(b.stack, nil)
}

// FinishNode closes the innermost open frame, wraps its children in a node
// of kind k, and appends that node to the now-current frame.
func (b *Builder) FinishNode(k kind.Kind) {
	top := len(b.stack) - 1
	children := b.stack[top]
	b.stack = b.stack[:top]
	b.appendNode(k, children)
}

// Checkpoint returns a mark at the current end of the open frame's sibling
// list.
func (b *Builder) Checkpoint() Checkpoint {
	top := len(b.stack) - 1
	return Checkpoint(len(b.stack[top]))
}

// StartNodeAt reopens the currently open frame as of cp: every sibling
// appended since cp — tokens or already-finished nodes — is lifted into a
// fresh nested frame for a subsequent FinishNode to close. This is how a
// left operand already parsed as a bare expression gets wrapped into an
// InfixOperation once the operator following it is seen.
func (b *Builder) StartNodeAt(cp Checkpoint) {
	top := len(b.stack) - 1
	wrapped := append([]*Green(nil), b.stack[top][cp:]...)
	b.stack[top] = b.stack[top][:cp]
	b.stack = append(b.stack, wrapped)
}

func (b *Builder) appendNode(k kind.Kind, children []*Green) {
	if children == nil {
		// A node with no children must still differ from a token leaf,
		// which Green.IsToken recognizes by its nil Children.
		children = []*Green{}
	}
	var length uint32
	for _, c := range children {
		length += c.Len
	}
	node := &Green{Kind: k, Len: length, Children: children}
	parent := len(b.stack) - 1
	b.stack[parent] = append(b.stack[parent], node)
}

// Finish closes the build. Exactly one node must remain at the root frame —
// ordinarily the Noder's own top-level StartNode/FinishNode pair around the
// whole token stream.
func (b *Builder) Finish() *Green {
	if len(b.stack) != 1 {
		panic("cst: Finish called with an open StartNode still unmatched")
	}
	root := b.stack[0]
	if len(root) != 1 {
		panic("cst: Finish requires exactly one root node")
	}
	return root[0]
}

// Interner returns the interner this Builder interns token text through, so
// a caller can hand the same Interner to Red.
func (b *Builder) Interner() *Interner { return b.interner }
