package cst

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cab-lang/cab/kind"
)

// buildSum builds the tree for "a + b", exercising Checkpoint/StartNodeAt
// the way a Pratt loop wraps an already-parsed left operand once it sees
// the infix operator that follows it.
func buildSum(t *testing.T) (*Green, *Interner) {
	t.Helper()
	interner := NewInterner()
	b := NewBuilder(interner)

	b.StartNode() // root

	cp := b.Checkpoint()
	b.Token(kind.TOKEN_IDENTIFIER, []byte("a"))
	b.StartNodeAt(cp)
	b.Token(kind.TOKEN_WHITESPACE, []byte(" "))
	b.Token(kind.TOKEN_PLUS, []byte("+"))
	b.Token(kind.TOKEN_WHITESPACE, []byte(" "))
	b.Token(kind.TOKEN_IDENTIFIER, []byte("b"))
	b.FinishNode(kind.NODE_INFIX_OPERATION)

	b.FinishNode(kind.NODE_ERROR) // synthetic root wrapper, kind irrelevant here

	return b.Finish(), interner
}

func TestSpanContiguityAndLosslessness(t *testing.T) {
	green, interner := buildSum(t)
	root := NewRoot(green, interner)

	require.Equal(t, Span{0, 5}, root.Span())

	infix := root.Children()[0]
	require.Equal(t, kind.NODE_INFIX_OPERATION, infix.Kind())
	require.Equal(t, Span{0, 5}, infix.Span())

	var leafText []byte
	var walk func(r *Red)
	walk = func(r *Red) {
		if !r.green.IsToken() {
			for _, c := range r.ChildrenWithTokens() {
				walk(c)
			}
			return
		}
		leafText = append(leafText, r.Text()...)
	}
	walk(root)
	require.Equal(t, "a + b", string(leafText))

	// invariant 4: every child's span is contiguous with its predecessor's.
	children := infix.ChildrenWithTokens()
	for i := 1; i < len(children); i++ {
		require.Equal(t, children[i-1].Span().End, children[i].Span().Start)
	}
}

func TestFirstTokenSkipsTrivia(t *testing.T) {
	green, interner := buildSum(t)
	root := NewRoot(green, interner)
	first := root.FirstToken()
	require.NotNil(t, first)
	require.Equal(t, kind.TOKEN_IDENTIFIER, first.Kind())
	require.Equal(t, "a", string(first.Text()))
}

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()
	id1 := in.Intern([]byte("same"))
	id2 := in.Intern([]byte("same"))
	id3 := in.Intern([]byte("different"))
	require.Equal(t, id1, id2)
	require.NotEqual(t, id1, id3)
	require.Equal(t, "same", string(in.Text(id1)))
}

func TestFinishPanicsOnUnbalancedNodes(t *testing.T) {
	require.Panics(t, func() {
		b := NewBuilder(NewInterner())
		b.StartNode()
		b.Token(kind.TOKEN_IDENTIFIER, []byte("a"))
		b.Finish() // missing FinishNode
	})
}
