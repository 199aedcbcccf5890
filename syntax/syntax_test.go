package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cab-lang/cab/cst"
	"github.com/cab-lang/cab/kind"
)

// identifier builds a bare NODE_IDENTIFIER wrapping a single TOKEN_IDENTIFIER
// leaf with the given text.
func identifier(b *cst.Builder, name string) {
	b.StartNode()
	b.Token(kind.TOKEN_IDENTIFIER, []byte(name))
	b.FinishNode(kind.NODE_IDENTIFIER)
}

// infixSame builds NODE_INFIX_OPERATION(Same, left-already-open, right) by
// checkpointing back over the caller's already-emitted left sibling, the
// way the Noder wraps a left operand once it sees the comma that follows it.
func infixSame(b *cst.Builder, left func(), right func()) {
	cp := b.Checkpoint()
	left()
	b.StartNodeAt(cp)
	b.Token(kind.TOKEN_COMMA, []byte(","))
	right()
	b.FinishNode(kind.NODE_INFIX_OPERATION)
}

func buildRoot(t *testing.T, build func(b *cst.Builder)) *cst.Red {
	t.Helper()
	interner := cst.NewInterner()
	b := cst.NewBuilder(interner)
	b.StartNode()
	build(b)
	b.FinishNode(kind.NODE_ERROR) // arbitrary wrapper kind, never inspected
	green := b.Finish()
	return cst.NewRoot(green, interner).Children()[0]
}

func TestCastTotalOnExpressionKinds(t *testing.T) {
	root := buildRoot(t, func(b *cst.Builder) { identifier(b, "x") })
	expr, err := Cast(root)
	require.NoError(t, err)
	require.Equal(t, ExprIdentifier, expr.Variant)
}

func TestCastRejectsNonExpressionKind(t *testing.T) {
	interner := cst.NewInterner()
	b := cst.NewBuilder(interner)
	b.StartNode() // outer wrapper
	b.StartNode() // inner wrapper
	b.Token(kind.TOKEN_WHITESPACE, []byte(" "))
	b.FinishNode(kind.NODE_ERROR)
	b.FinishNode(kind.NODE_ERROR)
	green := b.Finish()
	root := cst.NewRoot(green, interner)
	leaf := root.ChildrenWithTokens()[0].ChildrenWithTokens()[0]
	_, err := Cast(leaf)
	require.Error(t, err)
}

func TestSameItemsFlattensLeftToRight(t *testing.T) {
	root := buildRoot(t, func(b *cst.Builder) {
		infixSame(b, func() {
			infixSame(b, func() { identifier(b, "a") }, func() { identifier(b, "b") })
		}, func() { identifier(b, "c") })
	})
	expr, err := Cast(root)
	require.NoError(t, err)

	items := SameItems(expr)
	require.Len(t, items, 3)
	require.Equal(t, "a", string(items[0].Value().Plain.Text()))
	require.Equal(t, "b", string(items[1].Value().Plain.Text()))
	require.Equal(t, "c", string(items[2].Value().Plain.Text()))
}

func TestInfixOperatorDefaultsToImplicitApply(t *testing.T) {
	root := buildRoot(t, func(b *cst.Builder) {
		b.StartNode()
		identifier(b, "f")
		identifier(b, "x")
		b.FinishNode(kind.NODE_INFIX_OPERATION)
	})
	expr, err := Cast(root)
	require.NoError(t, err)
	require.Equal(t, ImplicitApply, expr.InfixOperator())
	require.False(t, expr.InfixOperator().IsTokenOwning())

	left, right, ok := expr.InfixOperands()
	require.True(t, ok)
	require.Equal(t, "f", string(left.Value().Plain.Text()))
	require.Equal(t, "x", string(right.Value().Plain.Text()))
}

func TestBindRequiresIdentifierChild(t *testing.T) {
	root := buildRoot(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_AT, []byte("@"))
		identifier(b, "name")
		b.FinishNode(kind.NODE_BIND)
	})
	expr, err := Cast(root)
	require.NoError(t, err)
	ident, ok, _ := expr.BindIdentifier()
	require.True(t, ok)
	require.Equal(t, "name", string(ident.Value().Plain.Text()))
}

func TestBindRejectsNonIdentifierChild(t *testing.T) {
	root := buildRoot(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_AT, []byte("@"))
		b.StartNode()
		b.Token(kind.TOKEN_INTEGER, []byte("1"))
		b.FinishNode(kind.NODE_INTEGER)
		b.FinishNode(kind.NODE_BIND)
	})
	expr, err := Cast(root)
	require.NoError(t, err)
	_, ok, badKind := expr.BindIdentifier()
	require.False(t, ok)
	require.Equal(t, kind.NODE_INTEGER, badKind)
}

func TestIntegerValueHonorsRadixAndSeparators(t *testing.T) {
	root := buildRoot(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_INTEGER, []byte("0x1_0"))
		b.FinishNode(kind.NODE_INTEGER)
	})
	expr, err := Cast(root)
	require.NoError(t, err)
	require.Equal(t, int64(16), expr.IntegerValue().Int64())
}

func TestFloatValueHexFraction(t *testing.T) {
	root := buildRoot(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_FLOAT, []byte("0x1.8"))
		b.FinishNode(kind.NODE_FLOAT)
	})
	expr, err := Cast(root)
	require.NoError(t, err)
	require.InDelta(t, 1.5, expr.FloatValue(), 1e-9)
}

func TestFloatValueDecimalExponent(t *testing.T) {
	root := buildRoot(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_FLOAT, []byte("1.5e2"))
		b.FinishNode(kind.NODE_FLOAT)
	})
	expr, err := Cast(root)
	require.NoError(t, err)
	require.InDelta(t, 150.0, expr.FloatValue(), 1e-9)
}
