package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cab-lang/cab/cst"
	"github.com/cab-lang/cab/kind"
	"github.com/cab-lang/cab/syntax"
)

func identifier(b *cst.Builder, name string) {
	b.StartNode()
	b.Token(kind.TOKEN_IDENTIFIER, []byte(name))
	b.FinishNode(kind.NODE_IDENTIFIER)
}

func buildExpr(t *testing.T, build func(b *cst.Builder)) syntax.Expression {
	t.Helper()
	interner := cst.NewInterner()
	b := cst.NewBuilder(interner)
	b.StartNode()
	build(b)
	b.FinishNode(kind.NODE_ERROR)
	green := b.Finish()
	root := cst.NewRoot(green, interner).Children()[0]
	expr, err := syntax.Cast(root)
	require.NoError(t, err)
	return expr
}

func TestParenthesisMissingInnerAndUnclosed(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_LEFT_PARENTHESIS, []byte("("))
		b.FinishNode(kind.NODE_PARENTHESIS)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 2)
	require.Equal(t, "parenthesis without inner expression", sink.Reports[0].Message)
	require.Equal(t, "unclosed parenthesis", sink.Reports[1].Message)
	require.Equal(t, LabelSecondary, sink.Reports[1].Labels[1].Role)
}

func TestListSequenceInnerReportsOnce(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_LEFT_BRACKET, []byte("["))
		b.StartNode()
		identifier(b, "a")
		b.Token(kind.TOKEN_SEMICOLON, []byte(";"))
		identifier(b, "b")
		b.FinishNode(kind.NODE_INFIX_OPERATION)
		b.Token(kind.TOKEN_RIGHT_BRACKET, []byte("]"))
		b.FinishNode(kind.NODE_LIST)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 1)
	require.Equal(t, "inner expression of list cannot be sequence", sink.Reports[0].Message)
}

func TestApplyPipeNonAssociationReported(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.StartNode()
		identifier(b, "a")
		b.Token(kind.TOKEN_PIPE_GREATER, []byte("|>"))
		identifier(b, "b")
		b.FinishNode(kind.NODE_INFIX_OPERATION)
		b.Token(kind.TOKEN_LESS_PIPE, []byte("<|"))
		identifier(b, "c")
		b.FinishNode(kind.NODE_INFIX_OPERATION)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 1)
	require.Equal(t, "application and pipe operators do not associate", sink.Reports[0].Message)
}

func TestBindRejectsNonIdentifier(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_AT, []byte("@"))
		b.StartNode()
		b.Token(kind.TOKEN_INTEGER, []byte("1"))
		b.FinishNode(kind.NODE_INTEGER)
		b.FinishNode(kind.NODE_BIND)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 1)
	require.Contains(t, sink.Reports[0].Message, "invalid bind")
	require.Contains(t, sink.Reports[0].Message, "INTEGER")
}

func TestBindOverErrorFragmentProducesNoReport(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_AT, []byte("@"))
		b.StartNode()
		b.FinishNode(kind.NODE_ERROR)
		b.FinishNode(kind.NODE_BIND)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Empty(t, sink.Reports)
}

func TestIfRequiresAllThreeParts(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		identifier(b, "cond")
		identifier(b, "then")
		b.FinishNode(kind.NODE_IF)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 1)
	require.Contains(t, sink.Reports[0].Message, "else branch")
}

func TestRuneMustBeExactlyOneCharacter(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_RUNE_START, []byte("'"))
		b.Token(kind.TOKEN_CONTENT, []byte("ab"))
		b.Token(kind.TOKEN_RUNE_END, []byte("'"))
		b.FinishNode(kind.NODE_RUNE)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 1)
	require.Equal(t, "rune literal must contain exactly one character or escape", sink.Reports[0].Message)
}

func TestRuneEmptyReportsOnce(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_RUNE_START, []byte("'"))
		b.Token(kind.TOKEN_RUNE_END, []byte("'"))
		b.FinishNode(kind.NODE_RUNE)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 1)
	require.Equal(t, "rune literal cannot be empty", sink.Reports[0].Message)
}

func TestMultilineStringRequiresEmptyFirstAndLastLine(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_STRING_START, []byte("\""))
		b.Token(kind.TOKEN_CONTENT, []byte("oops\n  body\nnot empty"))
		b.Token(kind.TOKEN_STRING_END, []byte("\""))
		b.FinishNode(kind.NODE_STRING)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 2)
	require.Equal(t, "first line of a multiline string must be empty", sink.Reports[0].Message)
	require.Equal(t, "last line of a multiline string must be empty", sink.Reports[1].Message)
}

func TestMultilineStringMixedIndentation(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_STRING_START, []byte("\""))
		b.Token(kind.TOKEN_CONTENT, []byte("\n\tone\n  two\n"))
		b.Token(kind.TOKEN_STRING_END, []byte("\""))
		b.FinishNode(kind.NODE_STRING)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 1)
	require.Equal(t, "multiline string mixes different indentation whitespace", sink.Reports[0].Message)
}

func TestSingleLineStringReportsNothing(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.Token(kind.TOKEN_STRING_START, []byte("\""))
		b.Token(kind.TOKEN_CONTENT, []byte("hello"))
		b.Token(kind.TOKEN_STRING_END, []byte("\""))
		b.FinishNode(kind.NODE_STRING)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Empty(t, sink.Reports)
}

func TestQuotedIdentifierSuggestsKeyword(t *testing.T) {
	expr := buildExpr(t, func(b *cst.Builder) {
		b.StartNode()
		b.StartNode()
		b.Token(kind.TOKEN_IDENTIFIER_QUOTE_START, []byte("`"))
		b.Token(kind.TOKEN_CONTENT, []byte("thn"))
		b.Token(kind.TOKEN_IDENTIFIER_QUOTE_END, []byte("`"))
		b.FinishNode(kind.NODE_IDENTIFIER_QUOTED)
		b.FinishNode(kind.NODE_IDENTIFIER)
	})

	var sink Sink
	Validate(expr, &sink)
	require.Len(t, sink.Reports, 1)
	require.Contains(t, sink.Reports[0].Tip, "then")
}
