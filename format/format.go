// Package format implements the Parenthesize pretty-printer (spec.md §4.7):
// a deterministic renderer that makes every expression's grouping fully
// explicit, the way the teacher's tokenizer config (runtime/lexer/lexer.go)
// treats display styling as advisory decoration layered over plain text
// rather than something the underlying value depends on.
package format

import (
	"io"

	"github.com/cab-lang/cab/syntax"
)

// Palette is the fixed, cyclic bracket-color sequence. Display-only: a
// reader that strips ANSI escapes recovers the identical plain-text
// rendering (spec.md §4.7's determinism clause).
var Palette = []string{
	"\x1b[36m", // cyan
	"\x1b[35m", // magenta
	"\x1b[33m", // yellow
	"\x1b[32m", // green
}

const (
	resetStyle      = "\x1b[0m"
	literalStyle    = "\x1b[1m" // bold, for recognized literal spellings
)

// literalSpellings are Identifier.Plain spellings spec.md §4.7 calls out for
// styling; they carry no grammar meaning — a plain identifier that happens
// to spell one of these renders textually identical either way.
var literalSpellings = map[string]bool{
	"true": true, "false": true, "null": true, "undefined": true, "import": true,
}

// Parenthesize writes expr to w as a fully parenthesized, deterministic
// rendering. It never fails for a structurally valid expression; for a
// malformed fragment (a missing operand the Noder could not recover) it
// renders `error` in place of the missing piece rather than panicking.
func Parenthesize(w io.Writer, expr syntax.Expression) error {
	p := &printer{w: w}
	p.expr(expr)
	return p.err
}

type printer struct {
	w     io.Writer
	err   error
	depth int
}

func (p *printer) writeString(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// openBracket writes ch colored by the current depth, then deepens — the
// matching closeBracket shallows first so both halves of a pair share a
// color.
func (p *printer) openBracket(ch byte) {
	p.writeString(Palette[p.depth%len(Palette)])
	p.writeString(string(ch))
	p.writeString(resetStyle)
	p.depth++
}

func (p *printer) closeBracket(ch byte) {
	p.depth--
	p.writeString(Palette[p.depth%len(Palette)])
	p.writeString(string(ch))
	p.writeString(resetStyle)
}

func (p *printer) expr(e syntax.Expression) {
	switch e.Variant {
	case syntax.ExprError:
		p.writeString("error")
	case syntax.ExprParenthesis:
		if inner, ok := e.ParenthesisExpression(); ok {
			p.expr(inner)
		} else {
			p.writeString("error")
		}
	case syntax.ExprList:
		p.list(e)
	case syntax.ExprAttributes:
		p.attributes(e)
	case syntax.ExprPrefixOperation:
		p.prefix(e)
	case syntax.ExprSuffixOperation:
		p.suffix(e)
	case syntax.ExprInfixOperation:
		p.infix(e)
	case syntax.ExprPath, syntax.ExprString, syntax.ExprRune, syntax.ExprIsland:
		p.writeParts(e.Parts())
	case syntax.ExprIdentifier:
		p.identifier(e)
	case syntax.ExprBind:
		p.bind(e)
	case syntax.ExprInteger, syntax.ExprFloat:
		p.writeString(string(e.Node.FirstToken().Text()))
	case syntax.ExprIf:
		p.ifExpr(e)
	default:
		p.writeString("error")
	}
}

func (p *printer) list(e syntax.Expression) {
	p.openBracket('[')
	items, _ := e.ListItems()
	for i, item := range items {
		if i == 0 {
			p.writeString(" ")
		} else {
			p.writeString(", ")
		}
		p.expr(item)
	}
	if len(items) > 0 {
		p.writeString(" ")
	}
	p.closeBracket(']')
}

func (p *printer) attributes(e syntax.Expression) {
	p.openBracket('{')
	if inner, ok := e.AttributesExpression(); ok {
		p.writeString(" ")
		p.expr(inner)
		p.writeString(" ")
	}
	p.closeBracket('}')
}

func (p *printer) prefix(e syntax.Expression) {
	p.openBracket('(')
	p.writeString(e.PrefixOperator().Symbol())
	if operand, ok := e.PrefixOperand(); ok {
		p.expr(operand)
	} else {
		p.writeString("error")
	}
	p.closeBracket(')')
}

func (p *printer) suffix(e syntax.Expression) {
	p.openBracket('(')
	if operand, ok := e.SuffixOperand(); ok {
		p.expr(operand)
	} else {
		p.writeString("error")
	}
	p.writeString(e.SuffixOperator().Symbol())
	p.closeBracket(')')
}

// infix implements spec.md §4.7's three infix rendering rules: bare
// juxtaposition for ImplicitApply/Apply, reverse application for Pipe, and
// `l OP r` for everything else.
func (p *printer) infix(e syntax.Expression) {
	left, right, ok := e.InfixOperands()
	if !ok {
		p.writeString("error")
		return
	}
	op := e.InfixOperator()
	p.openBracket('(')
	switch op {
	case syntax.ImplicitApply, syntax.Apply:
		p.expr(left)
		p.writeString(" ")
		p.expr(right)
	case syntax.Pipe:
		p.expr(right)
		p.writeString(" ")
		p.expr(left)
	default:
		p.expr(left)
		p.writeString(" ")
		p.writeString(op.Symbol())
		p.writeString(" ")
		p.expr(right)
	}
	p.closeBracket(')')
}

func (p *printer) identifier(e syntax.Expression) {
	v := e.Value()
	if !v.IsPlain() {
		p.writeParts(v.Quoted)
		return
	}
	text := string(v.Plain.Text())
	if literalSpellings[text] {
		p.writeString(literalStyle)
		p.writeString(text)
		p.writeString(resetStyle)
		return
	}
	p.writeString(text)
}

func (p *printer) bind(e syntax.Expression) {
	p.writeString("@")
	if ident, ok, _ := e.BindIdentifier(); ok {
		p.identifier(ident)
	} else {
		p.writeString("error")
	}
}

func (p *printer) ifExpr(e syntax.Expression) {
	condition, consequence, alternative, ok := e.IfParts()
	p.openBracket('(')
	p.writeString("if ")
	if !ok {
		p.writeString("error")
		p.closeBracket(')')
		return
	}
	p.expr(condition)
	p.writeString(" then ")
	p.expr(consequence)
	p.writeString(" else ")
	p.expr(alternative)
	p.closeBracket(')')
}

// writeParts reproduces a Path/String/Rune/Island/IdentifierQuoted's
// delimiter/content/interpolation sequence verbatim, rendering
// interpolations as `\(…)`.
func (p *printer) writeParts(parts []syntax.InterpolatedPart) {
	for _, part := range parts {
		switch part.PartKind {
		case syntax.PartDelimiter, syntax.PartContent:
			p.writeString(string(part.Token.Text()))
		case syntax.PartInterpolation:
			p.writeString(`\(`)
			p.expr(part.Inner)
			p.writeString(")")
		}
	}
}
