package validate

import (
	"unicode"
	"unicode/utf8"

	"github.com/cab-lang/cab/cst"
	"github.com/cab-lang/cab/kind"
	"github.com/cab-lang/cab/syntax"
)

// Validate walks expr and appends structural diagnostics to sink (spec.md
// §4.6). It never panics on malformed input: every check degrades to a
// Report, matching the Noder's own recovery discipline.
func Validate(expr syntax.Expression, sink *Sink) {
	switch expr.Variant {
	case syntax.ExprParenthesis:
		validateParenthesis(expr, sink)
	case syntax.ExprList:
		validateList(expr, sink)
	case syntax.ExprAttributes:
		validateAttributes(expr, sink)
	case syntax.ExprPrefixOperation:
		if operand, ok := expr.PrefixOperand(); ok {
			Validate(operand, sink)
		}
	case syntax.ExprSuffixOperation:
		if operand, ok := expr.SuffixOperand(); ok {
			Validate(operand, sink)
		}
	case syntax.ExprInfixOperation:
		validateInfix(expr, sink)
	case syntax.ExprPath, syntax.ExprIsland:
		validateParts(expr, sink)
	case syntax.ExprIdentifier:
		if v := expr.Value(); !v.IsPlain() {
			validateIdentifierQuoted(expr, v.Quoted, sink)
		}
	case syntax.ExprString:
		validateString(expr, sink)
	case syntax.ExprRune:
		validateRune(expr, sink)
	case syntax.ExprBind:
		validateBind(expr, sink)
	case syntax.ExprIf:
		validateIf(expr, sink)
	}
}

func validateParenthesis(expr syntax.Expression, sink *Sink) {
	open := expr.OpenToken()
	if inner, ok := expr.ParenthesisExpression(); ok {
		Validate(inner, sink)
	} else if open != nil {
		end := open.Span().End
		sink.Emit(New("parenthesis without inner expression").
			WithLabel(LabelPrimary, cst.Span{Start: end, End: end}, ""))
	}
	if expr.CloseToken() == nil {
		emitUnclosed(expr, sink, "unclosed parenthesis", open)
	}
}

func validateList(expr syntax.Expression, sink *Sink) {
	open := expr.OpenToken()
	if inner, ok := expr.ListInnerExpression(); ok {
		if inner.Variant == syntax.ExprInfixOperation && inner.InfixOperator() == syntax.Sequence {
			sink.Emit(New("inner expression of list cannot be sequence").
				WithLabel(LabelPrimary, inner.Node.Span(), "").
				WithTip("parenthesize the sequence if this is intentional"))
		}
		items, _ := expr.ListItems()
		for _, item := range items {
			Validate(item, sink)
		}
	}
	if expr.CloseToken() == nil {
		emitUnclosed(expr, sink, "unclosed list", open)
	}
}

func validateAttributes(expr syntax.Expression, sink *Sink) {
	open := expr.OpenToken()
	if inner, ok := expr.AttributesExpression(); ok {
		Validate(inner, sink)
	}
	// TODO: warn when an attribute set's items don't look like bindings.
	if expr.CloseToken() == nil {
		emitUnclosed(expr, sink, "unclosed attributes", open)
	}
}

func emitUnclosed(expr syntax.Expression, sink *Sink, message string, open *cst.Red) {
	end := expr.Node.Span().End
	report := New(message).WithLabel(LabelPrimary, cst.Span{Start: end, End: end}, "")
	if open != nil {
		report = report.WithLabel(LabelSecondary, open.Span(), "opened here")
	}
	sink.Emit(report)
}

func validateInfix(expr syntax.Expression, sink *Sink) {
	left, right, ok := expr.InfixOperands()
	if !ok {
		return
	}
	Validate(left, sink)
	Validate(right, sink)

	op := expr.InfixOperator()
	if op == syntax.Apply || op == syntax.Pipe {
		checkNonAssociation(op, left, sink)
		checkNonAssociation(op, right, sink)
	}
}

func checkNonAssociation(op syntax.InfixOperator, child syntax.Expression, sink *Sink) {
	if child.Variant != syntax.ExprInfixOperation {
		return
	}
	childOp := child.InfixOperator()
	nonAssociating := (op == syntax.Apply && childOp == syntax.Pipe) ||
		(op == syntax.Pipe && childOp == syntax.Apply)
	if nonAssociating {
		sink.Emit(New("application and pipe operators do not associate").
			WithLabel(LabelPrimary, child.Node.Span(), ""))
	}
}

func validateParts(expr syntax.Expression, sink *Sink) {
	parts := expr.Parts()
	reportControlCharOnce(parts, sink)
	for _, p := range parts {
		if p.PartKind == syntax.PartInterpolation {
			Validate(p.Inner, sink)
		}
	}
}

func validateIdentifierQuoted(expr syntax.Expression, quoted []syntax.InterpolatedPart, sink *Sink) {
	reportControlCharOnce(quoted, sink)
	for _, p := range quoted {
		if p.PartKind == syntax.PartInterpolation {
			Validate(p.Inner, sink)
		}
	}
	if tip, ok := suggestKeywordTip(quotedContentText(quoted)); ok {
		sink.Emit(New("quoted identifier closely matches a reserved keyword").
			WithLabel(LabelSecondary, expr.Node.Span(), "").
			WithTip(tip))
	}
}

func quotedContentText(parts []syntax.InterpolatedPart) string {
	var text []byte
	for _, p := range parts {
		if p.PartKind == syntax.PartContent {
			text = append(text, p.Token.Text()...)
		}
	}
	return string(text)
}

func reportControlCharOnce(parts []syntax.InterpolatedPart, sink *Sink) {
	for _, p := range parts {
		if p.PartKind != syntax.PartContent {
			continue
		}
		if span, found := firstControlCharInBytes(p.Token.Text(), p.Token.Span().Start); found {
			sink.Emit(New("content contains a control character").
				WithLabel(LabelPrimary, span, "").
				WithTip("remove or escape the control character").
				WithHelp("control characters are rarely intentional in source text"))
			return
		}
	}
}

func firstControlCharInBytes(text []byte, base uint32) (cst.Span, bool) {
	offset := 0
	for offset < len(text) {
		r, size := utf8.DecodeRune(text[offset:])
		if unicode.IsControl(r) {
			return cst.Span{Start: base + uint32(offset), End: base + uint32(offset+size)}, true
		}
		offset += size
	}
	return cst.Span{}, false
}

func validateBind(expr syntax.Expression, sink *Sink) {
	ident, ok, badKind := expr.BindIdentifier()
	if !ok {
		if badKind != kind.NODE_ERROR {
			sink.Emit(New("invalid bind: expected an identifier, found " + badKind.String()).
				WithLabel(LabelPrimary, expr.Node.Span(), ""))
		}
		return
	}
	Validate(ident, sink)
}

func validateIf(expr syntax.Expression, sink *Sink) {
	condition, consequence, alternative, ok := expr.IfParts()
	if !ok {
		sink.Emit(New("if requires a condition, a consequence, and an else branch").
			WithLabel(LabelPrimary, expr.Node.Span(), ""))
		return
	}
	Validate(condition, sink)
	Validate(consequence, sink)
	Validate(alternative, sink)
}
