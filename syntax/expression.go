// Package syntax implements the typed Expression view layered over the
// untyped CST (spec.md §3.3, §4.3): a tagged union classifying a node's Kind
// into one of sixteen expression variants, with Cast total on that set.
package syntax

import (
	"fmt"

	"github.com/cab-lang/cab/cst"
	"github.com/cab-lang/cab/kind"
)

// ExpressionKind tags which node variant an Expression wraps.
type ExpressionKind uint8

const (
	ExprError ExpressionKind = iota
	ExprParenthesis
	ExprList
	ExprAttributes
	ExprPrefixOperation
	ExprInfixOperation
	ExprSuffixOperation
	ExprIsland
	ExprPath
	ExprBind
	ExprIdentifier
	ExprString
	ExprRune
	ExprInteger
	ExprFloat
	ExprIf
)

// Expression is a typed view over a *cst.Red. It owns no state beyond the
// tag and the wrapped node: every accessor re-derives its answer from the
// node's children, so two Expressions over the same Red are always equal by
// value and never drift out of sync with the tree.
type Expression struct {
	Variant ExpressionKind
	Node    *cst.Red
}

// Cast converts r into an Expression. It is total on the node-kind set named
// in spec.md §3.3 and returns an error — never a panic — when r.Kind() is
// outside that set (spec.md §9's "double representation" design note).
func Cast(r *cst.Red) (Expression, error) {
	variant, ok := variantOf(r.Kind())
	if !ok {
		return Expression{}, fmt.Errorf("syntax: %s is not an expression kind", r.Kind())
	}
	return Expression{Variant: variant, Node: r}, nil
}

func variantOf(k kind.Kind) (ExpressionKind, bool) {
	switch k {
	case kind.NODE_ERROR:
		return ExprError, true
	case kind.NODE_PARENTHESIS:
		return ExprParenthesis, true
	case kind.NODE_LIST:
		return ExprList, true
	case kind.NODE_ATTRIBUTES:
		return ExprAttributes, true
	case kind.NODE_PREFIX_OPERATION:
		return ExprPrefixOperation, true
	case kind.NODE_INFIX_OPERATION:
		return ExprInfixOperation, true
	case kind.NODE_SUFFIX_OPERATION:
		return ExprSuffixOperation, true
	case kind.NODE_ISLAND:
		return ExprIsland, true
	case kind.NODE_PATH:
		return ExprPath, true
	case kind.NODE_BIND:
		return ExprBind, true
	case kind.NODE_IDENTIFIER:
		return ExprIdentifier, true
	case kind.NODE_STRING:
		return ExprString, true
	case kind.NODE_RUNE:
		return ExprRune, true
	case kind.NODE_INTEGER:
		return ExprInteger, true
	case kind.NODE_FLOAT:
		return ExprFloat, true
	case kind.NODE_IF:
		return ExprIf, true
	default:
		return 0, false
	}
}

// innerExpression returns the first direct child that casts to an
// Expression, used by Parenthesis, List, and Attributes alike: all three
// are "one token, one optional inner expression, one closing token" shapes.
func (e Expression) innerExpression() (Expression, bool) {
	for _, c := range e.Node.Children() {
		if expr, err := Cast(c); err == nil {
			return expr, true
		}
	}
	return Expression{}, false
}

// OpenToken returns the opening bracket token of a Parenthesis, List, or
// Attributes node, or nil if the Noder never produced one.
func (e Expression) OpenToken() *cst.Red {
	for _, c := range e.Node.ChildrenWithTokens() {
		switch c.Kind() {
		case kind.TOKEN_LEFT_PARENTHESIS, kind.TOKEN_LEFT_BRACKET, kind.TOKEN_LEFT_BRACE:
			return c
		}
	}
	return nil
}

// CloseToken returns the closing bracket token of a Parenthesis, List, or
// Attributes node, or nil when unclosed.
func (e Expression) CloseToken() *cst.Red {
	for _, c := range e.Node.ChildrenWithTokens() {
		switch c.Kind() {
		case kind.TOKEN_RIGHT_PARENTHESIS, kind.TOKEN_RIGHT_BRACKET, kind.TOKEN_RIGHT_BRACE:
			return c
		}
	}
	return nil
}

// ParenthesisExpression returns a Parenthesis node's inner expression, if
// any (spec.md §4.3).
func (e Expression) ParenthesisExpression() (Expression, bool) { return e.innerExpression() }

// AttributesExpression returns an Attributes node's inner expression, if
// any.
func (e Expression) AttributesExpression() (Expression, bool) { return e.innerExpression() }

// ListInnerExpression returns a List node's raw inner expression, before
// SameItems flattening — the Validator needs this to detect a bare Sequence
// operator at the top, which SameItems would never unwrap.
func (e Expression) ListInnerExpression() (Expression, bool) { return e.innerExpression() }

// ListItems returns a List node's items by flattening its inner expression
// through SameItems (spec.md §4.3, §4.5).
func (e Expression) ListItems() ([]Expression, bool) {
	inner, ok := e.innerExpression()
	if !ok {
		return nil, false
	}
	return SameItems(inner), true
}

// PrefixOperand returns a PrefixOperation's right operand.
func (e Expression) PrefixOperand() (Expression, bool) { return e.innerExpression() }

// SuffixOperand returns a SuffixOperation's left (only) operand.
func (e Expression) SuffixOperand() (Expression, bool) { return e.innerExpression() }

// InfixOperands returns an InfixOperation's left and right operands. ok is
// false if the Noder did not attach exactly two operand expressions; the
// Validator emits no report for such a node and does not descend into it.
func (e Expression) InfixOperands() (left, right Expression, ok bool) {
	var found []Expression
	for _, c := range e.Node.Children() {
		if expr, err := Cast(c); err == nil {
			found = append(found, expr)
		}
	}
	if len(found) != 2 {
		return Expression{}, Expression{}, false
	}
	return found[0], found[1], true
}

// IfParts returns an If node's condition, consequence, and alternative.
// Per spec.md §9's resolved open question, all three are required; ok is
// false when fewer than three operand expressions are present, which the
// Validator reports as a missing-else (or missing-condition/-consequence)
// structural error.
func (e Expression) IfParts() (condition, consequence, alternative Expression, ok bool) {
	var found []Expression
	for _, c := range e.Node.Children() {
		if expr, err := Cast(c); err == nil {
			found = append(found, expr)
		}
	}
	if len(found) != 3 {
		return Expression{}, Expression{}, Expression{}, false
	}
	return found[0], found[1], found[2], true
}

// BindIdentifier returns a Bind node's identifier child, cast to an
// Identifier expression. ok is false when the child is missing or is not an
// Identifier (spec.md §4.6's "invalid bind" check); badKind then names the
// offending child's kind, or kind.NODE_ERROR when the child is itself a
// recovery fragment the Validator should treat as already reported.
func (e Expression) BindIdentifier() (ident Expression, ok bool, badKind kind.Kind) {
	children := e.Node.Children()
	if len(children) == 0 {
		return Expression{}, false, kind.NODE_ERROR
	}
	child := children[0]
	expr, err := Cast(child)
	if err != nil || expr.Variant != ExprIdentifier {
		return Expression{}, false, child.Kind()
	}
	return expr, true, 0
}
