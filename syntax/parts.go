package syntax

import (
	"github.com/cab-lang/cab/cst"
	"github.com/cab-lang/cab/kind"
)

// InterpolatedPartKind tags one element of a stringlike's part sequence.
type InterpolatedPartKind uint8

const (
	PartDelimiter InterpolatedPartKind = iota
	PartContent
	PartInterpolation
)

// InterpolatedPart is one element of a Path, String, Rune, Island, or
// quoted Identifier's part sequence (spec.md §3.3).
type InterpolatedPart struct {
	PartKind InterpolatedPartKind
	Token    *cst.Red   // valid when PartKind is PartDelimiter or PartContent
	Inner    Expression // valid when PartKind is PartInterpolation
}

func isDelimiterKind(k kind.Kind) bool {
	switch k {
	case kind.TOKEN_STRING_START, kind.TOKEN_STRING_END,
		kind.TOKEN_RUNE_START, kind.TOKEN_RUNE_END,
		kind.TOKEN_IDENTIFIER_QUOTE_START, kind.TOKEN_IDENTIFIER_QUOTE_END,
		kind.TOKEN_PATH_START, kind.TOKEN_PATH_END,
		kind.TOKEN_ISLAND_HEADER_START, kind.TOKEN_ISLAND_HEADER_END:
		return true
	default:
		return false
	}
}

func interpolatedParts(n *cst.Red) []InterpolatedPart {
	var out []InterpolatedPart
	for _, c := range n.ChildrenWithTokens() {
		switch {
		case c.Kind() == kind.NODE_INTERPOLATION:
			for _, inner := range c.Children() {
				if expr, err := Cast(inner); err == nil {
					out = append(out, InterpolatedPart{PartKind: PartInterpolation, Inner: expr})
					break
				}
			}
		case isDelimiterKind(c.Kind()):
			out = append(out, InterpolatedPart{PartKind: PartDelimiter, Token: c})
		case c.Kind() == kind.TOKEN_CONTENT:
			out = append(out, InterpolatedPart{PartKind: PartContent, Token: c})
		}
	}
	return out
}

// Parts returns the delimiter/content/interpolation sequence of a Path,
// String, Rune, or Island expression.
func (e Expression) Parts() []InterpolatedPart {
	return interpolatedParts(e.Node)
}

// IdentifierValue is the tagged union Identifier.value() returns (spec.md
// §4.3): Plain holds the bare identifier token; Quoted holds the part
// sequence of a backtick-quoted identifier.
type IdentifierValue struct {
	Plain  *cst.Red
	Quoted []InterpolatedPart
}

// IsPlain reports whether the identifier is a bare token rather than a
// quoted, interpolated form.
func (v IdentifierValue) IsPlain() bool { return v.Plain != nil }

// Value returns an Identifier expression's tagged value: Plain when the
// first non-trivia leaf is a bare identifier token, Quoted (iterating
// interpolated parts of the nested NODE_IDENTIFIER_QUOTED child) otherwise.
func (e Expression) Value() IdentifierValue {
	if first := e.Node.FirstToken(); first != nil && first.Kind() == kind.TOKEN_IDENTIFIER {
		return IdentifierValue{Plain: first}
	}
	for _, c := range e.Node.Children() {
		if c.Kind() == kind.NODE_IDENTIFIER_QUOTED {
			return IdentifierValue{Quoted: interpolatedParts(c)}
		}
	}
	return IdentifierValue{}
}
