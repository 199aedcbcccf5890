package syntax

import "github.com/cab-lang/cab/kind"

// PrefixOperator is one of the four prefix operators (spec.md §3.3).
type PrefixOperator uint8

const (
	Swwallation PrefixOperator = iota // +
	Negation                          // -
	Not                               // !
	Try                               // ?
)

// RightBindingPower returns the operator's right binding power, used by the
// Noder to decide how tightly it grabs its operand.
func (op PrefixOperator) RightBindingPower() int {
	switch op {
	case Swwallation, Negation:
		return 145
	case Not:
		return 125
	case Try:
		return 105
	}
	panic("syntax: unknown prefix operator")
}

// Symbol returns the operator's canonical rendering.
func (op PrefixOperator) Symbol() string {
	switch op {
	case Swwallation:
		return "+"
	case Negation:
		return "-"
	case Not:
		return "!"
	case Try:
		return "?"
	}
	panic("syntax: unknown prefix operator")
}

var tokenToPrefixOp = map[kind.Kind]PrefixOperator{
	kind.TOKEN_PLUS:  Swwallation,
	kind.TOKEN_MINUS:  Negation,
	kind.TOKEN_BANG:   Not,
	kind.TOKEN_QUESTION: Try,
}

// PrefixOperator returns the operator token attached to a PrefixOperation
// node.
func (e Expression) PrefixOperator() PrefixOperator {
	for _, c := range e.Node.ChildrenWithTokens() {
		if op, ok := tokenToPrefixOp[c.Kind()]; ok {
			return op
		}
	}
	panic("syntax: prefix operation node has no operator token")
}

// SuffixOperator is one of the two suffix operators (spec.md §3.3).
type SuffixOperator uint8

const (
	SuffixSame SuffixOperator = iota // ,
	SuffixSequence                   // ;
)

func (op SuffixOperator) Symbol() string {
	if op == SuffixSame {
		return ","
	}
	return ";"
}

// SuffixOperator returns the operator token attached to a SuffixOperation
// node.
func (e Expression) SuffixOperator() SuffixOperator {
	for _, c := range e.Node.ChildrenWithTokens() {
		switch c.Kind() {
		case kind.TOKEN_COMMA:
			return SuffixSame
		case kind.TOKEN_SEMICOLON:
			return SuffixSequence
		}
	}
	panic("syntax: suffix operation node has no operator token")
}

// InfixOperator is one of the infix operators from the table in spec.md
// §4.4. Several distinct operators (Mul/Div, Comparisons, And/All, Or/Any)
// share a binding-power pair but remain separate operators with separate
// tokens and symbols.
type InfixOperator uint8

const (
	Select InfixOperator = iota
	ImplicitApply
	Concat
	Mul
	Div
	Power
	Add
	Sub
	Update
	LessEqual
	Less
	GreaterEqual
	Greater
	Construct
	And
	All
	Or
	Any
	Implication
	Pipe
	Apply
	Lambda
	Equal
	NotEqual
	Same
	Sequence
)

// BindingPower returns the (left, right) binding-power pair from spec.md
// §4.4. Asymmetry encodes associativity: left-assoc iff left<right,
// right-assoc iff left>right.
func (op InfixOperator) BindingPower() (left, right int) {
	switch op {
	case Select:
		return 185, 180
	case ImplicitApply:
		return 170, 175
	case Concat:
		return 160, 165
	case Mul, Div:
		return 150, 155
	case Power:
		return 155, 150
	case Add, Sub:
		return 130, 135
	case Update:
		return 110, 115
	case LessEqual, Less, GreaterEqual, Greater:
		return 100, 105
	case Construct:
		return 95, 90
	case And, All:
		return 85, 80
	case Or, Any:
		return 75, 70
	case Implication:
		return 65, 60
	case Pipe:
		return 50, 55
	case Apply:
		return 55, 50
	case Lambda:
		return 45, 40
	case Equal, NotEqual:
		return 35, 30
	case Same:
		return 25, 20
	case Sequence:
		return 15, 10
	}
	panic("syntax: unknown infix operator")
}

// IsTokenOwning reports whether op has an owned token in the tree.
// ImplicitApply is the sole exception — it marks bare juxtaposition.
func (op InfixOperator) IsTokenOwning() bool { return op != ImplicitApply }

// Symbol returns op's canonical rendering, using the Equal/NotEqual symbol
// choice from the newer grammar layer per spec.md §9's resolved open
// question (`=`/`!=`, not `==`/`!=`).
func (op InfixOperator) Symbol() string {
	switch op {
	case Select:
		return "."
	case ImplicitApply:
		return ""
	case Concat:
		return "++"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Power:
		return "^"
	case Add:
		return "+"
	case Sub:
		return "-"
	case Update:
		return "//"
	case LessEqual:
		return "<="
	case Less:
		return "<"
	case GreaterEqual:
		return ">="
	case Greater:
		return ">"
	case Construct:
		return ":"
	case And:
		return "&&"
	case All:
		return "&"
	case Or:
		return "||"
	case Any:
		return "|"
	case Implication:
		return "->"
	case Pipe:
		return "|>"
	case Apply:
		return "<|"
	case Lambda:
		return "=>"
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case Same:
		return ","
	case Sequence:
		return ";"
	}
	panic("syntax: unknown infix operator")
}

var tokenToInfixOp = map[kind.Kind]InfixOperator{
	kind.TOKEN_DOT:                   Select,
	kind.TOKEN_PLUS_PLUS:             Concat,
	kind.TOKEN_ASTERISK:              Mul,
	kind.TOKEN_SLASH:                 Div,
	kind.TOKEN_CARET:                 Power,
	kind.TOKEN_PLUS:                  Add,
	kind.TOKEN_MINUS:                 Sub,
	kind.TOKEN_SLASH_SLASH:           Update,
	kind.TOKEN_LESS_EQUAL:            LessEqual,
	kind.TOKEN_LESS:                  Less,
	kind.TOKEN_GREATER_EQUAL:         GreaterEqual,
	kind.TOKEN_GREATER:               Greater,
	kind.TOKEN_COLON:                 Construct,
	kind.TOKEN_AMPERSAND_AMPERSAND:   And,
	kind.TOKEN_AMPERSAND:             All,
	kind.TOKEN_PIPE_PIPE:             Or,
	kind.TOKEN_PIPE:                  Any,
	kind.TOKEN_MINUS_GREATER:         Implication,
	kind.TOKEN_PIPE_GREATER:          Pipe,
	kind.TOKEN_LESS_PIPE:             Apply,
	kind.TOKEN_EQUAL_GREATER:         Lambda,
	kind.TOKEN_EQUAL:                 Equal,
	kind.TOKEN_BANG_EQUAL:            NotEqual,
	kind.TOKEN_COMMA:                 Same,
	kind.TOKEN_SEMICOLON:             Sequence,
}

// InfixOperator returns the operator an InfixOperation node carries.
// ImplicitApply is returned when no operator token is present among the
// node's children (spec.md §4.3).
func (e Expression) InfixOperator() InfixOperator {
	for _, c := range e.Node.ChildrenWithTokens() {
		if op, ok := tokenToInfixOp[c.Kind()]; ok {
			return op
		}
	}
	return ImplicitApply
}
