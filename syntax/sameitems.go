package syntax

// SameItems flattens a comma-separated sequence (spec.md §4.5): it unwraps
// InfixOperation(Same, l, r) into [l, r] and SuffixOperation(Same, l) into
// [l], stopping recursion at any other node. Items are yielded left to
// right, satisfying invariant 6 from spec.md §8:
// same_items(InfixOperation(Same,l,r)) == same_items(l) ++ same_items(r).
//
// The spec describes this as a breadth-first descent; a plain recursive
// unwrap produces the identical left-to-right flat list for this shape
// (Same is right-associative, so the Noder's Same chain has no branching
// besides its own right spine) and is what is implemented here.
func SameItems(e Expression) []Expression {
	var out []Expression
	var walk func(Expression)
	walk = func(cur Expression) {
		switch cur.Variant {
		case ExprInfixOperation:
			if cur.InfixOperator() == Same {
				if l, r, ok := cur.InfixOperands(); ok {
					walk(l)
					walk(r)
					return
				}
			}
		case ExprSuffixOperation:
			if cur.SuffixOperator() == SuffixSame {
				if operand, ok := cur.SuffixOperand(); ok {
					walk(operand)
					return
				}
			}
		}
		out = append(out, cur)
	}
	walk(e)
	return out
}
