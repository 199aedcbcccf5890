package lexer

import "github.com/cab-lang/cab/kind"

type contextKind uint8

const (
	ctxNormal contextKind = iota
	ctxIslandHeader
	ctxPath
	ctxDelimited
	ctxInterpolation
)

// context is one frame of the tokenizer's lexical-mode stack (spec.md §4.1,
// §9). Depth is bounded in practice by how deeply a source nests
// strings/paths/islands/interpolations, so a plain growable slice is enough
// — no dedicated small-buffer optimization is needed for it to stay cheap.
//
// This implementation collapses the automaton's separate "…End" states
// (IslandHeaderEnd, PathEnd, DelimitedEnd, InterpolationStart) from spec.md's
// state table into the single frame that owns the content: whether the next
// call emits more TOKEN_CONTENT, an interpolation start, or the closer is
// decided by one lookahead inside the frame's own lex* method, rather than by
// pushing a dedicated one-shot state. The token stream produced is identical;
// only the state machine's internal shape differs.
type context struct {
	mode contextKind

	before string    // ctxDelimited: captured "="-run that must reappear before the closer
	closer byte      // ctxDelimited: the quote byte to match at close
	end    kind.Kind // ctxDelimited: token kind to emit at close

	parens int // ctxInterpolation: nesting depth of "(" seen since interpolation opened
}

func (t *Tokenizer) top() *context {
	return &t.stack[len(t.stack)-1]
}

func (t *Tokenizer) push(c context) {
	t.stack = append(t.stack, c)
}

func (t *Tokenizer) pop() {
	t.stack = t.stack[:len(t.stack)-1]
}
