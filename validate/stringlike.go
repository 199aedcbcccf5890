package validate

import (
	"unicode"
	"unicode/utf8"

	"github.com/cab-lang/cab/cst"
	"github.com/cab-lang/cab/syntax"
)

// segment is one piece of a logical line inside a multiline string: either a
// content byte range or an interpolation, kept atomic since interpolated
// expressions are validated as their own subtree.
type segment struct {
	isInterp bool
	text     []byte
	span     cst.Span
}

// validateString applies spec.md §4.6's multiline-string rule: for a string
// whose content spans more than one line, the first and last lines must be
// empty, and interior lines must not mix distinct leading-whitespace
// code-points. Each violation class fires at most once.
func validateString(expr syntax.Expression, sink *Sink) {
	parts := expr.Parts()
	for _, p := range parts {
		if p.PartKind == syntax.PartInterpolation {
			Validate(p.Inner, sink)
		}
	}

	lines := splitStringLines(parts)
	if len(lines) < 2 {
		return
	}

	if span, bad := nonEmptyLineSpan(lines[0]); bad {
		sink.Emit(New("first line of a multiline string must be empty").
			WithLabel(LabelPrimary, span, ""))
	}
	if span, bad := nonEmptyLineSpan(lines[len(lines)-1]); bad {
		sink.Emit(New("last line of a multiline string must be empty").
			WithLabel(LabelPrimary, span, ""))
	}
	if mixedIndentation(lines[1 : len(lines)-1]) {
		sink.Emit(New("multiline string mixes different indentation whitespace").
			WithLabel(LabelPrimary, expr.Node.Span(), ""))
	}
}

func splitStringLines(parts []syntax.InterpolatedPart) [][]segment {
	lines := [][]segment{nil}
	for _, p := range parts {
		switch p.PartKind {
		case syntax.PartContent:
			text := p.Token.Text()
			start := p.Token.Span().Start
			chunkStart := 0
			for i := 0; i < len(text); i++ {
				if text[i] != '\n' {
					continue
				}
				last := len(lines) - 1
				lines[last] = append(lines[last], segment{
					text: text[chunkStart:i],
					span: cst.Span{Start: start + uint32(chunkStart), End: start + uint32(i)},
				})
				lines = append(lines, nil)
				chunkStart = i + 1
			}
			if chunkStart < len(text) {
				last := len(lines) - 1
				lines[last] = append(lines[last], segment{
					text: text[chunkStart:],
					span: cst.Span{Start: start + uint32(chunkStart), End: start + uint32(len(text))},
				})
			}
		case syntax.PartInterpolation:
			last := len(lines) - 1
			lines[last] = append(lines[last], segment{isInterp: true, span: p.Inner.Node.Span()})
		}
	}
	return lines
}

func nonEmptyLineSpan(line []segment) (cst.Span, bool) {
	for _, seg := range line {
		if seg.isInterp || len(seg.text) > 0 {
			return seg.span, true
		}
	}
	return cst.Span{}, false
}

// mixedIndentation reports whether interior lines open with differing
// leading-whitespace code-points (e.g. a tab on one line, a space on
// another).
func mixedIndentation(interior [][]segment) bool {
	seen := rune(-1)
	for _, line := range interior {
		if len(line) == 0 || line[0].isInterp || len(line[0].text) == 0 {
			continue
		}
		r, _ := utf8.DecodeRune(line[0].text)
		if !unicode.IsSpace(r) {
			continue
		}
		if seen == -1 {
			seen = r
		} else if seen != r {
			return true
		}
	}
	return false
}

// validateRune applies spec.md §4.6's rune checks: exactly one character or
// one escape, never empty, never interpolated, never a control character.
func validateRune(expr syntax.Expression, sink *Sink) {
	parts := expr.Parts()
	var content []syntax.InterpolatedPart
	hasInterp := false
	for _, p := range parts {
		switch p.PartKind {
		case syntax.PartContent:
			content = append(content, p)
		case syntax.PartInterpolation:
			hasInterp = true
			Validate(p.Inner, sink)
		}
	}
	if hasInterp {
		sink.Emit(New("rune literal cannot contain an interpolation").
			WithLabel(LabelPrimary, expr.Node.Span(), ""))
		return
	}

	var text []byte
	for _, p := range content {
		text = append(text, p.Token.Text()...)
	}
	if len(text) == 0 {
		sink.Emit(New("rune literal cannot be empty").
			WithLabel(LabelPrimary, expr.Node.Span(), ""))
		return
	}

	span := cst.Span{Start: content[0].Token.Span().Start, End: content[len(content)-1].Token.Span().End}
	if units, ok := countRuneLiteralUnits(text); !ok || units != 1 {
		sink.Emit(New("rune literal must contain exactly one character or escape").
			WithLabel(LabelPrimary, span, ""))
	}
	if cspan, bad := firstControlCharInBytes(text, span.Start); bad {
		sink.Emit(New("rune literal contains a control character").
			WithLabel(LabelPrimary, cspan, ""))
	}
}

// countRuneLiteralUnits reports how many character units text represents: a
// leading backslash starts a two-byte escape (spec.md §4.1's escape
// handling always consumes exactly one backslash plus one following byte as
// content); otherwise text must decode as exactly one rune.
func countRuneLiteralUnits(text []byte) (int, bool) {
	if text[0] == '\\' {
		if len(text) == 2 {
			return 1, true
		}
		return 0, false
	}
	r, size := utf8.DecodeRune(text)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	if size == len(text) {
		return 1, true
	}
	return 0, false
}
