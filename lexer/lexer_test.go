package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/cab-lang/cab/kind"
)

type tok struct {
	Kind kind.Kind
	Text string
}

func tokens(src string) []tok {
	var out []tok
	tz := New([]byte(src))
	for {
		k, text, ok := tz.Next()
		if !ok {
			return out
		}
		out = append(out, tok{Kind: k, Text: string(text)})
	}
}

// TestInterpolatedString is scenario S1: no empty tokens, interpolation
// round-trips to a plain identifier.
func TestInterpolatedString(t *testing.T) {
	got := tokens(`"foo \(bar)"`)
	want := []tok{
		{kind.TOKEN_STRING_START, `"`},
		{kind.TOKEN_CONTENT, "foo "},
		{kind.TOKEN_INTERPOLATION_START, `\(`},
		{kind.TOKEN_IDENTIFIER, "bar"},
		{kind.TOKEN_INTERPOLATION_END, ")"},
		{kind.TOKEN_STRING_END, `"`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

// TestNumberErrors is scenario S2: radix prefixes, float promotion, and the
// hex/exponent interaction (e is a hex digit, not an exponent marker, once
// the literal is hex-radixed).
func TestNumberErrors(t *testing.T) {
	got := tokens("0b__e 0x0 0x123.0e 0o777.0e")
	want := []tok{
		{kind.TOKEN_ERROR_NUMBER_NO_DIGIT, "0b__"},
		{kind.TOKEN_IDENTIFIER, "e"},
		{kind.TOKEN_WHITESPACE, " "},
		{kind.TOKEN_INTEGER, "0x0"},
		{kind.TOKEN_WHITESPACE, " "},
		{kind.TOKEN_FLOAT, "0x123.0e"},
		{kind.TOKEN_WHITESPACE, " "},
		{kind.TOKEN_ERROR_FLOAT_NO_EXPONENT, "0o777.0e"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

// TestPathWithInterpolation is scenario S3: a zero-width path literal
// containing a non-ASCII interpolated identifier.
func TestPathWithInterpolation(t *testing.T) {
	got := tokens(`../foo\(𓃰)///baz`)
	want := []tok{
		{kind.TOKEN_PATH_START, ""},
		{kind.TOKEN_CONTENT, "../foo"},
		{kind.TOKEN_INTERPOLATION_START, `\(`},
		{kind.TOKEN_IDENTIFIER, "𓃰"},
		{kind.TOKEN_INTERPOLATION_END, ")"},
		{kind.TOKEN_CONTENT, "///baz"},
		{kind.TOKEN_PATH_END, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

// TestUnknownByteErrors is scenario S4: one error token per bad byte, no
// coalescing.
func TestUnknownByteErrors(t *testing.T) {
	got := tokens("~~~")
	want := []tok{
		{kind.TOKEN_ERROR_UNKNOWN, "~"},
		{kind.TOKEN_ERROR_UNKNOWN, "~"},
		{kind.TOKEN_ERROR_UNKNOWN, "~"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

// TestSliceConcatenationEqualsSource is invariant 1 from spec.md §8.
func TestSliceConcatenationEqualsSource(t *testing.T) {
	inputs := []string{
		`"foo \(bar)"`,
		"0b__e 0x0 0x123.0e 0o777.0e",
		`../foo\(𓃰)///baz`,
		"~~~",
		"if a then b else c",
		"<cmd: echo hi>",
		"`quoted-ident`",
		"#= nested #= block #= comment =# here =# still in =#",
		"a <| b |> c",
	}
	for _, src := range inputs {
		tz := New([]byte(src))
		var rebuilt []byte
		for {
			_, text, ok := tz.Next()
			if !ok {
				break
			}
			rebuilt = append(rebuilt, text...)
		}
		require.Equal(t, src, string(rebuilt), "slice concatenation must reproduce source exactly")
	}
}

// TestNoEmptySlicesExceptPathSentinels is invariant 2 from spec.md §8.
func TestNoEmptySlicesExceptPathSentinels(t *testing.T) {
	inputs := []string{
		`"foo \(bar)"`,
		`../foo\(𓃰)///baz`,
		`\(x)/y`,
	}
	for _, src := range inputs {
		tz := New([]byte(src))
		for {
			k, text, ok := tz.Next()
			if !ok {
				break
			}
			if len(text) == 0 && k != kind.TOKEN_PATH_START && k != kind.TOKEN_PATH_END {
				t.Errorf("input %q: unexpected empty slice for %s", src, k)
			}
		}
	}
}

func TestIslandHeader(t *testing.T) {
	got := tokens("<cmd>")
	want := []tok{
		{kind.TOKEN_ISLAND_HEADER_START, "<"},
		{kind.TOKEN_CONTENT, "cmd"},
		{kind.TOKEN_ISLAND_HEADER_END, ">"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestDelimiterFenceRoundTrip(t *testing.T) {
	// The close always repeats "before" then the opener char, regardless of
	// which side of the quote the "=" run appeared on at open time: opening
	// `="` closes with `="`, not the reversed `"=`.
	got := tokens(`="hello="`)
	want := []tok{
		{kind.TOKEN_STRING_START, `="`},
		{kind.TOKEN_CONTENT, "hello"},
		{kind.TOKEN_STRING_END, `="`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestUnterminatedPathAtEOFEmitsSentinel(t *testing.T) {
	// PATH_START is zero-width: the triggering "/" itself is re-consumed as
	// path content, not swallowed by the opener (spec.md §4.1).
	got := tokens(`/foo`)
	want := []tok{
		{kind.TOKEN_PATH_START, ""},
		{kind.TOKEN_CONTENT, "/foo"},
		{kind.TOKEN_PATH_END, ""},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token mismatch (-want +got):\n%s", diff)
	}
}
