package syntax

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

func stripRadixPrefix(text string) (digits string, base int) {
	if len(text) < 2 || text[0] != '0' {
		return text, 10
	}
	switch text[1] {
	case 'b', 'B':
		return text[2:], 2
	case 'o', 'O':
		return text[2:], 8
	case 'x', 'X':
		return text[2:], 16
	default:
		return text, 10
	}
}

// IntegerValue returns an Integer expression's arbitrary-precision value
// (spec.md §4.3), honoring the `0b`/`0o`/`0x` radix prefixes and `_` digit
// separators the tokenizer accepts.
func (e Expression) IntegerValue() *big.Int {
	text := strings.ReplaceAll(string(e.Node.FirstToken().Text()), "_", "")
	digits, base := stripRadixPrefix(text)
	n := new(big.Int)
	n.SetString(digits, base)
	return n
}

// FloatValue returns a Float expression's IEEE-754 double value (spec.md
// §4.3). Decimal floats parse directly through strconv. Non-decimal radixes
// have no standard base-independent float syntax to defer to, so each digit
// after the point contributes digit*base^-position by hand — matching how
// the tokenizer accepts a fractional part after any radix prefix (spec.md
// §4.1), including the hex case where a trailing `e` is a mantissa digit,
// not an exponent marker (scenario S2).
func (e Expression) FloatValue() float64 {
	text := strings.ReplaceAll(string(e.Node.FirstToken().Text()), "_", "")
	digits, base := stripRadixPrefix(text)
	if base == 10 {
		v, _ := strconv.ParseFloat(digits, 64)
		return v
	}

	mantissa, exponent := digits, ""
	if base != 16 {
		if i := strings.IndexAny(digits, "eE"); i >= 0 {
			mantissa, exponent = digits[:i], digits[i+1:]
		}
	}

	intPart, fracPart, _ := strings.Cut(mantissa, ".")
	value := 0.0
	for _, r := range intPart {
		value = value*float64(base) + float64(hexDigitValue(r))
	}
	scale := 1.0
	for _, r := range fracPart {
		scale /= float64(base)
		value += float64(hexDigitValue(r)) * scale
	}
	if exponent != "" {
		exp, _ := strconv.Atoi(exponent)
		value *= math.Pow(10, float64(exp))
	}
	return value
}

func hexDigitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	default:
		return 0
	}
}
