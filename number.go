// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds on numeric literals, to cap the worst-case cost of parsing
// adversarial input.
const (
	maxNumberLength = 10000 // maximum length of a numeric lexeme, in bytes
	maxDecimalScale = 10000 // maximum absolute decimal scale or binary exponent
)

type numKind byte

const (
	numInt     numKind = iota // arbitrary-precision integer
	numDecimal                // arbitrary-precision decimal
	numFloat                  // non-finite: NaN or ±Infinity
)

// A Number is an exact numeric magnitude tagged with the radix it was written
// in (2, 8, 10, or 16). A radix other than 10 implies the magnitude is an
// arbitrary-precision integer. NaN and the infinities, when enabled, are
// represented as non-finite numbers with radix 10.
//
// The zero Number is the decimal integer 0.
type Number struct {
	kind  numKind
	radix int
	i     *big.Int
	d     decimal.Decimal
	f     float64
}

// Int returns a Number for the given integer in radix 10.
func Int(v int64) Number { return Number{kind: numInt, radix: 10, i: big.NewInt(v)} }

// BigInt returns a Number for the given arbitrary-precision integer with the
// specified radix. It panics if radix is not one of 2, 8, 10, or 16.
func BigInt(v *big.Int, radix int) Number {
	checkRadix(radix)
	return Number{kind: numInt, radix: radix, i: new(big.Int).Set(v)}
}

// Dec returns a Number for the given arbitrary-precision decimal (radix 10).
func Dec(d decimal.Decimal) Number { return Number{kind: numDecimal, radix: 10, d: d} }

// Float returns a Number for the given floating-point value. Finite values
// are converted exactly to a decimal; NaN and the infinities are preserved.
func Float(f float64) Number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{kind: numFloat, radix: 10, f: f}
	}
	return Dec(decimal.NewFromFloat(f))
}

func checkRadix(radix int) {
	switch radix {
	case 2, 8, 10, 16:
	default:
		panic(fmt.Sprintf("invalid radix %d", radix))
	}
}

// Radix reports the radix base of n, one of 2, 8, 10, or 16.
func (n Number) Radix() int {
	if n.radix == 0 {
		return 10
	}
	return n.radix
}

// IsInt reports whether n is stored as an arbitrary-precision integer.
func (n Number) IsInt() bool { return n.kind == numInt }

// IsFinite reports whether n is a finite value.
func (n Number) IsFinite() bool { return n.kind != numFloat }

// BigInt returns the magnitude of n as an arbitrary-precision integer.
// It reports an error if n is not stored as an integer.
func (n Number) BigInt() (*big.Int, error) {
	if n.kind != numInt {
		return nil, &NumberError{Text: n.String(), Reason: "not an integer"}
	}
	return new(big.Int).Set(n.int()), nil
}

// Decimal returns the magnitude of n as an arbitrary-precision decimal.
// It reports an error if n is not finite.
func (n Number) Decimal() (decimal.Decimal, error) {
	switch n.kind {
	case numInt:
		return decimal.NewFromBigInt(n.int(), 0), nil
	case numDecimal:
		return n.d, nil
	}
	return decimal.Decimal{}, &NumberError{Text: n.String(), Reason: "not a finite number"}
}

// Float64 returns the nearest floating-point approximation of n.
func (n Number) Float64() float64 {
	switch n.kind {
	case numInt:
		f, _ := new(big.Float).SetInt(n.int()).Float64()
		return f
	case numDecimal:
		return n.d.InexactFloat64()
	}
	return n.f
}

// Int64 returns n as an int64 if it is an integer that fits.
func (n Number) Int64() (int64, error) {
	if n.kind != numInt {
		return 0, &NumberError{Text: n.String(), Reason: "not an integer"}
	} else if !n.int().IsInt64() {
		return 0, &NumberError{Text: n.String(), Reason: "value out of range for int64"}
	}
	return n.int().Int64(), nil
}

// Neg returns n with its sign inverted.
func (n Number) Neg() Number {
	switch n.kind {
	case numInt:
		return Number{kind: numInt, radix: n.Radix(), i: new(big.Int).Neg(n.int())}
	case numDecimal:
		return Number{kind: numDecimal, radix: 10, d: n.d.Neg()}
	}
	return Number{kind: numFloat, radix: 10, f: -n.f}
}

// Equal reports whether n and o have the same radix and magnitude. An integer
// and a decimal are never equal, even if they denote the same value; NaN is
// equal to itself.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind || n.Radix() != o.Radix() {
		return false
	}
	switch n.kind {
	case numInt:
		return n.int().Cmp(o.int()) == 0
	case numDecimal:
		return n.d.Equal(o.d)
	}
	return n.f == o.f || (math.IsNaN(n.f) && math.IsNaN(o.f))
}

// String renders n in its source radix: decimal values in their natural
// representation, other radixes as sign + prefix + magnitude in that base.
// Negative magnitudes render as "-" followed by the prefixed absolute value;
// a "+" is never emitted.
func (n Number) String() string {
	switch n.kind {
	case numDecimal:
		return n.d.String()
	case numFloat:
		switch {
		case math.IsInf(n.f, 1):
			return "Infinity"
		case math.IsInf(n.f, -1):
			return "-Infinity"
		}
		return "NaN"
	}

	var prefix string
	switch n.Radix() {
	case 2:
		prefix = "0b"
	case 8:
		prefix = "0o"
	case 16:
		prefix = "0x"
	default:
		return n.int().String()
	}
	if n.int().Sign() < 0 {
		return "-" + prefix + new(big.Int).Abs(n.int()).Text(n.Radix())
	}
	return prefix + n.int().Text(n.Radix())
}

// int returns the integer payload, substituting zero for the zero Number.
func (n Number) int() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

// ParseNumber parses a JSON5 numeric lexeme, including an optional leading
// sign, into a Number. Which literal forms are accepted is governed by o:
// binary and octal prefixes, hexadecimal floating points, and digit
// separators must be enabled there. Errors carry no source position; inside
// a document the lexer wraps them into a *SyntaxError.
func ParseNumber(text string, o Options) (Number, error) {
	rest, neg := text, false
	switch {
	case strings.HasPrefix(text, "+"):
		rest = text[1:]
	case strings.HasPrefix(text, "-"):
		rest, neg = text[1:], true
	}
	switch rest {
	case "NaN":
		if !o.AllowNaN {
			return Number{}, fmt.Errorf("NaN literals are not allowed: %w", ErrDisabled)
		}
		return Number{kind: numFloat, radix: 10, f: math.NaN()}, nil
	case "Infinity":
		if !o.AllowInfinity {
			return Number{}, fmt.Errorf("Infinity literals are not allowed: %w", ErrDisabled)
		}
		f := math.Inf(1)
		if neg {
			f = math.Inf(-1)
		}
		return Number{kind: numFloat, radix: 10, f: f}, nil
	}
	if rest == "" || !(rest[0] >= '0' && rest[0] <= '9' || rest[0] == '.') {
		return Number{}, &NumberError{Text: text, Reason: "not a numeric literal"}
	}
	n, err := parseNumber(rest, o)
	if err != nil {
		return Number{}, err
	}
	if neg {
		n = n.Neg()
	}
	return n, nil
}

// parseNumber converts an unsigned numeric lexeme into its exact value and
// radix. The first byte of input must be a decimal digit or ".".
func parseNumber(input string, o Options) (Number, error) {
	if len(input) > maxNumberLength {
		return Number{}, &NumberError{Text: input, Reason: "number string too large"}
	}

	if input[0] == '0' && len(input) > 1 {
		switch input[1] {
		case 'b', 'B':
			if !o.AllowBinaryLiterals {
				return Number{}, fmt.Errorf("binary literals are not allowed: %w", ErrDisabled)
			}
			return parseRadixInt(input, 2, o)

		case 'o', 'O':
			if !o.AllowOctalLiterals {
				return Number{}, fmt.Errorf("octal literals are not allowed: %w", ErrDisabled)
			}
			return parseRadixInt(input, 8, o)

		case 'x', 'X':
			return parseHex(input, o)
		}
	}
	return parseDecimal(input, o)
}

// checkSeparator reports whether c is a digit separator, or an error if it is
// a separator of the dialect the options do not select.
func checkSeparator(c byte, o Options) (bool, error) {
	switch c {
	case '_':
		if o.DigitSeparator != SeparatorUnderscore {
			return false, fmt.Errorf("java-style digit separators are not allowed: %w", ErrDisabled)
		}
		return true, nil
	case '\'':
		if o.DigitSeparator != SeparatorApostrophe {
			return false, fmt.Errorf("c-style digit separators are not allowed: %w", ErrDisabled)
		}
		return true, nil
	}
	return false, nil
}

var errSeparator = errors.New("illegal position for digit separator")

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

func isRadixDigit(c byte, radix int) bool {
	v := digitVal(c)
	return v >= 0 && v < radix
}

// scanDigits collects the run of digits of the given radix beginning at
// input[i], removing digit separators. A separator must fall strictly between
// two digits of the run. The scan stops at the first byte for which stop
// reports true; the index of that byte (or len(input)) is returned.
func scanDigits(sb *strings.Builder, input string, i, radix int, o Options, stop func(byte) bool) (int, error) {
	start := i
	for i < len(input) {
		c := input[i]
		if sep, err := checkSeparator(c, o); err != nil {
			return i, err
		} else if sep {
			if i == start || i+1 >= len(input) || !isRadixDigit(input[i+1], radix) {
				return i, errSeparator
			}
			i++
			continue
		}
		if stop != nil && stop(c) {
			return i, nil
		}
		if !isRadixDigit(c, radix) {
			return i, fmt.Errorf("expected base-%d digit in literal", radix)
		}
		sb.WriteByte(c)
		i++
	}
	return i, nil
}

// parseRadixInt parses a prefixed binary or octal integer literal.
func parseRadixInt(input string, radix int, o Options) (Number, error) {
	var sb strings.Builder
	if _, err := scanDigits(&sb, input, 2, radix, o, nil); err != nil {
		return Number{}, err
	}
	if sb.Len() == 0 {
		return Number{}, fmt.Errorf("expected digit after %q", input[:2])
	}
	v, ok := new(big.Int).SetString(sb.String(), radix)
	if !ok {
		return Number{}, &NumberError{Text: input, Reason: "malformed integer literal"}
	}
	return Number{kind: numInt, radix: radix, i: v}, nil
}

// parseHex parses a 0x-prefixed literal: a hexadecimal integer, or a
// hexadecimal floating point if a "." or p exponent follows the digits.
func parseHex(input string, o Options) (Number, error) {
	isHexFloatMark := func(c byte) bool { return c == '.' || c == 'p' || c == 'P' }

	var sb strings.Builder
	i, err := scanDigits(&sb, input, 2, 16, o, isHexFloatMark)
	if err != nil {
		return Number{}, err
	}
	if i >= len(input) {
		if sb.Len() == 0 {
			return Number{}, fmt.Errorf("expected digit after %q", input[:2])
		}
		v, _ := new(big.Int).SetString(sb.String(), 16)
		return Number{kind: numInt, radix: 16, i: v}, nil
	}

	// A hex float marker stopped the scan.
	if !o.AllowHexFloats {
		return Number{}, fmt.Errorf("hexadecimal floating-point literals are not allowed: %w", ErrDisabled)
	}
	intPart := new(big.Int)
	if sb.Len() > 0 {
		intPart.SetString(sb.String(), 16)
	}

	var frac strings.Builder
	if input[i] == '.' {
		i++
		start := i
		isExpMark := func(c byte) bool { return c == 'p' || c == 'P' }
		i, err = scanDigits(&frac, input, i, 16, o, isExpMark)
		if err != nil {
			return Number{}, err
		}
		if i == start && frac.Len() == 0 && i >= len(input) {
			return Number{}, errors.New("expected digit in hexadecimal fraction")
		}
	}
	if i >= len(input) || (input[i] != 'p' && input[i] != 'P') {
		return Number{}, errors.New("expected exponent for hexadecimal floating-point literal")
	}

	exp, err := parseExponent(input, i+1, o)
	if err != nil {
		return Number{}, err
	}
	return composeHexFloat(input, intPart, frac.String(), exp)
}

// parseExponent parses the signed decimal digit run at input[i:] and reports
// an error if its magnitude does not fit the scale bound.
func parseExponent(input string, i int, o Options) (int, error) {
	var sb strings.Builder
	if i < len(input) && (input[i] == '+' || input[i] == '-') {
		if input[i] == '-' {
			sb.WriteByte('-')
		}
		i++
	}
	start := i
	i, err := scanDigits(&sb, input, i, 10, o, nil)
	if err != nil {
		return 0, err
	}
	if i == start || i < len(input) {
		return 0, errors.New("expected digit sequence for exponent")
	}
	exp, err := strconv.Atoi(sb.String())
	if err != nil || exp > maxDecimalScale || exp < -maxDecimalScale {
		return 0, &NumberError{Text: input, Reason: "exponent out of range"}
	}
	return exp, nil
}

// composeHexFloat combines the integer part, the fractional nibbles (4 bits
// each), and the power-of-two exponent of a hexadecimal floating-point
// literal into one exact decimal value.
func composeHexFloat(input string, intPart *big.Int, frac string, exp int) (Number, error) {
	fracBits := 4 * len(frac)
	coeff := new(big.Int).Lsh(intPart, uint(fracBits))
	if frac != "" {
		f, _ := new(big.Int).SetString(frac, 16)
		coeff.Or(coeff, f)
	}

	// The value is coeff * 2^e2 with e2 = exp - fracBits. A nonnegative e2
	// shifts into a plain integer coefficient; a negative one multiplies by
	// 5^-e2 to express the power of two as a decimal scale.
	e2 := exp - fracBits
	if e2 <= -maxDecimalScale || e2 >= maxDecimalScale {
		return Number{}, &NumberError{Text: input, Reason: "exponent out of range"}
	}
	var d decimal.Decimal
	if e2 >= 0 {
		d = decimal.NewFromBigInt(coeff.Lsh(coeff, uint(e2)), 0)
	} else {
		five := big.NewInt(5)
		pow5 := new(big.Int).Exp(five, big.NewInt(int64(-e2)), nil)
		d = decimal.NewFromBigInt(coeff.Mul(coeff, pow5), int32(e2))
	}
	return Number{kind: numDecimal, radix: 10, d: d}, nil
}

// parseDecimal parses an unprefixed decimal literal: digits with an optional
// fraction and/or exponent. Either of the latter forces decimal storage.
func parseDecimal(input string, o Options) (Number, error) {
	isDecMark := func(c byte) bool { return c == '.' || c == 'e' || c == 'E' }
	isExpMark := func(c byte) bool { return c == 'e' || c == 'E' }

	var sb strings.Builder
	i, err := scanDigits(&sb, input, 0, 10, o, isDecMark)
	if err != nil {
		return Number{}, err
	}
	if i >= len(input) {
		v, ok := new(big.Int).SetString(sb.String(), 10)
		if !ok {
			return Number{}, &NumberError{Text: input, Reason: "malformed integer literal"}
		}
		return Number{kind: numInt, radix: 10, i: v}, nil
	}

	if input[i] == '.' {
		sb.WriteByte('.')
		i++
		start := i
		i, err = scanDigits(&sb, input, i, 10, o, isExpMark)
		if err != nil {
			return Number{}, err
		}
		if i == start {
			// No fraction digits; valid only if digits precede the point and
			// nothing follows it, e.g. "1." is accepted by the grammar.
			if sb.Len() == 1 || i < len(input) && !isExpMark(input[i]) {
				return Number{}, errors.New("expected digit in decimal fraction")
			}
		}
	}

	if i < len(input) {
		sb.WriteByte('e')
		exp, err := parseExponent(input, i+1, o)
		if err != nil {
			return Number{}, err
		}
		sb.WriteString(strconv.Itoa(exp))
	}

	text := strings.TrimSuffix(sb.String(), ".")
	text = strings.Replace(text, ".e", "e", 1)
	if strings.HasPrefix(text, ".") {
		text = "0" + text
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Number{}, &NumberError{Text: input, Reason: "malformed decimal literal"}
	}
	if d.Exponent() >= maxDecimalScale || d.Exponent() <= -maxDecimalScale {
		return Number{}, &NumberError{Text: input, Reason: "decimal scale out of range"}
	}
	return Number{kind: numDecimal, radix: 10, d: d}, nil
}
