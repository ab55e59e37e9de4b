// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type primKind byte

const (
	primBool primKind = iota
	primString
	primNumber
	primInstant
)

func (k primKind) String() string {
	switch k {
	case primBool:
		return "boolean"
	case primString:
		return "string"
	case primNumber:
		return "number"
	case primInstant:
		return "instant"
	}
	return "invalid"
}

// A Primitive is a leaf value: a Boolean, a string, a number, or an instant
// in time.
type Primitive struct {
	commentText

	kind primKind
	b    bool
	s    string
	n    Number
	t    time.Time
}

// NewBool returns a primitive holding the given Boolean.
func NewBool(v bool) *Primitive { return &Primitive{kind: primBool, b: v} }

// NewString returns a primitive holding the given string.
func NewString(s string) *Primitive { return &Primitive{kind: primString, s: s} }

// NewNumber returns a primitive holding the given number.
func NewNumber(n Number) *Primitive { return &Primitive{kind: primNumber, n: n} }

// NewInt returns a primitive holding the given decimal integer.
func NewInt(v int64) *Primitive { return NewNumber(Int(v)) }

// NewFloat returns a primitive holding the given floating-point value.
func NewFloat(v float64) *Primitive { return NewNumber(Float(v)) }

// NewInstant returns a primitive holding the given instant.
func NewInstant(t time.Time) *Primitive { return &Primitive{kind: primInstant, t: t} }

// NewBinary returns a primitive for an optionally signed binary integer
// literal such as "0b1010" or "-0B11".
func NewBinary(s string) (*Primitive, error) { return newRadix(s, "0b", 2) }

// NewOctal returns a primitive for an optionally signed octal integer
// literal such as "0o777".
func NewOctal(s string) (*Primitive, error) { return newRadix(s, "0o", 8) }

// NewHex returns a primitive for an optionally signed hexadecimal integer
// literal such as "0xCAFE".
func NewHex(s string) (*Primitive, error) { return newRadix(s, "0x", 16) }

func newRadix(s, prefix string, radix int) (*Primitive, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) < 2 || digits[0] != '0' || lower(digits[1]) != prefix[1] {
		return nil, &NumberError{Text: s, Reason: "missing " + prefix + " prefix"}
	}
	n, err := ParseNumber(s, Options{
		AllowBinaryLiterals: radix == 2,
		AllowOctalLiterals:  radix == 8,
	})
	if err != nil {
		return nil, err
	}
	return NewNumber(n), nil
}

func lower(c byte) byte { return c | 0x20 }

// IsBool reports whether p holds a Boolean.
func (p *Primitive) IsBool() bool { return p.kind == primBool }

// IsString reports whether p holds a string.
func (p *Primitive) IsString() bool { return p.kind == primString }

// IsNumber reports whether p holds a number.
func (p *Primitive) IsNumber() bool { return p.kind == primNumber }

// IsInstant reports whether p holds an instant.
func (p *Primitive) IsInstant() bool { return p.kind == primInstant }

// Bool returns the Boolean value of p. A string primitive spelling "true" or
// "false" converts; any other value reports an [*UnsupportedError].
func (p *Primitive) Bool() (bool, error) {
	switch p.kind {
	case primBool:
		return p.b, nil
	case primString:
		if strings.EqualFold(p.s, "true") {
			return true, nil
		} else if strings.EqualFold(p.s, "false") {
			return false, nil
		}
	}
	return false, &UnsupportedError{Op: "Bool", Detail: "value is not a boolean"}
}

// Text returns the string form of p: the string itself, "true" or "false",
// the number in its source radix, or the instant in RFC 3339 form.
func (p *Primitive) Text() string {
	switch p.kind {
	case primBool:
		return strconv.FormatBool(p.b)
	case primNumber:
		return p.n.String()
	case primInstant:
		return p.t.Format(time.RFC3339Nano)
	}
	return p.s
}

// Number returns the numeric value of p. A string primitive is parsed on
// demand with all numeric extensions enabled and reports a [*NumberError] if
// it does not spell a number; an instant converts to its Unix second count.
func (p *Primitive) Number() (Number, error) {
	switch p.kind {
	case primNumber:
		return p.n, nil
	case primInstant:
		return Int(p.t.Unix()), nil
	case primString:
		return ParseNumber(p.s, Options{
			AllowNaN:            true,
			AllowInfinity:       true,
			AllowBinaryLiterals: true,
			AllowOctalLiterals:  true,
			AllowHexFloats:      true,
		})
	}
	return Number{}, &UnsupportedError{Op: "Number", Detail: "value is not a number"}
}

// Int64 returns the value of p as an int64, if it is an integer that fits.
func (p *Primitive) Int64() (int64, error) {
	n, err := p.Number()
	if err != nil {
		return 0, err
	}
	return n.Int64()
}

// Float64 returns the nearest floating-point approximation of the value of p.
func (p *Primitive) Float64() (float64, error) {
	n, err := p.Number()
	if err != nil {
		return 0, err
	}
	return n.Float64(), nil
}

// BigInt returns the value of p as an arbitrary-precision integer.
func (p *Primitive) BigInt() (*big.Int, error) {
	n, err := p.Number()
	if err != nil {
		return nil, err
	}
	return n.BigInt()
}

// Decimal returns the value of p as an arbitrary-precision decimal.
func (p *Primitive) Decimal() (decimal.Decimal, error) {
	n, err := p.Number()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return n.Decimal()
}

// Instant returns the value of p as an instant. A string primitive is parsed
// as RFC 3339; an integer number converts from a Unix second count.
func (p *Primitive) Instant() (time.Time, error) {
	switch p.kind {
	case primInstant:
		return p.t, nil
	case primString:
		t, err := time.Parse(time.RFC3339, p.s)
		if err != nil {
			return time.Time{}, &UnsupportedError{Op: "Instant", Detail: err.Error()}
		}
		return t, nil
	case primNumber:
		if sec, err := p.n.Int64(); err == nil {
			return time.Unix(sec, 0).UTC(), nil
		}
	}
	return time.Time{}, &UnsupportedError{Op: "Instant", Detail: "value is not an instant"}
}

// equalValue reports whether p and q hold the same value, ignoring comments.
func (p *Primitive) equalValue(q *Primitive) bool {
	if p.kind != q.kind {
		return false
	}
	switch p.kind {
	case primBool:
		return p.b == q.b
	case primString:
		return p.s == q.s
	case primNumber:
		return p.n.Equal(q.n)
	}
	return p.t.Equal(q.t)
}

// DeepCopy returns a copy of p.
func (p *Primitive) DeepCopy() Element { cp := *p; return &cp }

func (p *Primitive) String() string { return elementString(p) }
