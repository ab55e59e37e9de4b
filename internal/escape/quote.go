// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape renders strings as quoted JSON5 string literals.
package escape

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'\v': 'v',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes src as a JSON5 string literal delimited by the given quote
// mark, which must be '"' or '\''. Control characters, the quote mark, and
// non-graphic runes are escaped. If ascii is true every rune outside the
// ASCII range is escaped as well. Runes above the basic multilingual plane
// that require escaping are written as a surrogate pair.
func Quote(src mem.RO, quote byte, ascii bool) []byte {
	buf := make([]byte, 0, src.Len()+2)
	putByte := func(bs ...byte) { buf = append(buf, bs...) }
	putHex := func(r rune) {
		putByte('\\', 'u',
			hexDigit[r>>12&15], hexDigit[r>>8&15], hexDigit[r>>4&15], hexDigit[r&15])
	}

	putByte(quote)
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		if r < utf8.RuneSelf {
			switch {
			case r < ' ':
				if b := controlEsc[r]; b != 0 {
					putByte('\\', b)
				} else {
					putByte('\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
				}
			case r == '\\' || r == rune(quote):
				putByte('\\', byte(r))
			default:
				putByte(byte(r))
			}
			continue
		}

		if ascii || !unicode.IsGraphic(r) {
			if r > 0xffff {
				hi, lo := utf16.EncodeRune(r)
				putHex(hi)
				putHex(lo)
			} else {
				putHex(r)
			}
			continue
		}
		var rbuf [utf8.UTFMax]byte
		k := utf8.EncodeRune(rbuf[:], r)
		buf = append(buf, rbuf[:k]...)
	}
	return append(buf, quote)
}
