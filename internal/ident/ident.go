// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package ident checks strings against the ECMAScript 5.1 IdentifierName
// production, which governs when an object key may be written without quotes.
package ident

import "unicode"

var (
	startCats = []*unicode.RangeTable{
		unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	}
	partCats = []*unicode.RangeTable{
		unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
	}
)

// IsStart reports whether r may begin an identifier.
func IsStart(r rune) bool {
	return r == '$' || r == '_' || unicode.IsOneOf(startCats, r)
}

// IsPart reports whether r may occur in an identifier after its first rune.
func IsPart(r rune) bool {
	return r == '$' || r == '_' || r == 0x200C || r == 0x200D ||
		unicode.IsOneOf(partCats, r)
}

// IsIdentifier reports whether s is a valid IdentifierName.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !IsStart(r) {
				return false
			}
		} else if !IsPart(r) {
			return false
		}
	}
	return true
}
