// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

// A DigitSeparator selects which digit-separator dialect, if any, numeric
// literals may use. The two dialects are mutually exclusive.
type DigitSeparator int

// Constants defining the valid DigitSeparator values.
const (
	SeparatorNone       DigitSeparator = iota // no separators permitted
	SeparatorUnderscore                       // Java style, "1_000"
	SeparatorApostrophe                       // C style, "1'000"
)

// A DuplicateKeyStrategy governs how the parser resolves an object key that
// occurs more than once within the same object.
type DuplicateKeyStrategy int

// Constants defining the valid DuplicateKeyStrategy values.
const (
	// UniqueKeys reports a syntax error on the first repeated key.
	UniqueKeys DuplicateKeyStrategy = iota

	// LastWins silently replaces the previous value, keeping the position the
	// key first occurred at.
	LastWins

	// CollectDuplicates coalesces all values of a repeated key, including the
	// first one, into an array in encounter order.
	CollectDuplicates
)

// Options carries the configuration consumed by the [Lexer] and the [Writer].
// An Options value is plain data; copies are independent and the zero value
// is valid, with every extension disabled and compact output.
type Options struct {
	// AllowNaN permits NaN, +NaN, and -NaN as numeric values.
	AllowNaN bool

	// AllowInfinity permits Infinity, +Infinity, and -Infinity.
	AllowInfinity bool

	// AllowInvalidSurrogates disables validation of UTF-16 surrogate pairs in
	// string and member-name escapes. Unpaired halves decode to U+FFFD.
	AllowInvalidSurrogates bool

	// AllowBinaryLiterals permits integers with a 0b prefix (non-standard).
	AllowBinaryLiterals bool

	// AllowOctalLiterals permits integers with a 0o prefix (non-standard).
	AllowOctalLiterals bool

	// AllowHexFloats permits hexadecimal floating-point literals such as
	// 0xA.BCp+12 (non-standard).
	AllowHexFloats bool

	// AllowLongUnicodeEscapes permits 32-bit \UXXXXXXXX escape sequences in
	// strings and member names (non-standard).
	AllowLongUnicodeEscapes bool

	// AllowTrailingData ignores input following the root element. When false,
	// anything but whitespace after the root is a syntax error.
	AllowTrailingData bool

	// ParseComments captures comments during parsing and attaches each to the
	// element that follows it. When false comments are skipped and discarded.
	ParseComments bool

	// WriteComments re-emits element comments when writing.
	WriteComments bool

	// QuoteSingle emits strings and quoted keys with single quotation marks.
	QuoteSingle bool

	// QuotelessKeys emits object keys without quotation marks whenever the key
	// is a valid ECMAScript identifier.
	QuotelessKeys bool

	// TrailingComma emits a comma after the last member of every object and
	// array. When false commas appear only between entries.
	TrailingComma bool

	// ASCIIOnly escapes all non-ASCII characters in emitted strings.
	ASCIIOnly bool

	// UnixInstants emits instant values as Unix timestamps rather than
	// RFC 3339 strings.
	UnixInstants bool

	// IndentFactor is the number of spaces per nesting level. A value < 1
	// disables pretty-printing and suppresses all optional whitespace.
	IndentFactor int

	// DigitSeparator selects the digit-separator dialect for numeric literals.
	DigitSeparator DigitSeparator

	// DuplicateKeys selects how repeated object keys are resolved.
	DuplicateKeys DuplicateKeyStrategy
}

// Default returns the recommended configuration: NaN, Infinity, and invalid
// surrogates allowed, comments parsed and written, trailing commas, unique
// keys, and pretty-printing with two spaces per level.
func Default() Options {
	return Options{
		AllowNaN:               true,
		AllowInfinity:          true,
		AllowInvalidSurrogates: true,
		ParseComments:          true,
		WriteComments:          true,
		TrailingComma:          true,
		IndentFactor:           2,
	}
}
