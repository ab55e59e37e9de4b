// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package json5 implements a configurable reader and writer for the JSON5
// data interchange format, a superset of JSON that permits comments,
// trailing commas, unquoted member names, single-quoted strings, and an
// extended numeric grammar.
//
// # Parsing
//
// Use [Parse] or [ParseString] to convert input text into a tree of
// [Element] values:
//
//	e, err := json5.ParseString(`{pi: 3.14, /* exact */ big: 0xCAFE}`, json5.Default())
//
// The concrete element types are [*Object], [*Array], [*Primitive], and
// [*Null]. Numbers are exact: integers of any size keep the radix they were
// written in, and decimal values preserve their full precision and scale.
// When comment parsing is enabled, each comment is attached to the element
// that follows it and survives a round trip through [Write].
//
// # Writing
//
// Use [Write] or [WriteString] to render a tree back to text. The same
// [Options] value that governs parsing also selects the output style:
// pretty-printing and its indentation width, trailing commas, single-quoted
// strings, unquoted member names, and ASCII-only escaping.
//
// # Options
//
// The zero [Options] accepts only core JSON5 and writes compact output with
// every extension disabled. [Default] enables the extensions most documents
// expect: NaN and Infinity literals, comment round-tripping, trailing
// commas, and two-space indentation. Individual extensions such as binary
// and octal integer literals, hexadecimal floating points, and digit
// separators are switched on per field.
package json5
