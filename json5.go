// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import (
	"io"
	"strings"
)

// Parse reads a single JSON5 document from r, governed by o, and returns its
// element tree. Input containing only whitespace and comments yields a nil
// element with no error.
func Parse(r io.Reader, o Options) (Element, error) {
	return parseRoot(NewLexer(r, o))
}

// ParseString parses a JSON5 document from s, governed by o.
func ParseString(s string, o Options) (Element, error) {
	return Parse(strings.NewReader(s), o)
}

// MustParseString parses a JSON5 document from s, governed by o, and panics
// if parsing fails. It is intended for static documents such as test inputs,
// where parse errors mean a bug in the caller.
func MustParseString(s string, o Options) Element {
	e, err := ParseString(s, o)
	if err != nil {
		panic("json5: " + err.Error())
	}
	return e
}

// Write renders e to w as JSON5 text, governed by o.
func Write(w io.Writer, e Element, o Options) error {
	return NewWriter(w, o).Write(e)
}

// WriteString renders e as a JSON5 string, governed by o.
func WriteString(e Element, o Options) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, e, o); err != nil {
		return "", err
	}
	return sb.String(), nil
}
