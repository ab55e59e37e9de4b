// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import (
	"errors"
	"fmt"
)

// ErrDisabled is wrapped by a [*SyntaxError] reported for input that uses a
// syntax extension the active [Options] do not enable, for example a binary
// literal while AllowBinaryLiterals is false. Use errors.Is to detect it.
var ErrDisabled = errors.New("syntax extension disabled")

// SyntaxError is the concrete type of errors reported for malformed tokens or
// structure. It records the position of the input where the problem was
// detected.
type SyntaxError struct {
	Pos     Position
	Message string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", s.Message, s.Pos)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// A NumberError reports a numeric literal or numeric string that exceeds the
// precision or scale bounds, or that cannot be parsed at value-access time.
type NumberError struct {
	Text   string // the offending literal, possibly truncated
	Reason string
}

// Error satisfies the error interface.
func (n *NumberError) Error() string {
	return fmt.Sprintf("invalid number %q: %s", clip(n.Text, 32), n.Reason)
}

// A StructuralError reports a type-mismatched view of an element tree node,
// such as requesting the object view of an array.
type StructuralError struct {
	Want string // the requested view
	Got  string // the actual element type
}

// Error satisfies the error interface.
func (s *StructuralError) Error() string {
	return fmt.Sprintf("element is %s, not %s", s.Got, s.Want)
}

// An UnsupportedError reports a value accessor applied to an element that
// cannot provide the requested representation, such as asking a Boolean
// primitive for its instant value, or using the whole-array convenience
// accessors on an array that does not hold exactly one element.
type UnsupportedError struct {
	Op     string // the accessor, e.g. "Bool"
	Detail string
}

// Error satisfies the error interface.
func (u *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", u.Op, u.Detail)
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
