// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import "strings"

// An Element is a node of a JSON5 document tree: an [*Object], an [*Array],
// a [*Primitive], or a [*Null]. Every element carries an optional comment,
// attached during parsing or set programmatically, that the writer can emit
// ahead of the element's own text.
type Element interface {
	// Comment returns the comment text attached to the element, "" if none.
	// The text carries no comment markers; multiple source comments are
	// joined by newlines.
	Comment() string

	// SetComment attaches the given comment text to the element.
	SetComment(text string)

	// DeepCopy returns a structurally independent copy of the element,
	// comments included.
	DeepCopy() Element

	// String renders the element compactly with default syntax.
	String() string

	isElement()
}

// commentText holds the comment attached to an element. It is embedded in
// each concrete element type.
type commentText struct{ text string }

func (c *commentText) Comment() string        { return c.text }
func (c *commentText) SetComment(text string) { c.text = text }
func (c *commentText) isElement()             {}

// A Null is an explicit JSON5 null value.
type Null struct{ commentText }

// NewNull returns a new null element.
func NewNull() *Null { return new(Null) }

// DeepCopy returns a copy of n.
func (n *Null) DeepCopy() Element { return &Null{commentText: n.commentText} }

func (n *Null) String() string { return "null" }

// elementString renders e compactly, ignoring write errors.
func elementString(e Element) string {
	var sb strings.Builder
	NewWriter(&sb, Options{}).Write(e)
	return sb.String()
}

// typeName returns a label for the concrete type of e, for error messages.
func typeName(e Element) string {
	switch e.(type) {
	case *Object:
		return "object"
	case *Array:
		return "array"
	case *Primitive:
		return "primitive"
	case *Null:
		return "null"
	}
	return "invalid"
}

// AsObject returns e as an object, or a [*StructuralError] if it is not one.
func AsObject(e Element) (*Object, error) {
	if o, ok := e.(*Object); ok {
		return o, nil
	}
	return nil, &StructuralError{Want: "object", Got: typeName(e)}
}

// AsArray returns e as an array, or a [*StructuralError] if it is not one.
func AsArray(e Element) (*Array, error) {
	if a, ok := e.(*Array); ok {
		return a, nil
	}
	return nil, &StructuralError{Want: "array", Got: typeName(e)}
}

// AsPrimitive returns e as a primitive, or a [*StructuralError] otherwise.
func AsPrimitive(e Element) (*Primitive, error) {
	if p, ok := e.(*Primitive); ok {
		return p, nil
	}
	return nil, &StructuralError{Want: "primitive", Got: typeName(e)}
}

// Equal reports whether a and b denote the same document value. Comments are
// ignored. Objects compare as unordered key-value maps, arrays element by
// element in order, and numbers by radix and magnitude.
func Equal(a, b Element) bool {
	switch t := a.(type) {
	case *Object:
		u, ok := b.(*Object)
		if !ok || t.Len() != u.Len() {
			return false
		}
		for _, key := range t.Keys() {
			w := u.Get(key)
			if w == nil || !Equal(t.Get(key), w) {
				return false
			}
		}
		return true

	case *Array:
		u, ok := b.(*Array)
		if !ok || t.Len() != u.Len() {
			return false
		}
		for i := range t.Len() {
			if !Equal(t.Get(i), u.Get(i)) {
				return false
			}
		}
		return true

	case *Primitive:
		u, ok := b.(*Primitive)
		return ok && t.equalValue(u)

	case *Null:
		_, ok := b.(*Null)
		return ok
	}
	return false
}

// WithoutComments returns a deep copy of e with all comments removed.
func WithoutComments(e Element) Element {
	cp := e.DeepCopy()
	stripComments(cp)
	return cp
}

func stripComments(e Element) {
	e.SetComment("")
	switch t := e.(type) {
	case *Object:
		for _, key := range t.Keys() {
			stripComments(t.Get(key))
		}
	case *Array:
		for i := range t.Len() {
			stripComments(t.Get(i))
		}
	}
}
