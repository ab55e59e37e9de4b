// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import "iter"

// An Object is a collection of key-value members that preserves the order in
// which keys were first added. Keys are unique; setting an existing key
// replaces its value in place.
type Object struct {
	commentText

	keys   []string
	values map[string]Element
}

// NewObject returns a new empty object.
func NewObject() *Object { return &Object{values: make(map[string]Element)} }

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.keys) }

// Has reports whether key is a member of o.
func (o *Object) Has(key string) bool { _, ok := o.values[key]; return ok }

// Get returns the value of key, or nil if key is not a member of o.
func (o *Object) Get(key string) Element { return o.values[key] }

// Set adds or replaces the member for key. A replaced key keeps the position
// it was first added at. A nil value stores an explicit null.
func (o *Object) Set(key string, value Element) {
	if value == nil {
		value = NewNull()
	}
	if o.values == nil {
		o.values = make(map[string]Element)
	}
	if !o.Has(key) {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Remove removes key from o and returns its former value, or nil if key was
// not a member.
func (o *Object) Remove(key string) Element {
	old, ok := o.values[key]
	if !ok {
		return nil
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return old
}

// Keys returns the keys of o in insertion order. The caller must not modify
// the returned slice.
func (o *Object) Keys() []string { return o.keys }

// All ranges over the members of o in insertion order.
func (o *Object) All() iter.Seq2[string, Element] {
	return func(yield func(string, Element) bool) {
		for _, key := range o.keys {
			if !yield(key, o.values[key]) {
				return
			}
		}
	}
}

// GetObject returns the value of key as an object. It reports an error if
// key is absent or its value is not an object.
func (o *Object) GetObject(key string) (*Object, error) {
	e := o.Get(key)
	if e == nil {
		return nil, &StructuralError{Want: "object", Got: "missing member"}
	}
	return AsObject(e)
}

// GetArray returns the value of key as an array. It reports an error if key
// is absent or its value is not an array.
func (o *Object) GetArray(key string) (*Array, error) {
	e := o.Get(key)
	if e == nil {
		return nil, &StructuralError{Want: "array", Got: "missing member"}
	}
	return AsArray(e)
}

// GetPrimitive returns the value of key as a primitive. It reports an error
// if key is absent or its value is not a primitive.
func (o *Object) GetPrimitive(key string) (*Primitive, error) {
	e := o.Get(key)
	if e == nil {
		return nil, &StructuralError{Want: "primitive", Got: "missing member"}
	}
	return AsPrimitive(e)
}

// DeepCopy returns a structurally independent copy of o.
func (o *Object) DeepCopy() Element {
	cp := &Object{
		commentText: o.commentText,
		keys:        append([]string(nil), o.keys...),
		values:      make(map[string]Element, len(o.values)),
	}
	for key, value := range o.values {
		cp.values[key] = value.DeepCopy()
	}
	return cp
}

func (o *Object) String() string { return elementString(o) }
