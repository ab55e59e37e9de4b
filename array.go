// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package json5

import (
	"iter"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// An Array is an ordered sequence of elements.
type Array struct {
	commentText

	elts []Element
}

// NewArray returns a new array containing the given elements.
func NewArray(elts ...Element) *Array {
	a := new(Array)
	for _, e := range elts {
		a.Add(e)
	}
	return a
}

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.elts) }

// Add appends e to a. A nil element stores an explicit null.
func (a *Array) Add(e Element) {
	if e == nil {
		e = NewNull()
	}
	a.elts = append(a.elts, e)
}

// Get returns the element at offset i. It panics if i is out of range.
func (a *Array) Get(i int) Element { return a.elts[i] }

// Set replaces the element at offset i with e and returns the former
// element. It panics if i is out of range.
func (a *Array) Set(i int, e Element) Element {
	if e == nil {
		e = NewNull()
	}
	old := a.elts[i]
	a.elts[i] = e
	return old
}

// RemoveIndex removes and returns the element at offset i. It panics if i is
// out of range.
func (a *Array) RemoveIndex(i int) Element {
	old := a.elts[i]
	a.elts = append(a.elts[:i], a.elts[i+1:]...)
	return old
}

// Remove removes the first element of a equal to e, ignoring comments, and
// reports whether one was found.
func (a *Array) Remove(e Element) bool {
	for i, elt := range a.elts {
		if Equal(elt, e) {
			a.RemoveIndex(i)
			return true
		}
	}
	return false
}

// Contains reports whether a holds an element equal to e, ignoring comments.
func (a *Array) Contains(e Element) bool {
	for _, elt := range a.elts {
		if Equal(elt, e) {
			return true
		}
	}
	return false
}

// All ranges over the elements of a in order.
func (a *Array) All() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, e := range a.elts {
			if !yield(i, e) {
				return
			}
		}
	}
}

// single returns the primitive view of the only element of a. The whole-array
// value accessors defer to it.
func (a *Array) single(op string) (*Primitive, error) {
	if len(a.elts) != 1 {
		return nil, &UnsupportedError{Op: op, Detail: "array does not hold exactly one element"}
	}
	return AsPrimitive(a.elts[0])
}

// Bool returns the value of a single-element array of a Boolean.
func (a *Array) Bool() (bool, error) {
	p, err := a.single("Bool")
	if err != nil {
		return false, err
	}
	return p.Bool()
}

// Text returns the string rendering of a single-element array's value.
func (a *Array) Text() (string, error) {
	p, err := a.single("Text")
	if err != nil {
		return "", err
	}
	return p.Text(), nil
}

// Number returns the value of a single-element array of a number.
func (a *Array) Number() (Number, error) {
	p, err := a.single("Number")
	if err != nil {
		return Number{}, err
	}
	return p.Number()
}

// Int64 returns the value of a single-element array of an integer.
func (a *Array) Int64() (int64, error) {
	p, err := a.single("Int64")
	if err != nil {
		return 0, err
	}
	return p.Int64()
}

// Float64 returns the value of a single-element array of a number.
func (a *Array) Float64() (float64, error) {
	p, err := a.single("Float64")
	if err != nil {
		return 0, err
	}
	return p.Float64()
}

// BigInt returns the value of a single-element array of an integer.
func (a *Array) BigInt() (*big.Int, error) {
	p, err := a.single("BigInt")
	if err != nil {
		return nil, err
	}
	return p.BigInt()
}

// Decimal returns the value of a single-element array of a finite number.
func (a *Array) Decimal() (decimal.Decimal, error) {
	p, err := a.single("Decimal")
	if err != nil {
		return decimal.Decimal{}, err
	}
	return p.Decimal()
}

// Instant returns the value of a single-element array of an instant.
func (a *Array) Instant() (time.Time, error) {
	p, err := a.single("Instant")
	if err != nil {
		return time.Time{}, err
	}
	return p.Instant()
}

// DeepCopy returns a structurally independent copy of a.
func (a *Array) DeepCopy() Element {
	cp := &Array{commentText: a.commentText, elts: make([]Element, len(a.elts))}
	for i, e := range a.elts {
		cp.elts[i] = e.DeepCopy()
	}
	return cp
}

func (a *Array) String() string { return elementString(a) }
