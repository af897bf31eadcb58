// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package element defines the typed elements produced by the chomp engine.
package element

import (
	"fmt"
	"strconv"
)

// Kind identifies which payload an Element carries.
type Kind int

const (
	// Int64 is a 64-bit integer literal.
	Int64 Kind = iota
	// Float64 is an IEEE-754 double literal.
	Float64
	// Str is a string literal.
	Str
	// Var is a named binding carrying one numeric payload.
	Var
)

// String returns the spelled-out kind name.
func (k Kind) String() string {
	switch k {
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	case Str:
		return "str"
	case Var:
		return "var"
	}
	return "unknown"
}

// Element is a tagged union over {Int64, Float64, Str, Var}. Exactly the
// payload fields implied by Kind are meaningful; for Var, Num says which of
// the two numeric payloads holds the bound value.
type Element struct {
	Kind  Kind
	Int   int64
	Float float64
	Text  string
	Name  string
	// Num is Int64 or Float64 and is only meaningful when Kind is Var.
	Num Kind
}

// NewInt64 creates an integer element.
func NewInt64(v int64) Element {
	return Element{Kind: Int64, Int: v}
}

// NewFloat64 creates a float element.
func NewFloat64(v float64) Element {
	return Element{Kind: Float64, Float: v}
}

// NewStr creates a string element.
func NewStr(s string) Element {
	return Element{Kind: Str, Text: s}
}

// NewVar creates a named element with no value payload yet.
func NewVar(name string) Element {
	return Element{Kind: Var, Name: name}
}

// Bind returns a Var element named name carrying value's numeric payload.
// value must be an Int64 or Float64 element.
func Bind(name string, value Element) Element {
	el := Element{Kind: Var, Name: name, Num: value.Kind}
	switch value.Kind {
	case Int64:
		el.Int = value.Int
	case Float64:
		el.Float = value.Float
	}
	return el
}

// Value returns the numeric payload of a Var element as a bare element.
func (e Element) Value() Element {
	if e.Num == Float64 {
		return NewFloat64(e.Float)
	}
	return NewInt64(e.Int)
}

// String returns a display form of the element.
func (e Element) String() string {
	switch e.Kind {
	case Int64:
		return strconv.FormatInt(e.Int, 10)
	case Float64:
		return strconv.FormatFloat(e.Float, 'g', -1, 64)
	case Str:
		return strconv.Quote(e.Text)
	case Var:
		return fmt.Sprintf("%s = %s", e.Name, e.Value().String())
	}
	return "<invalid>"
}
