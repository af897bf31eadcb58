// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package lang defines the compiled form of the chomp meta-language: a flat
// sequence of descriptors, each naming one engine operation plus its
// parameter. Descriptors are produced by the meta compiler and consumed
// read-only by the interpreter.
package lang

// Op names one parser operation the interpreter can dispatch on.
type Op int

const (
	// OpWord matches an exact literal.
	OpWord Op = iota
	// OpChar matches one extended grapheme cluster.
	OpChar
	// OpDigit matches one ASCII decimal digit.
	OpDigit
	// OpEOL matches one-or-more \r\n or one-or-more \n.
	OpEOL
	// OpEOF matches the empty remainder.
	OpEOF
	// OpEOLOrEOF matches EOL or EOF, in that order.
	OpEOLOrEOF
	// OpOneOrMore repeats a nested descriptor while it advances the chomp.
	OpOneOrMore
)

// String returns the operation name as spelled in diagnostics.
func (o Op) String() string {
	switch o {
	case OpWord:
		return "word"
	case OpChar:
		return "char"
	case OpDigit:
		return "digit"
	case OpEOL:
		return "eol"
	case OpEOF:
		return "eof"
	case OpEOLOrEOF:
		return "eol_or_eof"
	case OpOneOrMore:
		return "one_or_more_of"
	}
	return "unknown"
}

// ParamKind says which parameter shape a descriptor carries.
type ParamKind int

const (
	// ParamNone is an operation taking only the state.
	ParamNone ParamKind = iota
	// ParamLiteral is an operation taking the state and a string literal.
	ParamLiteral
	// ParamParser is an operation taking the state and a nested parser.
	ParamParser
)

// Descriptor pairs an operation with its parameter. Nested points into the
// same arena (the descriptor compiled from the symbol following a `>`).
type Descriptor struct {
	Op      Op
	Param   ParamKind
	Literal string
	Nested  *Descriptor
}

// Prim returns a descriptor for an operation that takes only the state.
func Prim(op Op) Descriptor {
	return Descriptor{Op: op, Param: ParamNone}
}

// Lit returns a word descriptor for the given literal.
func Lit(literal string) Descriptor {
	return Descriptor{Op: OpWord, Param: ParamLiteral, Literal: literal}
}

// Repeat returns a one-or-more descriptor wrapping nested.
func Repeat(nested Descriptor) Descriptor {
	return Descriptor{Op: OpOneOrMore, Param: ParamParser, Nested: &nested}
}
