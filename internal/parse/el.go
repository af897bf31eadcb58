// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package parse

import (
	"strconv"

	"nickandperla.net/chomp/internal/element"
)

// Element parsers build one typed element in the chomp buffer, append it to
// the output arena, and clear the buffer.

// quietWord consumes a structural literal without letting it reach the
// chomp buffer, restoring the caller's chomping mode afterwards.
func (s State) quietWord(expected string) State {
	was := s.chomping
	s.chomping = false
	s = s.Word(expected)
	s.chomping = was
	return s
}

// ElInt parses an optional leading minus and one-or-more digits, appending
// an Int64 element. Fails if no digit was consumed.
func (s State) ElInt() State {
	if !s.Success {
		return s
	}
	ns := s.Optional(Lit("-")).OneOrMoreOf(State.Digit)
	if !ns.Success {
		return ns
	}
	v, err := strconv.ParseInt(ns.Chomp, 10, 64)
	if err != nil {
		return ns.fail("el_int")
	}
	ns.Output.Append(element.NewInt64(v))
	return ns.ClearChomp()
}

// ElFloat parses digits, a literal dot, and more digits, appending a
// Float64 element. In any alternative set it must be attempted before
// ElInt, or the integer part parses as a complete int with a dangling dot.
func (s State) ElFloat() State {
	if !s.Success {
		return s
	}
	ns := s.Optional(Lit("-")).
		OneOrMoreOf(State.Digit).
		Word(".").
		OneOrMoreOf(State.Digit)
	if !ns.Success {
		return ns
	}
	v, err := strconv.ParseFloat(ns.Chomp, 64)
	if err != nil {
		return ns.fail("el_float")
	}
	ns.Output.Append(element.NewFloat64(v))
	return ns.ClearChomp()
}

// ElStr parses a double-quoted string, appending a Str element. The quotes
// themselves are consumed with chomping off so only the content lands in
// the element.
func (s State) ElStr() State {
	if !s.Success {
		return s
	}
	ns := s.quietWord(`"`)
	if !ns.Success {
		return ns
	}
	ns = ns.UntilFirstDoSecond(closingQuote, State.AnyChar)
	if !ns.Success {
		return ns
	}
	ns.Output.Append(element.NewStr(ns.Chomp))
	return ns.ClearChomp()
}

func closingQuote(s State) State {
	return s.quietWord(`"`)
}

// ElVar parses one-or-more non-space graphemes followed by a mandatory
// space delimiter, appending a Var element with no value payload yet. The
// delimiter is consumed quietly so it is not part of the name.
func (s State) ElVar() State {
	if !s.Success {
		return s
	}
	ns := s.OneOrMoreOf(State.Char)
	if !ns.Success {
		return ns
	}
	ns = ns.quietWord(" ")
	if !ns.Success {
		return ns
	}
	ns.Output.Append(element.NewVar(ns.Chomp))
	return ns.ClearChomp()
}
