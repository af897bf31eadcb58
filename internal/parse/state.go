// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package parse implements the chomp combinator engine: a ParserState
// threaded by value through primitives, combinators, and the element and
// function parsers of the assignment/sum language. Failure is data, not an
// error: once Success is false every operation passes the state through
// unchanged.
package parse

import (
	"nickandperla.net/chomp/internal/arena"
	"nickandperla.net/chomp/internal/diag"
	"nickandperla.net/chomp/internal/element"
	"nickandperla.net/chomp/internal/lang"
)

// Fn is a parser: a pure State-in, State-out transformation. Method
// expressions (State.Digit, State.ElInt, ...) satisfy it directly.
type Fn func(State) State

// State is the value threaded through every parser call. It is owned by
// whichever call currently holds it; backtracking combinators Clone before
// trying an alternative and discard losers.
type State struct {
	// InputOriginal is the string supplied at construction, kept for
	// error reporting and position math only.
	InputOriginal string
	// InputRemaining is the unconsumed suffix. It shrinks only on success.
	InputRemaining string
	// Chomp accumulates consumed text for the value currently being
	// built. Structural tokens are consumed with chomping off so they
	// never land here.
	Chomp string
	// Success is sticky-false: primitives are inert once it clears.
	Success bool

	// Output holds parsed elements, all siblings under one implicit root.
	Output *arena.Arena[element.Element]
	// Lang holds compiled meta-language descriptors.
	Lang *arena.Arena[lang.Descriptor]

	chomping bool
	// quiet suppresses failure diagnostics while a combinator probes an
	// alternative whose failure is expected.
	quiet  int
	logger diag.Logger
	color  bool
}

// New constructs a State over input with chomping on, an empty output
// arena, and diagnostics discarded.
func New(input string) State {
	return State{
		InputOriginal:  input,
		InputRemaining: input,
		Success:        true,
		chomping:       true,
		Output:         &arena.Arena[element.Element]{},
		Lang:           &arena.Arena[lang.Descriptor]{},
		logger:         diag.NewNoOpLogger(),
	}
}

// WithLogger installs the diagnostics side-channel. The logger is shared,
// not cloned, across backtracking copies.
func (s State) WithLogger(l diag.Logger) State {
	if l != nil {
		s.logger = l
	}
	return s
}

// WithColor turns on styled failure diagnostics.
func (s State) WithColor(on bool) State {
	s.color = on
	return s
}

// Clone deep-copies the state, including both arenas. This is the
// backtracking mechanism: mutate the clone, keep it on success, drop it on
// failure.
func (s State) Clone() State {
	ns := s
	ns.Output = s.Output.Clone()
	ns.Lang = s.Lang.Clone()
	return ns
}

// SetChomping toggles whether matched text is appended to Chomp. Input is
// consumed either way.
func (s State) SetChomping(on bool) State {
	s.chomping = on
	return s
}

// ClearChomp empties the scratch buffer.
func (s State) ClearChomp() State {
	s.Chomp = ""
	return s
}

// FindVar scans the output arena for a Var element named name, returning
// its index. All lookups are absent-result, never errors.
func (s State) FindVar(name string) (int, bool) {
	for i, el := range s.Output.All() {
		if el.Kind == element.Var && el.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Vars returns the Var elements of the output arena in insertion order:
// one per distinct name, carrying its final bound value.
func (s State) Vars() []element.Element {
	var out []element.Element
	for _, el := range s.Output.All() {
		if el.Kind == element.Var {
			out = append(out, el)
		}
	}
	return out
}

// chomp appends consumed text to the scratch buffer when chomping is on.
func (s State) chomp(text string) State {
	if s.chomping {
		s.Chomp += text
	}
	return s
}

// fail clears Success and, unless suppressed, reports the failing parser
// and the remainder it could not match.
func (s State) fail(parser string) State {
	s.Success = false
	if s.quiet == 0 {
		diag.ReportFailure(s.logger, s.color, parser, s.InputRemaining)
	}
	return s
}
