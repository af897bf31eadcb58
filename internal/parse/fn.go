// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package parse

import "nickandperla.net/chomp/internal/element"

// Function parsers: the recursive grammar over element parsers. Each folds
// the elements it produced back into one, so the arena never holds
// intermediate operands after a parser returns.

// sumValue is the operand set of a sum: a nested sum, a float, or an int,
// in that order.
func sumValue(s State) State {
	return s.FirstSuccessOf(State.FnVarSum, State.ElFloat, State.ElInt)
}

// FnVarSum parses `+ V V` or `(+ V V)` where V is itself a sum, a float,
// or an int. The two operands must carry the same numeric kind; mixed
// types, or strings, fail the alternative outright.
func (s State) FnVarSum() State {
	if !s.Success {
		return s
	}
	return s.FirstSuccessOf(sumBare, sumBracketed)
}

func sumBare(s State) State {
	ns := s.quietWord("+ ")
	ns = sumValue(ns)
	ns = ns.quietWord(" ")
	ns = sumValue(ns)
	return foldSum(ns)
}

func sumBracketed(s State) State {
	ns := s.quietWord("(+ ")
	ns = sumValue(ns)
	ns = ns.quietWord(" ")
	ns = sumValue(ns)
	ns = ns.quietWord(")")
	return foldSum(ns)
}

// foldSum pops the two newest arena elements and replaces them with their
// arithmetic sum. Int64 uses native wrapping 64-bit addition; Float64 uses
// IEEE-754 doubles, accumulated error and all.
func foldSum(s State) State {
	if !s.Success {
		return s
	}
	right, ok := s.Output.NthLast(0)
	left, ok2 := s.Output.NthLast(1)
	if !ok || !ok2 {
		return s.fail("fn_var_sum")
	}
	if left.Kind != right.Kind {
		return s.fail("fn_var_sum")
	}
	s.Output.RemoveNthLast(0)
	s.Output.RemoveNthLast(0)
	switch left.Kind {
	case element.Int64:
		s.Output.Append(element.NewInt64(left.Int + right.Int))
	case element.Float64:
		s.Output.Append(element.NewFloat64(left.Float + right.Float))
	default:
		return s.fail("fn_var_sum")
	}
	return s
}

// eolOrEOF consumes the statement terminator: one-or-more end-of-line
// sequences, or end of input. Quiet, so separators never reach the chomp.
// EOL matches only a homogeneous newline run, so a separator mixing "\r\n"
// and "\n" takes repeated applications; the loop is manual because the
// repetition combinator judges success by chomp growth, which a quiet
// consumer never produces.
func eolOrEOF(s State) State {
	if !s.Success {
		return s
	}
	ns := s
	ns.chomping = false
	ns.quiet++
	eols := ns.EOL()
	if eols.Success {
		for eols.Success {
			eols = eols.EOL()
		}
		eols.Success = true
		ns = eols
	} else {
		ns = ns.EOF()
	}
	ns.quiet--
	ns.chomping = s.chomping
	return ns
}

// FnVarAssign parses `"= " varname value (eol+ | eof)`, then pops the value
// and the name placeholder and upserts the binding: an existing Var with
// the same name has its numeric payload overwritten in place, otherwise a
// fresh Var is appended. Re-assigning a name never grows the output.
func (s State) FnVarAssign() State {
	if !s.Success {
		return s
	}
	ns := s.quietWord("= ")
	if !ns.Success {
		return ns
	}
	ns = ns.ElVar()
	if !ns.Success {
		return ns
	}
	ns = ns.FirstSuccessOf(State.FnVarSum, State.ElFloat, State.ElInt)
	if !ns.Success {
		return ns
	}
	ns = eolOrEOF(ns)
	if !ns.Success {
		return ns
	}

	value, ok := ns.Output.NthLast(0)
	nameEl, ok2 := ns.Output.NthLast(1)
	if !ok || !ok2 || nameEl.Kind != element.Var ||
		(value.Kind != element.Int64 && value.Kind != element.Float64) {
		return ns.fail("fn_var_assign")
	}
	ns.Output.RemoveNthLast(0)
	ns.Output.RemoveNthLast(0)

	bound := element.Bind(nameEl.Name, value)
	if i, found := ns.FindVar(nameEl.Name); found {
		el := ns.Output.At(i)
		el.Num = bound.Num
		el.Int = bound.Int
		el.Float = bound.Float
	} else {
		ns.Output.Append(bound)
	}
	return ns
}

// Parse runs the full program: statements separated by end-of-line
// sequences, until the input is exhausted or no statement parser matches.
// On failure the offending remainder stays in InputRemaining.
func (s State) Parse() State {
	ns := s
	for ns.Success && ns.InputRemaining != "" {
		ns = ns.FirstSuccessOf(State.FnVarAssign)
	}
	return ns
}
