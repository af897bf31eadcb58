// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package parse

// Lit returns a parser matching the exact literal, for handing Word to a
// combinator.
func Lit(expected string) Fn {
	return func(s State) State { return s.Word(expected) }
}

// OneOrMoreOf applies fn while it succeeds. The whole loop fails iff the
// chomp did not grow across it; chomp growth, not repetition count, is
// authoritative. The two diverge only when fn consumes with chomping off,
// which no caller in this package does inside a repetition.
func (s State) OneOrMoreOf(fn Fn) State {
	if !s.Success {
		return s
	}
	before := len(s.Chomp)
	ns := s
	ns.quiet++
	for ns.Success {
		ns = fn(ns)
	}
	ns.quiet--
	if len(ns.Chomp) == before {
		return ns.fail("one_or_more_of")
	}
	ns.Success = true
	return ns
}

// ZeroOrMoreOf applies fn while it succeeds and always reports success.
func (s State) ZeroOrMoreOf(fn Fn) State {
	if !s.Success {
		return s
	}
	ns := s
	ns.quiet++
	for ns.Success {
		ns = fn(ns)
	}
	ns.quiet--
	ns.Success = true
	return ns
}

// Optional applies fn once and forces success. Mutations from a failed
// attempt are not rolled back; callers whose fn mutates on its failure path
// must Clone first.
func (s State) Optional(fn Fn) State {
	if !s.Success {
		return s
	}
	ns := s
	ns.quiet++
	ns = fn(ns)
	ns.quiet--
	ns.Success = true
	return ns
}

// FirstSuccessOf tries each alternative in order on a fresh clone with
// diagnostics suppressed, returning the first clone that succeeds. Order is
// the tie-break for ambiguous grammars (float before int). When every
// alternative fails the original, pre-clone state comes back with Success
// cleared.
func (s State) FirstSuccessOf(fns ...Fn) State {
	if !s.Success {
		return s
	}
	for _, fn := range fns {
		c := s.Clone()
		c.quiet++
		c = fn(c)
		if c.Success {
			c.quiet--
			return c
		}
	}
	s.Success = false
	return s
}

// UntilFirstDoSecond loops trying stop then step, each on a clone. When
// stop matches, its clone (terminator consumed) is returned. When step can
// no longer advance, the loop ends with success forced, so an unterminated
// scan consumes to end of input rather than failing. The stop parser runs
// as given; a stop whose terminator must stay out of the chomp consumes it
// with chomping off, the way the string scanners do.
func (s State) UntilFirstDoSecond(stop, step Fn) State {
	if !s.Success {
		return s
	}
	ns := s
	for {
		c := ns.Clone()
		c.quiet++
		c = stop(c)
		if c.Success {
			c.quiet--
			return c
		}
		c = ns.Clone()
		c.quiet++
		c = step(c)
		if !c.Success {
			ns.Success = true
			return ns
		}
		c.quiet--
		ns = c
	}
}
