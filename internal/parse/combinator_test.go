package parse

import "testing"

func TestOneOrMoreOf(t *testing.T) {
	s := New("123Test").OneOrMoreOf(State.Digit)
	if !s.Success || s.Chomp != "123" || s.InputRemaining != "Test" {
		t.Errorf("got chomp=%q remaining=%q success=%v", s.Chomp, s.InputRemaining, s.Success)
	}

	s = New("a123Test").OneOrMoreOf(State.Digit)
	if s.Success {
		t.Error("expected failure with zero repetitions")
	}
	if s.InputRemaining != "a123Test" || s.Chomp != "" {
		t.Errorf("zero-repetition failure mutated state: remaining=%q chomp=%q", s.InputRemaining, s.Chomp)
	}
}

func TestOneOrMoreOfChompGrowthIsAuthoritative(t *testing.T) {
	// With chomping off the loop consumes input but the chomp never
	// grows, so the combinator reports failure even though repetitions
	// advanced. This is the documented coupling.
	s := New("123").SetChomping(false).OneOrMoreOf(State.Digit)
	if s.Success {
		t.Error("expected failure: chomp did not grow")
	}
}

func TestZeroOrMoreOf(t *testing.T) {
	s := New("a123").ZeroOrMoreOf(State.Digit)
	if !s.Success {
		t.Error("zero repetitions must still succeed")
	}
	if s.InputRemaining != "a123" {
		t.Errorf("expected untouched remainder, got %q", s.InputRemaining)
	}

	s = New("123Test").ZeroOrMoreOf(State.Digit)
	if !s.Success || s.Chomp != "123" || s.InputRemaining != "Test" {
		t.Errorf("got chomp=%q remaining=%q success=%v", s.Chomp, s.InputRemaining, s.Success)
	}
}

func TestOptionalForcesSuccess(t *testing.T) {
	s := New("a123").Optional(State.Char)
	if !s.Success || s.Chomp != "a" || s.InputRemaining != "123" {
		t.Errorf("got chomp=%q remaining=%q success=%v", s.Chomp, s.InputRemaining, s.Success)
	}

	s = New("123").Optional(Lit("x"))
	if !s.Success {
		t.Error("optional must succeed when the parser fails")
	}
	if s.InputRemaining != "123" {
		t.Errorf("expected untouched remainder, got %q", s.InputRemaining)
	}
}

func TestOptionalDoesNotRollBack(t *testing.T) {
	// A composite that consumes before failing leaves its consumption
	// behind; only the success flag is reset.
	partial := func(s State) State { return s.Word("a").Word("z") }
	s := New("abc").Optional(partial)
	if !s.Success {
		t.Fatal("optional must force success")
	}
	if s.InputRemaining != "bc" {
		t.Errorf("expected the failed attempt's consumption kept, remaining=%q", s.InputRemaining)
	}
	if s.Chomp != "a" {
		t.Errorf("expected chomp 'a' kept, got %q", s.Chomp)
	}
}

func TestFirstSuccessOfOrder(t *testing.T) {
	s := New("ab").FirstSuccessOf(Lit("a"), Lit("ab"))
	if !s.Success {
		t.Fatal("expected success")
	}
	if s.InputRemaining != "b" {
		t.Errorf("first alternative must win: remaining=%q", s.InputRemaining)
	}
}

func TestFirstSuccessOfReturnsOriginalOnTotalFailure(t *testing.T) {
	s := New("xyz").Word("x")
	before := s.InputRemaining
	s = s.FirstSuccessOf(Lit("a"), Lit("b"))
	if s.Success {
		t.Fatal("expected failure")
	}
	if s.InputRemaining != before {
		t.Errorf("total failure must return the pre-clone state, remaining=%q", s.InputRemaining)
	}
	if s.Chomp != "x" {
		t.Errorf("pre-attempt chomp lost: %q", s.Chomp)
	}
}

func TestFirstSuccessOfDiscardsLosingMutations(t *testing.T) {
	// The losing alternative appends an element; its clone must be
	// dropped wholesale.
	losing := func(s State) State {
		s = s.ElInt() // appends an Int64 element
		return s.Word("x")
	}
	s := New("1").FirstSuccessOf(losing, Lit("1"))
	if !s.Success {
		t.Fatal("expected the second alternative to win")
	}
	if s.Output.Len() != 0 {
		t.Errorf("losing branch leaked %d arena elements", s.Output.Len())
	}
}

func TestUntilFirstDoSecond(t *testing.T) {
	// A scanner-style stop consumes the terminator with chomping off, so
	// only the scanned content lands in the chomp.
	stop := func(s State) State { return s.quietWord("!") }
	s := New("abc!rest").UntilFirstDoSecond(stop, State.AnyChar)
	if !s.Success {
		t.Fatal("expected success")
	}
	if s.Chomp != "abc" {
		t.Errorf("expected chomp 'abc', got %q", s.Chomp)
	}
	// The terminator itself is consumed by the stop parser.
	if s.InputRemaining != "rest" {
		t.Errorf("expected remaining 'rest', got %q", s.InputRemaining)
	}
}

func TestUntilFirstDoSecondStopRunsAsGiven(t *testing.T) {
	// The combinator does not quiet the stop itself; a stop that chomps
	// leaves the terminator in the buffer.
	s := New("abc!rest").UntilFirstDoSecond(Lit("!"), State.AnyChar)
	if !s.Success {
		t.Fatal("expected success")
	}
	if s.Chomp != "abc!" {
		t.Errorf("expected chomp 'abc!', got %q", s.Chomp)
	}
	if s.InputRemaining != "rest" {
		t.Errorf("expected remaining 'rest', got %q", s.InputRemaining)
	}
}

func TestUntilFirstDoSecondUnterminated(t *testing.T) {
	s := New("abc").UntilFirstDoSecond(Lit("!"), State.AnyChar)
	if !s.Success {
		t.Error("an exhausted scan still forces success")
	}
	if s.InputRemaining != "" || s.Chomp != "abc" {
		t.Errorf("expected full consumption, remaining=%q chomp=%q", s.InputRemaining, s.Chomp)
	}
}
