package parse

import (
	"testing"

	"nickandperla.net/chomp/internal/element"
)

func sumOf(t *testing.T, input string) element.Element {
	t.Helper()
	s := New(input).FnVarSum()
	if !s.Success {
		t.Fatalf("FnVarSum(%q) failed, remaining=%q", input, s.InputRemaining)
	}
	if s.Output.Len() != 1 {
		t.Fatalf("FnVarSum(%q) left %d elements, want the folded one", input, s.Output.Len())
	}
	el, _ := s.Output.NthLast(0)
	return el
}

func TestFnVarSumInts(t *testing.T) {
	el := sumOf(t, "+ 1 2")
	if el.Kind != element.Int64 || el.Int != 3 {
		t.Errorf("expected Int64 3, got %+v", el)
	}
}

func TestFnVarSumBracketEquivalence(t *testing.T) {
	bare := sumOf(t, "+ 5 7")
	bracketed := sumOf(t, "(+ 5 7)")
	if bare != bracketed {
		t.Errorf("bare %+v != bracketed %+v", bare, bracketed)
	}

	bareF := sumOf(t, "+ 1.5 2.25")
	bracketedF := sumOf(t, "(+ 1.5 2.25)")
	if bareF != bracketedF {
		t.Errorf("bare %+v != bracketed %+v", bareF, bracketedF)
	}
}

func TestFnVarSumNested(t *testing.T) {
	el := sumOf(t, "+ 1 + 2 3")
	if el.Int != 6 {
		t.Errorf("right-nested sum: expected 6, got %d", el.Int)
	}

	el = sumOf(t, "(+ (+ 1 2) 3)")
	if el.Int != 6 {
		t.Errorf("bracket-nested sum: expected 6, got %d", el.Int)
	}
}

func TestFnVarSumFloatErrorPreserved(t *testing.T) {
	el := sumOf(t, "+ 1.1 2.2")
	if el.Kind != element.Float64 {
		t.Fatalf("expected Float64, got %+v", el)
	}
	// IEEE-754 double semantics, accumulated error included.
	if el.Float != 3.3000000000000003 {
		t.Errorf("expected 3.3000000000000003 bit-for-bit, got %v", el.Float)
	}
}

func TestFnVarSumMixedTypesFail(t *testing.T) {
	if s := New("+ 1 2.5").FnVarSum(); s.Success {
		t.Error("int + float must fail")
	}
	if s := New("+ 1.5 2").FnVarSum(); s.Success {
		t.Error("float + int must fail")
	}
}

func TestFnVarSumRejectsMalformed(t *testing.T) {
	for _, input := range []string{"1 2", "+ 1", "(+ 1 2", "+ x y"} {
		if s := New(input).FnVarSum(); s.Success {
			t.Errorf("FnVarSum(%q) should fail", input)
		}
	}
}

func TestFnVarAssign(t *testing.T) {
	s := New("= x 1").FnVarAssign()
	if !s.Success {
		t.Fatalf("assignment failed, remaining=%q", s.InputRemaining)
	}
	if s.Output.Len() != 1 {
		t.Fatalf("expected one element, got %d", s.Output.Len())
	}
	el, _ := s.Output.NthLast(0)
	if el.Kind != element.Var || el.Name != "x" || el.Num != element.Int64 || el.Int != 1 {
		t.Errorf("unexpected binding %+v", el)
	}
}

func TestFnVarAssignSum(t *testing.T) {
	s := New("= total + 1 + 2 3").FnVarAssign()
	if !s.Success {
		t.Fatalf("assignment failed, remaining=%q", s.InputRemaining)
	}
	el, _ := s.Output.NthLast(0)
	if el.Name != "total" || el.Int != 6 {
		t.Errorf("unexpected binding %+v", el)
	}
}

func TestReassignmentUpserts(t *testing.T) {
	s := New("= x 1\r\n= x 2").Parse()
	if !s.Success {
		t.Fatalf("parse failed, remaining=%q", s.InputRemaining)
	}
	vars := s.Vars()
	if len(vars) != 1 {
		t.Fatalf("upsert must not append a duplicate: %d vars", len(vars))
	}
	if vars[0].Name != "x" || vars[0].Int != 2 {
		t.Errorf("expected x = 2, got %+v", vars[0])
	}
}

func TestUpsertKeepsPositionAndChangesKind(t *testing.T) {
	s := New("= x 1\n= y 2\n= x 5.5").Parse()
	if !s.Success {
		t.Fatalf("parse failed, remaining=%q", s.InputRemaining)
	}
	vars := s.Vars()
	if len(vars) != 2 {
		t.Fatalf("expected 2 vars, got %d", len(vars))
	}
	if vars[0].Name != "x" {
		t.Errorf("x must keep its original position, got %q first", vars[0].Name)
	}
	if vars[0].Num != element.Float64 || vars[0].Float != 5.5 {
		t.Errorf("expected x rebound to 5.5, got %+v", vars[0])
	}
}

func TestAssociationEquivalence(t *testing.T) {
	left := New("= x + 1 + 2 + 3 4").Parse()
	right := New("= x + + 1 2 + 3 4").Parse()
	if !left.Success || !right.Success {
		t.Fatalf("parse failed: left=%v right=%v", left.Success, right.Success)
	}
	lv, rv := left.Vars(), right.Vars()
	if lv[0].Int != 10 || rv[0].Int != 10 {
		t.Errorf("both associations must give 10, got %d and %d", lv[0].Int, rv[0].Int)
	}
}

func TestParseProgram(t *testing.T) {
	s := New("= x + 1 2\r\n= y + 3 4\r\n= z + 5.0 6.0").Parse()
	if !s.Success {
		t.Fatalf("parse failed, remaining=%q", s.InputRemaining)
	}
	if s.InputRemaining != "" {
		t.Errorf("expected full consumption, remaining=%q", s.InputRemaining)
	}
	vars := s.Vars()
	if len(vars) != 3 {
		t.Fatalf("expected 3 bindings, got %d", len(vars))
	}
	if vars[0].Name != "x" || vars[0].Num != element.Int64 || vars[0].Int != 3 {
		t.Errorf("x: %+v", vars[0])
	}
	if vars[1].Name != "y" || vars[1].Int != 7 {
		t.Errorf("y: %+v", vars[1])
	}
	if vars[2].Name != "z" || vars[2].Num != element.Float64 || vars[2].Float != 11.0 {
		t.Errorf("z: %+v", vars[2])
	}
}

func TestParseMixedNewlineSeparators(t *testing.T) {
	// A statement separator may mix CRLF and LF runs; the terminator
	// keeps applying EOL until the whole run is consumed.
	s := New("= x 1\r\n\n= y 2").Parse()
	if !s.Success {
		t.Fatalf("parse failed, remaining=%q", s.InputRemaining)
	}
	if s.InputRemaining != "" {
		t.Errorf("expected full consumption, remaining=%q", s.InputRemaining)
	}
	vars := s.Vars()
	if len(vars) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(vars))
	}
	if vars[0].Name != "x" || vars[0].Int != 1 {
		t.Errorf("x: %+v", vars[0])
	}
	if vars[1].Name != "y" || vars[1].Int != 2 {
		t.Errorf("y: %+v", vars[1])
	}
}

func TestParseFailureLeavesRemainder(t *testing.T) {
	s := New(" = x 1").Parse()
	if s.Success {
		t.Fatal("a leading space must fail the statement")
	}
	if s.InputRemaining != " = x 1" {
		t.Errorf("remainder must be untouched for diagnostics, got %q", s.InputRemaining)
	}
}

func TestParseStopsAtFirstBadStatement(t *testing.T) {
	s := New("= x 1\nnot a statement").Parse()
	if s.Success {
		t.Fatal("expected failure")
	}
	if s.InputRemaining != "not a statement" {
		t.Errorf("expected the offending remainder, got %q", s.InputRemaining)
	}
	// The good statement before the failure still bound.
	vars := s.Vars()
	if len(vars) != 1 || vars[0].Int != 1 {
		t.Errorf("expected x = 1 bound before the failure, got %+v", vars)
	}
}

func TestFindVar(t *testing.T) {
	s := New("= a 1\n= b 2").Parse()
	if _, found := s.FindVar("b"); !found {
		t.Error("expected to find b")
	}
	if _, found := s.FindVar("missing"); found {
		t.Error("absent lookup must report not-found, not a hit")
	}
}

func TestLookupRegistry(t *testing.T) {
	fn, ok := Lookup("el_int")
	if !ok {
		t.Fatal("el_int should be registered")
	}
	s := fn(New("42"))
	if !s.Success {
		t.Error("registered parser should run")
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("unknown names must miss")
	}
	if len(Names()) == 0 {
		t.Error("registry should list names")
	}
}
