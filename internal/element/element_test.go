package element

import "testing"

func TestBindCarriesNumericPayload(t *testing.T) {
	v := Bind("x", NewInt64(42))
	if v.Kind != Var || v.Name != "x" || v.Num != Int64 || v.Int != 42 {
		t.Errorf("unexpected int binding: %+v", v)
	}

	f := Bind("y", NewFloat64(1.5))
	if f.Num != Float64 || f.Float != 1.5 {
		t.Errorf("unexpected float binding: %+v", f)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		el   Element
		want string
	}{
		{NewInt64(-7), "-7"},
		{NewFloat64(3.3000000000000003), "3.3000000000000003"},
		{NewStr("hi there"), `"hi there"`},
		{Bind("x", NewInt64(3)), "x = 3"},
	}
	for _, c := range cases {
		if got := c.el.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
