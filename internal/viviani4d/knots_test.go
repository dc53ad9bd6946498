package viviani4d

import (
	"strings"
	"testing"
)

func TestValidateKnots(t *testing.T) {
	if err := ValidateKnots(KnotVector{0, 0, 0, 1, 1, 1}, 2, 3); err != nil {
		t.Fatalf("valid knots rejected: %v", err)
	}
	cases := []struct {
		name  string
		knots KnotVector
		p, n  int
		msg   string
	}{
		{"wrong length", KnotVector{0, 0, 1, 1}, 2, 3, "expected 6"},
		{"decreasing", KnotVector{0, 0, 0, 0.7, 0.5, 1, 1}, 2, 4, "non-decreasing"},
		{"too few points", KnotVector{0, 0, 0, 1, 1}, 2, 2, "at least 3"},
		{"degenerate domain", KnotVector{0, 0, 0, 0, 0, 0}, 2, 3, "degenerate"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateKnots(c.knots, c.p, c.n)
			if err == nil || !strings.Contains(err.Error(), c.msg) {
				t.Fatalf("got %v, want error containing %q", err, c.msg)
			}
		})
	}
}

func TestFindSpan(t *testing.T) {
	U := KnotVector{0, 0, 0, 1, 2, 3, 4, 4, 5, 5, 5}
	n, p := 7, 2
	cases := []struct {
		u    Real
		want int
	}{
		{0, 2}, {0.5, 2}, {1, 3}, {2.5, 4}, {3.999, 5}, {4, 7}, {4.5, 7}, {5, 7},
	}
	for _, c := range cases {
		if got := FindSpan(n, p, c.u, U); got != c.want {
			t.Fatalf("FindSpan(%v) = %d, want %d", c.u, got, c.want)
		}
	}
}

func TestKnotHelpers(t *testing.T) {
	U := BezierJoinKnots(4, 2)
	want := KnotVector{0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 4}
	if len(U) != len(want) {
		t.Fatalf("BezierJoinKnots length %d, want %d", len(U), len(want))
	}
	for i := range U {
		if U[i] != want[i] {
			t.Fatalf("BezierJoinKnots = %v, want %v", U, want)
		}
	}
	if got := len(BezierJoinKnots(4, 4)); got != 22 {
		t.Fatalf("degree 4 join knots: %d, want 22", got)
	}
	if m := U.Multiplicity(2); m != 2 {
		t.Fatalf("Multiplicity(2) = %d", m)
	}
	if u := U.UniqueKnots(); len(u) != 5 || u[4] != 4 {
		t.Fatalf("UniqueKnots = %v", u)
	}
	lo, hi := U.Domain(2)
	if lo != 0 || hi != 4 {
		t.Fatalf("Domain = [%v, %v]", lo, hi)
	}
	if U.Clamp(2, 7) != 4 || U.Clamp(2, -1) != 0 {
		t.Fatal("Clamp failed")
	}

	C := ClampedUniformKnots(5, 2)
	if err := ValidateKnots(C, 2, 5); err != nil {
		t.Fatal(err)
	}
	if C[3] != 1.0/3 || C[4] != 2.0/3 || C[7] != 1 {
		t.Fatalf("ClampedUniformKnots = %v", C)
	}
}
