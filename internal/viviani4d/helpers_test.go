package viviani4d

import (
	"math"
	"testing"
)

const tol = 1e-12

func near(a, b, eps Real) bool { return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b)) }

func assertSlice(t *testing.T, what string, got, want []Real, eps Real) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", what, len(got), len(want))
	}
	for i := range got {
		if !near(got[i], want[i], eps) {
			t.Fatalf("%s[%d] = %.15g, want %.15g", what, i, got[i], want[i])
		}
	}
}

func mustBuild(t *testing.T, h *Hypersurface4, err error) *Hypersurface4 {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Build(); err != nil {
		t.Fatal(err)
	}
	return h
}
