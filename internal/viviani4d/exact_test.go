package viviani4d

import (
	"math"
	"math/big"
	"testing"
)

func TestExactCircle(t *testing.T) {
	c, err := ExactCircle()
	if err != nil {
		t.Fatal(err)
	}
	if c.Degree != 2 || c.Segments != 4 || len(c.Ctrl) != 9 {
		t.Fatalf("circle: degree %d, %d segments, %d points", c.Degree, c.Segments, len(c.Ctrl))
	}
	wantW := []int64{1, 1, 2, 1, 1, 1, 2, 1, 1}
	for i, w := range wantW {
		if c.Weights[i].Cmp(rat(w)) != 0 {
			t.Fatalf("weight %d = %s, want %d", i, c.Weights[i].RatString(), w)
		}
	}
	corners := map[int][2]int64{0: {1, 0}, 1: {1, 1}, 2: {0, 1}, 4: {-1, 0}, 6: {0, -1}, 8: {1, 0}}
	for i, xy := range corners {
		if c.Ctrl[i][0].Cmp(rat(xy[0])) != 0 || c.Ctrl[i][1].Cmp(rat(xy[1])) != 0 {
			t.Fatalf("control point %d = (%s, %s), want %v", i, c.Ctrl[i][0].RatString(), c.Ctrl[i][1].RatString(), xy)
		}
	}

	f, err := c.Float()
	if err != nil {
		t.Fatal(err)
	}
	// u = 0.5 is τ = 1/2 on the first quadrant: (3/5, 4/5)
	p, err := f.Evaluate(0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, "circle(0.5)", p, []Real{0.6, 0.8}, tol)
	for _, u := range linspace(0, 4, 101) {
		p, err := f.Evaluate(u)
		if err != nil {
			t.Fatal(err)
		}
		if r := math.Hypot(p[0], p[1]); math.Abs(r-1) > 1e-12 {
			t.Fatalf("u=%v off the circle: %.15g", u, r)
		}
	}
}

func TestExactCircleSegmentPolys(t *testing.T) {
	c, err := ExactCircle()
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < 4; k++ {
		hom, err := c.SegmentPolys(k)
		if err != nil {
			t.Fatal(err)
		}
		// X² + Y² − W² vanishes identically
		q := hom[0].Mul(hom[0]).Add(hom[1].Mul(hom[1])).Sub(hom[2].Mul(hom[2]))
		if !q.IsZero() {
			t.Fatalf("segment %d not on the circle: %s", k, q)
		}
	}
	if _, err := c.SegmentPolys(4); err == nil {
		t.Fatal("segment 4 accepted")
	}
}

func TestExactViviani(t *testing.T) {
	c, err := ExactViviani(rat(2))
	if err != nil {
		t.Fatal(err)
	}
	if c.Degree != 4 || len(c.Ctrl) != 17 || len(c.Knots()) != 22 {
		t.Fatalf("viviani: degree %d, %d points, %d knots", c.Degree, len(c.Ctrl), len(c.Knots()))
	}
	seg := []*big.Rat{rat(1), rat(1), ratFrac(4, 3), rat(2), rat(4)}
	for k := 0; k < 4; k++ {
		for j := 0; j <= 4; j++ {
			want := seg[j]
			if k%2 == 1 {
				want = seg[4-j]
			}
			if w := c.Weights[4*k+j]; w.Cmp(want) != 0 {
				t.Fatalf("segment %d weight %d = %s, want %s", k, j, w.RatString(), want.RatString())
			}
		}
	}

	f, err := c.Float()
	if err != nil {
		t.Fatal(err)
	}
	// θ = 2·atan(1/2): cos = 3/5, sin = 4/5
	p, err := f.Evaluate(0.5)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, "viviani(0.5)", p, []Real{2 * 0.36, 2 * 0.48, 2 * 0.8}, tol)
	for _, u := range linspace(0, 4, 81) {
		p, _ := f.Evaluate(u)
		if s := p[0]*p[0] + p[1]*p[1] + p[2]*p[2]; math.Abs(s-4) > 1e-12 {
			t.Fatalf("u=%v off the sphere: %.15g", u, s)
		}
		if cyl := (p[0]-1)*(p[0]-1) + p[1]*p[1]; math.Abs(cyl-1) > 1e-12 {
			t.Fatalf("u=%v off the cylinder: %.15g", u, cyl)
		}
	}
	if _, err := ExactViviani(rat(0)); err == nil {
		t.Fatal("zero radius accepted")
	}
}

func TestAssembleSegmentsRejectsGaps(t *testing.T) {
	a, err := SegmentFromHomogeneous([]Poly{NewPoly(0, 1), NewPoly(1)}, 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SegmentFromHomogeneous([]Poly{NewPoly(2, 1), NewPoly(1)}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := AssembleSegments([]*BezierSegment{a, b}); err == nil {
		t.Fatal("disconnected segments accepted")
	}
	if _, err := SegmentFromHomogeneous([]Poly{NewPoly(0, 1), NewPoly(1, -2)}, 1); err == nil {
		t.Fatal("negative weight accepted")
	}
}

func TestExactRadius(t *testing.T) {
	r, err := exactRadius(2.5)
	if err != nil {
		t.Fatal(err)
	}
	if r.Cmp(ratFrac(5, 2)) != 0 {
		t.Fatalf("exactRadius(2.5) = %s", r.RatString())
	}
	for _, bad := range []Real{0, -1, math.Inf(1), math.NaN()} {
		if _, err := exactRadius(bad); err == nil {
			t.Fatalf("radius %v accepted", bad)
		}
	}
}
