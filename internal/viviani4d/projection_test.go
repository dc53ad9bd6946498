package viviani4d

import (
	"math"
	"testing"
)

func TestOrthogonalDefaultDropsW(t *testing.T) {
	o, err := NewOrthogonal(nil, Rot4{})
	if err != nil {
		t.Fatal(err)
	}
	q, ok := o.Project(Point4{1, 2, 3, 4})
	if !ok || q != (Point3{1, 2, 3}) {
		t.Fatalf("Project = %+v, %v", q, ok)
	}
}

func TestOrthogonalBasis(t *testing.T) {
	// rows (1,1,0,0), (0,0,2,0), (0,0,0,1) orthonormalize to scaled axes
	b := Mat34{M: [3][4]Real{{1, 1, 0, 0}, {0, 0, 2, 0}, {0, 0, 0, 1}}}
	o, err := NewOrthogonal(&b, Rot4{})
	if err != nil {
		t.Fatal(err)
	}
	q, _ := o.Project(Point4{1, 1, 3, 4})
	assertSlice(t, "projected", q.Slice(), []Real{math.Sqrt2, 3, 4}, tol)

	bad := Mat34{M: [3][4]Real{{1, 0, 0, 0}, {2, 0, 0, 0}, {0, 0, 1, 0}}}
	if _, err := NewOrthogonal(&bad, Rot4{}); err == nil {
		t.Fatal("rank-deficient basis accepted")
	}
}

func TestOrthogonalRotationInXW(t *testing.T) {
	o, err := NewOrthogonal(nil, Rot4{XW: math.Pi / 2})
	if err != nil {
		t.Fatal(err)
	}
	// a quarter turn in XW brings W into X (up to sign)
	q, _ := o.Project(Point4{0, 0, 0, 1})
	if math.Abs(math.Abs(q.X)-1) > tol || math.Abs(q.Y) > tol || math.Abs(q.Z) > tol {
		t.Fatalf("Project = %+v", q)
	}
}

func TestPerspective(t *testing.T) {
	p, err := NewPerspective(4, Rot4{})
	if err != nil {
		t.Fatal(err)
	}
	q, ok := p.Project(Point4{1, 2, 3, 2})
	if !ok {
		t.Fatal("point in front of the eye rejected")
	}
	assertSlice(t, "perspective", q.Slice(), []Real{2, 4, 6}, tol)
	if _, ok := p.Project(Point4{0, 0, 0, 4}); ok {
		t.Fatal("point at the eye accepted")
	}
	if _, err := NewPerspective(0, Rot4{}); err == nil {
		t.Fatal("zero eye distance accepted")
	}
}

func TestStereographic(t *testing.T) {
	s, err := NewStereographic(1, Rot4{})
	if err != nil {
		t.Fatal(err)
	}
	// south pole maps to the origin, equator stays fixed
	q, _ := s.Project(Point4{0, 0, 0, -1})
	assertSlice(t, "south pole", q.Slice(), []Real{0, 0, 0}, tol)
	q, _ = s.Project(Point4{1, 0, 0, 0})
	assertSlice(t, "equator", q.Slice(), []Real{1, 0, 0}, tol)
	if _, ok := s.Project(Point4{0, 0, 0, 1}); ok {
		t.Fatal("north pole accepted")
	}
}

func TestProjectControlNet(t *testing.T) {
	h, err := NewViviani4D(2)
	h = mustBuild(t, h, err)
	o, _ := NewOrthogonal(nil, Rot4{})
	net, err := ProjectControlNet(h, o)
	if err != nil {
		t.Fatal(err)
	}
	if len(net) != 17 || len(net[0]) != 9 {
		t.Fatalf("projected net %dx%d", len(net), len(net[0]))
	}
	c := h.Surface.Ctrl[3][4]
	if net[3][4] != (Point3{c[0], c[1], c[2]}) {
		t.Fatalf("net[3][4] = %+v, control point %v", net[3][4], c)
	}
}

func TestProjectNURBSMatchesSamples(t *testing.T) {
	h, err := NewViviani4D(2)
	h = mustBuild(t, h, err)
	rot := Rot4{XW: 0.4, YZ: -0.3, ZW: 1.1}
	o, _ := NewOrthogonal(nil, rot)
	p, _ := NewPerspective(8, rot)
	for _, proj := range []Projector{o, p} {
		s3, err := ProjectNURBS(h, proj)
		if err != nil {
			t.Fatalf("%s: %v", proj.Name(), err)
		}
		for _, u := range linspace(0, 4, 7) {
			for _, v := range linspace(0, 4, 7) {
				p4, _ := h.Point(u, v)
				want, ok := proj.Project(p4)
				if !ok {
					t.Fatalf("%s: sample not projectable", proj.Name())
				}
				got, err := s3.Evaluate(u, v)
				if err != nil {
					t.Fatal(err)
				}
				assertSlice(t, proj.Name(), got, want.Slice(), 1e-10)
			}
		}
	}
	st, _ := NewStereographic(2, rot)
	if _, err := ProjectNURBS(h, st); err == nil {
		t.Fatal("stereographic NURBS projection accepted")
	}
}
