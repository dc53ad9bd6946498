package viviani4d

import (
	"math"
	"testing"
)

func vivianiGrid(t *testing.T, nu, nv int) (*Hypersurface4, *Grid) {
	t.Helper()
	h, err := NewViviani4D(2)
	h = mustBuild(t, h, err)
	g, err := SampleGrid(h.Surface, nu, nv)
	if err != nil {
		t.Fatal(err)
	}
	return h, g
}

func TestSampleGrid(t *testing.T) {
	h, g := vivianiGrid(t, 13, 7)
	if len(g.P4) != 13*7 || len(g.U) != 13 || len(g.V) != 7 {
		t.Fatalf("grid %d samples, %d u, %d v", len(g.P4), len(g.U), len(g.V))
	}
	if g.U[0] != 0 || g.U[12] != 4 || g.V[6] != 4 {
		t.Fatalf("parameters do not span the domain: %v %v", g.U, g.V)
	}
	for i := 0; i < g.Nu; i++ {
		for j := 0; j < g.Nv; j++ {
			want, _ := h.Point(g.U[i], g.V[j])
			if got := g.At(i, j); got.Sub(want).Len() > 1e-14 {
				t.Fatalf("sample (%d,%d) = %+v, want %+v", i, j, got, want)
			}
		}
	}
	if _, err := SampleGrid(h.Surface, 1, 5); err == nil {
		t.Fatal("single row accepted")
	}
}

func TestGridRotate(t *testing.T) {
	_, g := vivianiGrid(t, 5, 5)
	r := g.Rotate(RotFromAngles(Rot4{XY: 0.3, ZW: 0.9}))
	for i, p := range g.P4 {
		if math.Abs(p.Vec().Len()-r.P4[i].Vec().Len()) > 1e-12 {
			t.Fatalf("rotation changed the norm of sample %d", i)
		}
	}
}

func TestGridProject(t *testing.T) {
	_, g := vivianiGrid(t, 9, 9)
	o, _ := NewOrthogonal(nil, Rot4{})
	m := g.Project(o)
	if len(m.Quads) != 8*8 {
		t.Fatalf("%d quads, want 64", len(m.Quads))
	}
	if m.Min.X < -1e-12 || m.Max.X > 2+1e-12 || m.Max.Z > 1+1e-12 {
		t.Fatalf("bounds %+v %+v", m.Min, m.Max)
	}
	lo, hi := m.ValueRange()
	if lo != m.Min.Z || hi != m.Max.Z {
		t.Fatalf("value range [%v, %v], z range [%v, %v]", lo, hi, m.Min.Z, m.Max.Z)
	}

	// the stereographic pole at w = R drops the quads around it
	s, _ := NewStereographic(2, Rot4{})
	ms := g.Project(s)
	if len(ms.Quads) >= len(m.Quads) {
		t.Fatalf("stereographic mesh kept %d quads", len(ms.Quads))
	}
	invalid := 0
	for _, ok := range ms.Valid {
		if !ok {
			invalid++
		}
	}
	if invalid == 0 {
		t.Fatal("the pole sample should be invalid")
	}
}
