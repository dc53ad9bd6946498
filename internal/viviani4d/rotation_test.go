package viviani4d

import (
	"math"
	"testing"
)

func TestRotFromAngles_IsOrthonormal(t *testing.T) {
	R := rotFromAngles(Rot4{
		XY: math.Pi / 6,
		XZ: math.Pi / 7,
		XW: math.Pi / 5,
		YZ: math.Pi / 8,
		YW: math.Pi / 9,
		ZW: math.Pi / 10,
	})

	RT := R.Transpose()
	// Check R^T R ~ I
	P := RT.Mul(R)
	I := I4()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			diff := math.Abs(P.M[r][c] - I.M[r][c])
			if diff > 1e-12 {
				t.Fatalf("R^T R != I at (%d,%d): %.3g", r, c, diff)
			}
		}
	}
}

func TestAxisRotations(t *testing.T) {
	// 90° in each plane moves the first axis onto the second
	cases := []struct {
		rot      Mat4
		from, to Vector4
	}{
		{rotXY(math.Pi / 2), Vector4{1, 0, 0, 0}, Vector4{0, 1, 0, 0}},
		{rotXZ(math.Pi / 2), Vector4{1, 0, 0, 0}, Vector4{0, 0, 1, 0}},
		{rotXW(math.Pi / 2), Vector4{1, 0, 0, 0}, Vector4{0, 0, 0, 1}},
		{rotYZ(math.Pi / 2), Vector4{0, 1, 0, 0}, Vector4{0, 0, 1, 0}},
		{rotYW(math.Pi / 2), Vector4{0, 1, 0, 0}, Vector4{0, 0, 0, 1}},
		{rotZW(math.Pi / 2), Vector4{0, 0, 1, 0}, Vector4{0, 0, 0, 1}},
	}
	for i, c := range cases {
		o := c.rot.MulVec(c.from)
		if o.Sub(c.to).Len() > 1e-12 {
			t.Fatalf("case %d: %+v, want %+v", i, o, c.to)
		}
		if math.Abs(o.Len()-1) > 1e-12 {
			t.Fatalf("case %d broke length: %.12g", i, o.Len())
		}
	}
}

func TestWithPlane(t *testing.T) {
	r, ok := Rot4{XW: 1}.WithPlane("wx", 0.5)
	if !ok || r.XW != 1.5 {
		t.Fatalf("WithPlane(wx) = %+v, %v", r, ok)
	}
	if _, ok := (Rot4{}).WithPlane("uv", 1); ok {
		t.Fatal("unknown plane accepted")
	}
	for _, p := range Planes {
		r, ok := Rot4{}.WithPlane(p, 1)
		if !ok || r.IsZero() {
			t.Fatalf("plane %s not applied", p)
		}
	}
	if !(Rot4{}).IsZero() {
		t.Fatal("zero rotation not zero")
	}
	if RotFromAngles(Rot4{}) != I4() {
		t.Fatal("zero angles should give the identity")
	}
}
