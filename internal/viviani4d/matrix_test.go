package viviani4d

import (
	"math"
	"testing"
)

func TestI4MulVec(t *testing.T) {
	I := I4()
	v := Vector4{1, 2, 3, 4}
	o := I.MulVec(v)
	if o != v {
		t.Fatalf("I*v = %+v, want %+v", o, v)
	}
	p := I.MulPoint(Point4{-1, 0.5, 2, 7})
	if p != (Point4{-1, 0.5, 2, 7}) {
		t.Fatalf("I*p = %+v", p)
	}
}

func TestTransposeAndMul(t *testing.T) {
	A := Mat4{M: [4][4]Real{
		{1, 2, 0, 0},
		{0, 1, 3, 0},
		{0, 0, 1, 4},
		{5, 0, 0, 1},
	}}
	AT := A.Transpose()
	if AT.M[0][3] != 5 || AT.M[1][0] != 2 || AT.M[3][2] != 4 {
		t.Fatalf("transpose wrong: %+v", AT)
	}
	if AT.Transpose() != A {
		t.Fatal("double transpose changed the matrix")
	}
	if A.Mul(I4()) != A || I4().Mul(A) != A {
		t.Fatal("identity is not neutral")
	}
	// (AB)^T = B^T A^T
	B := rotXZ(0.3).Mul(rotYW(1.1))
	lhs := A.Mul(B).Transpose()
	rhs := B.Transpose().Mul(AT)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(lhs.M[r][c]-rhs.M[r][c]) > 1e-12 {
				t.Fatalf("(AB)^T != B^T A^T at (%d,%d)", r, c)
			}
		}
	}
}

func TestDropW(t *testing.T) {
	q := DropW().MulPoint(Point4{1, 2, 3, 4})
	if q != (Point3{1, 2, 3}) {
		t.Fatalf("DropW = %+v", q)
	}
}

func TestOrthonormalize(t *testing.T) {
	A := Mat34{M: [3][4]Real{
		{2, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 1, 1, 1},
	}}
	R, err := A.Orthonormalize()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var dot Real
			for k := 0; k < 4; k++ {
				dot += R.M[i][k] * R.M[j][k]
			}
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(dot-want) > 1e-12 {
				t.Fatalf("rows %d,%d: dot %.12g, want %g", i, j, dot, want)
			}
		}
	}
	if R.M[0] != [4]Real{1, 0, 0, 0} {
		t.Fatalf("first row should only be normalized: %v", R.M[0])
	}

	degenerate := Mat34{M: [3][4]Real{
		{1, 0, 0, 0},
		{2, 0, 0, 0},
		{0, 0, 1, 0},
	}}
	if _, err := degenerate.Orthonormalize(); err == nil {
		t.Fatal("rank-2 basis accepted")
	}
}
