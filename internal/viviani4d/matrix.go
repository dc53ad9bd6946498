package viviani4d

import (
	"errors"
	"math"
)

// 4×4 matrix (row-major)
type Mat4 struct {
	M [4][4]Real
}

func I4() Mat4 {
	return Mat4{M: [4][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A.M[r][k] * B.M[k][c]
			}
			R.M[r][c] = sum
		}
	}
	return R
}

func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R.M[r][c] = A.M[c][r]
		}
	}
	return R
}

// Mat34 is a 3×4 projection basis (row-major); each row is a 4D axis of the target space.
type Mat34 struct {
	M [3][4]Real
}

// DropW is the standard basis that forgets the W coordinate.
func DropW() Mat34 {
	return Mat34{M: [3][4]Real{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}}
}

func (A Mat34) MulPoint(p Point4) Point3 {
	return Point3{
		A.M[0][0]*p.X + A.M[0][1]*p.Y + A.M[0][2]*p.Z + A.M[0][3]*p.W,
		A.M[1][0]*p.X + A.M[1][1]*p.Y + A.M[1][2]*p.Z + A.M[1][3]*p.W,
		A.M[2][0]*p.X + A.M[2][1]*p.Y + A.M[2][2]*p.Z + A.M[2][3]*p.W,
	}
}

// Orthonormalize runs Gram-Schmidt over the rows.
// It fails when the rows span less than three dimensions.
func (A Mat34) Orthonormalize() (Mat34, error) {
	var R Mat34
	for r := 0; r < 3; r++ {
		v := Vector4{A.M[r][0], A.M[r][1], A.M[r][2], A.M[r][3]}
		for k := 0; k < r; k++ {
			u := Vector4{R.M[k][0], R.M[k][1], R.M[k][2], R.M[k][3]}
			v = v.Sub(u.Mul(v.Dot(u)))
		}
		l := v.Len()
		if l < 1e-12 || math.IsNaN(l) {
			return Mat34{}, errors.New("projection basis must have rank 3")
		}
		v = v.Mul(1 / l)
		R.M[r] = [4]Real{v.X, v.Y, v.Z, v.W}
	}
	return R, nil
}
