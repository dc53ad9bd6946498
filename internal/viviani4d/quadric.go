package viviani4d

import (
	"math/big"
)

// Quadric4 is the exact hypersurface pᵀAp + bᵀp + c = 0 in R^4, A symmetric.
type Quadric4 struct {
	Name string
	A    [4][4]*big.Rat
	B    [4]*big.Rat
	C    *big.Rat
}

func zeroQuadric(name string) Quadric4 {
	q := Quadric4{Name: name, C: rat(0)}
	for r := 0; r < 4; r++ {
		q.B[r] = rat(0)
		for s := 0; s < 4; s++ {
			q.A[r][s] = rat(0)
		}
	}
	return q
}

// Cylinder4 is Σ_{r in mask} (x_r − c_r)² = r2. The unmasked axes are free,
// so a mask with three axes is a 3-cylinder S² × R.
func Cylinder4(name string, mask [4]bool, center [4]*big.Rat, r2 *big.Rat) Quadric4 {
	q := zeroQuadric(name)
	cc := rat(0)
	for r := 0; r < 4; r++ {
		if !mask[r] {
			continue
		}
		c := center[r]
		if c == nil {
			c = rat(0)
		}
		q.A[r][r] = rat(1)
		q.B[r] = new(big.Rat).Mul(rat(-2), c)
		cc.Add(cc, new(big.Rat).Mul(c, c))
	}
	q.C = cc.Sub(cc, r2)
	return q
}

// Sphere4 is the 3-sphere |x − center|² = r2.
func Sphere4(name string, center [4]*big.Rat, r2 *big.Rat) Quadric4 {
	return Cylinder4(name, [4]bool{true, true, true, true}, center, r2)
}

// Residual evaluates the quadric at a floating point point.
func (q Quadric4) Residual(p Point4) Real {
	x := [4]Real{p.X, p.Y, p.Z, p.W}
	sum := 0.0
	for r := 0; r < 4; r++ {
		br, _ := q.B[r].Float64()
		sum += br * x[r]
		for s := 0; s < 4; s++ {
			if q.A[r][s].Sign() == 0 {
				continue
			}
			a, _ := q.A[r][s].Float64()
			sum += a * x[r] * x[s]
		}
	}
	c, _ := q.C.Float64()
	return sum + c
}

// Homogenize composes the quadric with homogeneous patch polynomials
// (X_1·W, X_2·W, X_3·W, X_4·W, W):  Σ A_rs X_r X_s + (Σ b_r X_r) W + c W².
// The patch lies on the quadric exactly when the result is the zero polynomial.
func (q Quadric4) Homogenize(hom []BiPoly) BiPoly {
	W := hom[4]
	out := W.Mul(W).Scale(q.C)
	lin := BiPoly{}
	for r := 0; r < 4; r++ {
		if q.B[r].Sign() != 0 {
			lin = lin.Add(hom[r].Scale(q.B[r]))
		}
		for s := 0; s < 4; s++ {
			if q.A[r][s].Sign() == 0 {
				continue
			}
			out = out.Add(hom[r].Mul(hom[s]).Scale(q.A[r][s]))
		}
	}
	if len(lin) > 0 {
		out = out.Add(lin.Mul(W))
	}
	return out
}
