package viviani4d

import "math/big"

// BiPoly is a polynomial in (u, v) over the rationals; c[i][j] multiplies u^i v^j.
type BiPoly [][]*big.Rat

func newBiPoly(du, dv int) BiPoly {
	b := make(BiPoly, du+1)
	for i := range b {
		b[i] = make([]*big.Rat, dv+1)
		for j := range b[i] {
			b[i][j] = rat(0)
		}
	}
	return b
}

func (b BiPoly) dims() (int, int) {
	if len(b) == 0 {
		return -1, -1
	}
	return len(b) - 1, len(b[0]) - 1
}

func (b BiPoly) coeff(i, j int) *big.Rat {
	if i < 0 || i >= len(b) || j < 0 || j >= len(b[i]) || b[i][j] == nil {
		return rat(0)
	}
	return b[i][j]
}

// Outer returns p(u) * q(v).
func Outer(p, q Poly) BiPoly {
	if len(p) == 0 || len(q) == 0 {
		return BiPoly{}
	}
	out := newBiPoly(len(p)-1, len(q)-1)
	for i := range p {
		for j := range q {
			out[i][j].Mul(p.coeff(i), q.coeff(j))
		}
	}
	return out
}

func (b BiPoly) combine(o BiPoly, sub bool) BiPoly {
	du1, dv1 := b.dims()
	du2, dv2 := o.dims()
	du, dv := imax(du1, du2), imax(dv1, dv2)
	if du < 0 {
		return BiPoly{}
	}
	out := newBiPoly(du, dv)
	for i := 0; i <= du; i++ {
		for j := 0; j <= dv; j++ {
			if sub {
				out[i][j].Sub(b.coeff(i, j), o.coeff(i, j))
			} else {
				out[i][j].Add(b.coeff(i, j), o.coeff(i, j))
			}
		}
	}
	return out
}

func (b BiPoly) Add(o BiPoly) BiPoly { return b.combine(o, false) }
func (b BiPoly) Sub(o BiPoly) BiPoly { return b.combine(o, true) }

func (b BiPoly) Mul(o BiPoly) BiPoly {
	du1, dv1 := b.dims()
	du2, dv2 := o.dims()
	if du1 < 0 || du2 < 0 {
		return BiPoly{}
	}
	out := newBiPoly(du1+du2, dv1+dv2)
	t := new(big.Rat)
	for i1 := 0; i1 <= du1; i1++ {
		for j1 := 0; j1 <= dv1; j1++ {
			c1 := b.coeff(i1, j1)
			if c1.Sign() == 0 {
				continue
			}
			for i2 := 0; i2 <= du2; i2++ {
				for j2 := 0; j2 <= dv2; j2++ {
					t.Mul(c1, o.coeff(i2, j2))
					out[i1+i2][j1+j2].Add(out[i1+i2][j1+j2], t)
				}
			}
		}
	}
	return out
}

func (b BiPoly) Scale(s *big.Rat) BiPoly {
	out := make(BiPoly, len(b))
	for i := range b {
		out[i] = make([]*big.Rat, len(b[i]))
		for j := range b[i] {
			out[i][j] = new(big.Rat).Mul(b.coeff(i, j), s)
		}
	}
	return out
}

func (b BiPoly) IsZero() bool {
	for i := range b {
		for j := range b[i] {
			if b.coeff(i, j).Sign() != 0 {
				return false
			}
		}
	}
	return true
}

// Eval evaluates b(u, v) exactly.
func (b BiPoly) Eval(u, v *big.Rat) *big.Rat {
	acc := rat(0)
	for i := len(b) - 1; i >= 0; i-- {
		row := make(Poly, len(b[i]))
		copy(row, b[i])
		acc.Mul(acc, u)
		acc.Add(acc, row.Eval(v))
	}
	return acc
}

// TensorBernsteinToPower converts a tensor Bernstein coefficient net c[i][j] into a BiPoly.
func TensorBernsteinToPower(c [][]*big.Rat) BiPoly {
	if len(c) == 0 || len(c[0]) == 0 {
		return BiPoly{}
	}
	nu, nv := len(c), len(c[0])
	// convert along v for every row
	rows := make([]Poly, nu)
	for i := range c {
		rows[i] = BernsteinToPower(c[i])
	}
	out := newBiPoly(nu-1, nv-1)
	col := make([]*big.Rat, nu)
	for j := 0; j < nv; j++ {
		for i := 0; i < nu; i++ {
			col[i] = rows[i].coeff(j)
		}
		p := BernsteinToPower(col)
		for i := 0; i < nu; i++ {
			out[i][j].Set(p.coeff(i))
		}
	}
	return out
}
