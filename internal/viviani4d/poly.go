package viviani4d

import (
	"fmt"
	"math/big"
	"strings"
)

func rat(n int64) *big.Rat { return big.NewRat(n, 1) }

func ratFrac(a, b int64) *big.Rat { return big.NewRat(a, b) }

func binom(n, k int) *big.Rat {
	if k < 0 || k > n {
		return rat(0)
	}
	return new(big.Rat).SetInt(new(big.Int).Binomial(int64(n), int64(k)))
}

// Poly is a polynomial over the rationals in the power basis; p[i] multiplies t^i.
type Poly []*big.Rat

// NewPoly builds a polynomial from integer coefficients, lowest power first.
func NewPoly(coeffs ...int64) Poly {
	p := make(Poly, len(coeffs))
	for i, c := range coeffs {
		p[i] = rat(c)
	}
	return p
}

func (p Poly) coeff(i int) *big.Rat {
	if i < 0 || i >= len(p) || p[i] == nil {
		return rat(0)
	}
	return p[i]
}

// Degree returns the highest power with a non-zero coefficient, -1 for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != nil && p[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

func (p Poly) IsZero() bool { return p.Degree() < 0 }

func (p Poly) Add(q Poly) Poly {
	n := imax(len(p), len(q))
	out := make(Poly, n)
	for i := range out {
		out[i] = new(big.Rat).Add(p.coeff(i), q.coeff(i))
	}
	return out
}

func (p Poly) Sub(q Poly) Poly {
	n := imax(len(p), len(q))
	out := make(Poly, n)
	for i := range out {
		out[i] = new(big.Rat).Sub(p.coeff(i), q.coeff(i))
	}
	return out
}

func (p Poly) Mul(q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i := range out {
		out[i] = rat(0)
	}
	t := new(big.Rat)
	for i := range p {
		for j := range q {
			t.Mul(p.coeff(i), q.coeff(j))
			out[i+j].Add(out[i+j], t)
		}
	}
	return out
}

func (p Poly) Scale(s *big.Rat) Poly {
	out := make(Poly, len(p))
	for i := range p {
		out[i] = new(big.Rat).Mul(p.coeff(i), s)
	}
	return out
}

// Eval evaluates p(x) exactly (Horner).
func (p Poly) Eval(x *big.Rat) *big.Rat {
	acc := rat(0)
	for i := len(p) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.coeff(i))
	}
	return acc
}

// EvalFloat evaluates p(x) in floating point.
func (p Poly) EvalFloat(x Real) Real {
	acc := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		f, _ := p.coeff(i).Float64()
		acc = acc*x + f
	}
	return acc
}

// Elevate pads p with zero coefficients up to degree n.
func (p Poly) Elevate(n int) Poly {
	out := make(Poly, imax(n+1, len(p)))
	for i := range out {
		out[i] = new(big.Rat).Set(p.coeff(i))
	}
	return out
}

func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var parts []string
	for i := 0; i <= p.Degree(); i++ {
		c := p.coeff(i)
		if c.Sign() == 0 {
			continue
		}
		switch i {
		case 0:
			parts = append(parts, c.RatString())
		case 1:
			parts = append(parts, c.RatString()+"*t")
		default:
			parts = append(parts, fmt.Sprintf("%s*t^%d", c.RatString(), i))
		}
	}
	return strings.Join(parts, " + ")
}

// PowerToBernstein returns the degree-n Bernstein coefficients of p on [0, 1]:
// b_j = Σ_{i<=j} C(j,i)/C(n,i) a_i.
func PowerToBernstein(p Poly, n int) ([]*big.Rat, error) {
	if d := p.Degree(); d > n {
		return nil, fmt.Errorf("polynomial of degree %d does not fit Bernstein degree %d", d, n)
	}
	b := make([]*big.Rat, n+1)
	t := new(big.Rat)
	for j := 0; j <= n; j++ {
		acc := rat(0)
		for i := 0; i <= j; i++ {
			a := p.coeff(i)
			if a.Sign() == 0 {
				continue
			}
			t.Quo(binom(j, i), binom(n, i))
			t.Mul(t, a)
			acc.Add(acc, t)
		}
		b[j] = acc
	}
	return b, nil
}

// BernsteinToPower is the inverse of PowerToBernstein:
// a_i = Σ_{j<=i} (-1)^(i-j) C(n,i) C(i,j) b_j.
func BernsteinToPower(b []*big.Rat) Poly {
	n := len(b) - 1
	a := make(Poly, n+1)
	t := new(big.Rat)
	for i := 0; i <= n; i++ {
		acc := rat(0)
		for j := 0; j <= i; j++ {
			t.Mul(binom(n, i), binom(i, j))
			t.Mul(t, b[j])
			if (i-j)%2 == 1 {
				acc.Sub(acc, t)
			} else {
				acc.Add(acc, t)
			}
		}
		a[i] = acc
	}
	return a
}
