package viviani4d

import (
	"errors"
	"fmt"
)

// NURBSCurve is a rational B-spline curve in any dimension.
type NURBSCurve struct {
	Ctrl    [][]Real // (n+1) x dim
	Weights []Real   // n+1
	Knots   KnotVector
	Degree  int
}

// NewNURBSCurve validates the data and builds a curve.
func NewNURBSCurve(ctrl [][]Real, weights []Real, knots KnotVector, degree int) (*NURBSCurve, error) {
	if len(ctrl) != len(weights) {
		return nil, fmt.Errorf("number of control points (%d) must match number of weights (%d)", len(ctrl), len(weights))
	}
	if len(ctrl) == 0 {
		return nil, errors.New("curve needs at least one control point")
	}
	dim := len(ctrl[0])
	if dim == 0 {
		return nil, errors.New("control points must have at least one coordinate")
	}
	positive := false
	for i, p := range ctrl {
		if len(p) != dim {
			return nil, fmt.Errorf("control point %d has dimension %d, expected %d", i, len(p), dim)
		}
		for _, x := range p {
			if !isFinite(x) {
				return nil, fmt.Errorf("control point %d is not finite: %v", i, p)
			}
		}
		w := weights[i]
		if !isFinite(w) || w < 0 {
			return nil, fmt.Errorf("weight %d must be finite and >= 0, got %v", i, w)
		}
		if w > 0 {
			positive = true
		}
	}
	if !positive {
		return nil, errors.New("at least one weight must be positive")
	}
	if err := ValidateKnots(knots, degree, len(ctrl)); err != nil {
		return nil, err
	}
	c := &NURBSCurve{
		Ctrl:    copyPoints(ctrl),
		Weights: append([]Real(nil), weights...),
		Knots:   append(KnotVector(nil), knots...),
		Degree:  degree,
	}
	DebugLog("Created NURBS curve: degree=%d, ctrl=%d, dim=%d, knots=%d", degree, len(ctrl), dim, len(knots))
	return c, nil
}

func copyPoints(ctrl [][]Real) [][]Real {
	out := make([][]Real, len(ctrl))
	for i, p := range ctrl {
		out[i] = append([]Real(nil), p...)
	}
	return out
}

func (c *NURBSCurve) Dim() int { return len(c.Ctrl[0]) }

// Domain returns the parameter range of the curve.
func (c *NURBSCurve) Domain() (lo, hi Real) { return c.Knots.Domain(c.Degree) }

func (c *NURBSCurve) checkParam(u Real) error {
	lo, hi := c.Domain()
	if !isFinite(u) || u < lo || u > hi {
		return fmt.Errorf("parameter u=%v outside domain [%v, %v]", u, lo, hi)
	}
	return nil
}

// homogeneous returns the weighted sums A(u) = Σ N_i w_i P_i and w(u) = Σ N_i w_i
// together with their first derivatives when nd == 1.
func (c *NURBSCurve) homogeneous(u Real, nd int) (A, dA []Real, w, dw Real) {
	n := len(c.Ctrl) - 1
	p := c.Degree
	span := FindSpan(n, p, u, c.Knots)
	ders := DersBasisFuns(span, u, p, nd, c.Knots)
	dim := c.Dim()
	A = make([]Real, dim)
	if nd > 0 {
		dA = make([]Real, dim)
	}
	for j := 0; j <= p; j++ {
		i := span - p + j
		wi := c.Weights[i]
		b := ders[0][j] * wi
		w += b
		for d := 0; d < dim; d++ {
			A[d] += b * c.Ctrl[i][d]
		}
		if nd > 0 {
			db := ders[1][j] * wi
			dw += db
			for d := 0; d < dim; d++ {
				dA[d] += db * c.Ctrl[i][d]
			}
		}
	}
	return
}

// Evaluate returns the curve point at u.
func (c *NURBSCurve) Evaluate(u Real) ([]Real, error) {
	if err := c.checkParam(u); err != nil {
		return nil, err
	}
	A, _, w, _ := c.homogeneous(u, 0)
	if w == 0 {
		return nil, errors.New("denominator is zero in NURBS evaluation")
	}
	for d := range A {
		A[d] /= w
	}
	return A, nil
}

// EvaluateMany evaluates the curve at every parameter of us.
func (c *NURBSCurve) EvaluateMany(us []Real) ([][]Real, error) {
	out := make([][]Real, len(us))
	for i, u := range us {
		p, err := c.Evaluate(u)
		if err != nil {
			return nil, fmt.Errorf("u[%d]: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// Derivative returns dC/du at u.
func (c *NURBSCurve) Derivative(u Real) ([]Real, error) {
	if err := c.checkParam(u); err != nil {
		return nil, err
	}
	A, dA, w, dw := c.homogeneous(u, 1)
	if w == 0 {
		return nil, errors.New("denominator is zero in NURBS evaluation")
	}
	out := make([]Real, len(A))
	for d := range A {
		out[d] = (dA[d] - dw*A[d]/w) / w
	}
	return out, nil
}

// Sample evaluates n >= 2 points evenly spaced over the domain.
func (c *NURBSCurve) Sample(n int) ([][]Real, error) {
	if n < MinSampleCount {
		return nil, fmt.Errorf("need at least %d samples, got %d", MinSampleCount, n)
	}
	lo, hi := c.Domain()
	return c.EvaluateMany(linspace(lo, hi, n))
}

// InsertKnot inserts u once (Boehm). The curve shape is unchanged.
func (c *NURBSCurve) InsertKnot(u Real) (*NURBSCurve, error) {
	if err := c.checkParam(u); err != nil {
		return nil, err
	}
	p := c.Degree
	n := len(c.Ctrl) - 1
	U := c.Knots
	s := U.Multiplicity(u)
	if s >= p {
		return nil, fmt.Errorf("knot %v already has multiplicity %d, degree is %d", u, s, p)
	}
	if _, hi := U.Domain(p); u == hi {
		return nil, fmt.Errorf("cannot insert the domain end knot %v", u)
	}
	k := FindSpan(n, p, u, U)
	dim := c.Dim()

	hom := func(i int) []Real {
		h := make([]Real, dim+1)
		for d := 0; d < dim; d++ {
			h[d] = c.Ctrl[i][d] * c.Weights[i]
		}
		h[dim] = c.Weights[i]
		return h
	}

	Q := make([][]Real, n+2)
	for i := 0; i <= k-p; i++ {
		Q[i] = hom(i)
	}
	for i := k - s; i <= n; i++ {
		Q[i+1] = hom(i)
	}
	for i := k - p + 1; i <= k-s; i++ {
		alpha := (u - U[i]) / (U[i+p] - U[i])
		a, b := hom(i), hom(i-1)
		q := make([]Real, dim+1)
		for d := range q {
			q[d] = alpha*a[d] + (1-alpha)*b[d]
		}
		Q[i] = q
	}

	knots := make(KnotVector, 0, len(U)+1)
	knots = append(knots, U[:k+1]...)
	knots = append(knots, u)
	knots = append(knots, U[k+1:]...)

	ctrl := make([][]Real, n+2)
	weights := make([]Real, n+2)
	for i, q := range Q {
		w := q[dim]
		weights[i] = w
		pt := make([]Real, dim)
		if w != 0 {
			for d := 0; d < dim; d++ {
				pt[d] = q[d] / w
			}
		}
		ctrl[i] = pt
	}
	return NewNURBSCurve(ctrl, weights, knots, p)
}
