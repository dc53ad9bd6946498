package viviani4d

import (
	"errors"
	"fmt"
)

// NURBSSurface is a tensor-product rational B-spline surface in any dimension.
type NURBSSurface struct {
	Ctrl    [][][]Real // nu x nv x dim
	Weights [][]Real   // nu x nv
	KnotsU  KnotVector
	KnotsV  KnotVector
	DegreeU int
	DegreeV int
}

// NewNURBSSurface validates the control net and knot vectors.
func NewNURBSSurface(ctrl [][][]Real, weights [][]Real, ku, kv KnotVector, pu, pv int) (*NURBSSurface, error) {
	if len(ctrl) != len(weights) {
		return nil, fmt.Errorf("number of control rows (%d) must match number of weight rows (%d)", len(ctrl), len(weights))
	}
	if len(ctrl) == 0 || len(ctrl[0]) == 0 {
		return nil, errors.New("surface needs a non-empty control net")
	}
	nv := len(ctrl[0])
	dim := len(ctrl[0][0])
	if dim == 0 {
		return nil, errors.New("control points must have at least one coordinate")
	}
	positive := false
	for i := range ctrl {
		if len(ctrl[i]) != nv || len(weights[i]) != nv {
			return nil, fmt.Errorf("row %d has %d points and %d weights, expected %d", i, len(ctrl[i]), len(weights[i]), nv)
		}
		for j, p := range ctrl[i] {
			if len(p) != dim {
				return nil, fmt.Errorf("control point (%d,%d) has dimension %d, expected %d", i, j, len(p), dim)
			}
			for _, x := range p {
				if !isFinite(x) {
					return nil, fmt.Errorf("control point (%d,%d) is not finite: %v", i, j, p)
				}
			}
			w := weights[i][j]
			if !isFinite(w) || w < 0 {
				return nil, fmt.Errorf("weight (%d,%d) must be finite and >= 0, got %v", i, j, w)
			}
			if w > 0 {
				positive = true
			}
		}
	}
	if !positive {
		return nil, errors.New("at least one weight must be positive")
	}
	if err := ValidateKnots(ku, pu, len(ctrl)); err != nil {
		return nil, fmt.Errorf("u direction: %w", err)
	}
	if err := ValidateKnots(kv, pv, nv); err != nil {
		return nil, fmt.Errorf("v direction: %w", err)
	}
	s := &NURBSSurface{
		Ctrl:    make([][][]Real, len(ctrl)),
		Weights: make([][]Real, len(ctrl)),
		KnotsU:  append(KnotVector(nil), ku...),
		KnotsV:  append(KnotVector(nil), kv...),
		DegreeU: pu,
		DegreeV: pv,
	}
	for i := range ctrl {
		s.Ctrl[i] = copyPoints(ctrl[i])
		s.Weights[i] = append([]Real(nil), weights[i]...)
	}
	DebugLog("Created NURBS surface: degrees=(%d,%d), net=%dx%dx%d", pu, pv, len(ctrl), nv, dim)
	return s, nil
}

// ControlNetShape returns (nu, nv, dim).
func (s *NURBSSurface) ControlNetShape() (nu, nv, dim int) {
	return len(s.Ctrl), len(s.Ctrl[0]), len(s.Ctrl[0][0])
}

// Domain returns the parameter rectangle.
func (s *NURBSSurface) Domain() (u0, u1, v0, v1 Real) {
	u0, u1 = s.KnotsU.Domain(s.DegreeU)
	v0, v1 = s.KnotsV.Domain(s.DegreeV)
	return
}

func (s *NURBSSurface) checkParams(u, v Real) error {
	u0, u1, v0, v1 := s.Domain()
	if !isFinite(u) || u < u0 || u > u1 {
		return fmt.Errorf("parameter u=%v outside domain [%v, %v]", u, u0, u1)
	}
	if !isFinite(v) || v < v0 || v > v1 {
		return fmt.Errorf("parameter v=%v outside domain [%v, %v]", v, v0, v1)
	}
	return nil
}

// homogeneous returns A, A_u, A_v and w, w_u, w_v at (u, v).
func (s *NURBSSurface) homogeneous(u, v Real, nd int) (A, Au, Av []Real, w, wu, wv Real) {
	nu, nv, dim := s.ControlNetShape()
	pu, pv := s.DegreeU, s.DegreeV
	su := FindSpan(nu-1, pu, u, s.KnotsU)
	sv := FindSpan(nv-1, pv, v, s.KnotsV)
	Nu := DersBasisFuns(su, u, pu, nd, s.KnotsU)
	Nv := DersBasisFuns(sv, v, pv, nd, s.KnotsV)
	A = make([]Real, dim)
	if nd > 0 {
		Au = make([]Real, dim)
		Av = make([]Real, dim)
	}
	for a := 0; a <= pu; a++ {
		i := su - pu + a
		for b := 0; b <= pv; b++ {
			j := sv - pv + b
			wij := s.Weights[i][j]
			if wij == 0 {
				continue
			}
			P := s.Ctrl[i][j]
			f := Nu[0][a] * Nv[0][b] * wij
			w += f
			for d := 0; d < dim; d++ {
				A[d] += f * P[d]
			}
			if nd > 0 {
				fu := Nu[1][a] * Nv[0][b] * wij
				fv := Nu[0][a] * Nv[1][b] * wij
				wu += fu
				wv += fv
				for d := 0; d < dim; d++ {
					Au[d] += fu * P[d]
					Av[d] += fv * P[d]
				}
			}
		}
	}
	return
}

// Evaluate returns S(u, v).
func (s *NURBSSurface) Evaluate(u, v Real) ([]Real, error) {
	if err := s.checkParams(u, v); err != nil {
		return nil, err
	}
	A, _, _, w, _, _ := s.homogeneous(u, v, 0)
	if w == 0 {
		return nil, errors.New("denominator is zero in NURBS evaluation")
	}
	for d := range A {
		A[d] /= w
	}
	return A, nil
}

// Partials returns S(u, v) together with the first partial derivatives S_u and S_v.
func (s *NURBSSurface) Partials(u, v Real) (S, Su, Sv []Real, err error) {
	if err = s.checkParams(u, v); err != nil {
		return
	}
	A, Au, Av, w, wu, wv := s.homogeneous(u, v, 1)
	if w == 0 {
		err = errors.New("denominator is zero in NURBS evaluation")
		return
	}
	dim := len(A)
	S = make([]Real, dim)
	Su = make([]Real, dim)
	Sv = make([]Real, dim)
	for d := 0; d < dim; d++ {
		S[d] = A[d] / w
		Su[d] = (Au[d] - wu*S[d]) / w
		Sv[d] = (Av[d] - wv*S[d]) / w
	}
	return
}

// TensorProduct builds the surface with P_ij = combine(a.P_i, b.P_j) and w_ij = a.w_i * b.w_j.
func TensorProduct(a, b *NURBSCurve, combine func(pa, pb []Real) []Real) (*NURBSSurface, error) {
	ctrl := make([][][]Real, len(a.Ctrl))
	weights := make([][]Real, len(a.Ctrl))
	for i := range a.Ctrl {
		ctrl[i] = make([][]Real, len(b.Ctrl))
		weights[i] = make([]Real, len(b.Ctrl))
		for j := range b.Ctrl {
			ctrl[i][j] = combine(a.Ctrl[i], b.Ctrl[j])
			weights[i][j] = a.Weights[i] * b.Weights[j]
		}
	}
	return NewNURBSSurface(ctrl, weights, a.Knots, b.Knots, a.Degree, b.Degree)
}
