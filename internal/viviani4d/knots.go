package viviani4d

import (
	"fmt"
	"sort"
)

// KnotVector is a non-decreasing sequence of parameter values.
type KnotVector []Real

// ValidateKnots checks a knot vector against a degree and a control point count.
func ValidateKnots(knots KnotVector, degree, nCtrl int) error {
	if degree < 1 {
		return fmt.Errorf("degree must be >= 1, got %d", degree)
	}
	if nCtrl < degree+1 {
		return fmt.Errorf("need at least %d control points for degree %d, got %d", degree+1, degree, nCtrl)
	}
	if want := nCtrl + degree + 1; len(knots) != want {
		return fmt.Errorf("knot vector length %d, expected %d (control points + degree + 1)", len(knots), want)
	}
	for i, k := range knots {
		if !isFinite(k) {
			return fmt.Errorf("knot %d is not finite: %v", i, k)
		}
		if i > 0 && k < knots[i-1] {
			return fmt.Errorf("knot vector must be non-decreasing: knots[%d]=%v < knots[%d]=%v", i, k, i-1, knots[i-1])
		}
	}
	lo, hi := knots[degree], knots[nCtrl]
	if !(lo < hi) {
		return fmt.Errorf("degenerate knot domain [%v, %v]", lo, hi)
	}
	return nil
}

// Domain returns the valid parameter range [knots[p], knots[n+1]].
func (k KnotVector) Domain(degree int) (lo, hi Real) {
	n := len(k) - degree - 2
	return k[degree], k[n+1]
}

// Clamp maps u into the domain.
func (k KnotVector) Clamp(degree int, u Real) Real {
	lo, hi := k.Domain(degree)
	return clamp(u, lo, hi)
}

// Multiplicity counts how many knots equal u exactly.
func (k KnotVector) Multiplicity(u Real) int {
	m := 0
	for _, x := range k {
		if x == u {
			m++
		}
	}
	return m
}

// UniqueKnots returns the distinct knot values in order.
func (k KnotVector) UniqueKnots() []Real {
	out := make([]Real, 0, len(k))
	for i, x := range k {
		if i == 0 || x != k[i-1] {
			out = append(out, x)
		}
	}
	return out
}

// FindSpan returns i with knots[i] <= u < knots[i+1] for n+1 control points.
// u == knots[n+1] maps to the last non-empty span.
func FindSpan(n, p int, u Real, knots KnotVector) int {
	if u >= knots[n+1] {
		// last non-empty span ending at knots[n+1]
		i := n
		for i > p && knots[i] == knots[n+1] {
			i--
		}
		return i
	}
	if u <= knots[p] {
		i := p
		for i < n && knots[i+1] <= u {
			i++
		}
		return i
	}
	// knots[p..n+1] is sorted, search for the last index with knots[i] <= u
	i := sort.Search(n+2-p, func(j int) bool { return knots[p+j] > u }) + p - 1
	if i > n {
		i = n
	}
	return i
}

// ClampedUniformKnots builds an open uniform knot vector over [0, 1].
func ClampedUniformKnots(nCtrl, degree int) KnotVector {
	m := nCtrl + degree + 1
	k := make(KnotVector, m)
	inner := nCtrl - degree // number of spans
	for i := 0; i < m; i++ {
		switch {
		case i <= degree:
			k[i] = 0
		case i >= nCtrl:
			k[i] = 1
		default:
			k[i] = Real(i-degree) / Real(inner)
		}
	}
	return k
}

// BezierJoinKnots is the knot vector of segments rational Bézier pieces
// joined end to end: [0 x (p+1), 1 x p, ..., segments x (p+1)].
func BezierJoinKnots(segments, degree int) KnotVector {
	k := make(KnotVector, 0, (segments+1)*degree+2)
	for i := 0; i <= degree; i++ {
		k = append(k, 0)
	}
	for s := 1; s < segments; s++ {
		for i := 0; i < degree; i++ {
			k = append(k, Real(s))
		}
	}
	for i := 0; i <= degree; i++ {
		k = append(k, Real(segments))
	}
	return k
}
