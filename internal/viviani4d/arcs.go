package viviani4d

import (
	"fmt"
	"math/big"
)

// quarter-turn cosines and sines, indexed by k mod 4
var (
	quarterCos = [4]int64{1, 0, -1, 0}
	quarterSin = [4]int64{0, 1, 0, -1}
)

// quadrantPolys returns C, S, D with cos θ = C/D and sin θ = S/D on quadrant k,
// θ ∈ [kπ/2, (k+1)π/2], using the half-angle substitution τ = tan(φ/2), τ ∈ [0, 1].
// Even quadrants run θ = kπ/2 + φ, odd ones θ = (k+1)π/2 − φ and must be reversed.
// That keeps the weight of every shared joint identical on both sides.
func quadrantPolys(k int) (C, S, D Poly, reversed bool) {
	c := NewPoly(1, 0, -1) // 1 - τ²
	s := NewPoly(0, 2)     // 2τ
	D = NewPoly(1, 0, 1)   // 1 + τ²
	if k%2 == 0 {
		m := k % 4
		cb, sb := rat(quarterCos[m]), rat(quarterSin[m])
		C = c.Scale(cb).Sub(s.Scale(sb))
		S = c.Scale(sb).Add(s.Scale(cb))
		return C, S, D, false
	}
	m := (k + 1) % 4
	cb, sb := rat(quarterCos[m]), rat(quarterSin[m])
	C = c.Scale(cb).Add(s.Scale(sb))
	S = c.Scale(sb).Sub(s.Scale(cb))
	return C, S, D, true
}

// buildQuadrants assembles four quadrant segments from a homogeneous map (C, S, D) -> polys.
func buildQuadrants(degree int, hom func(C, S, D Poly) []Poly) (*ExactCurve, error) {
	segs := make([]*BezierSegment, 4)
	for k := 0; k < 4; k++ {
		C, S, D, rev := quadrantPolys(k)
		seg, err := SegmentFromHomogeneous(hom(C, S, D), degree)
		if err != nil {
			return nil, fmt.Errorf("quadrant %d: %w", k, err)
		}
		if rev {
			seg.Reverse()
		}
		segs[k] = seg
	}
	return AssembleSegments(segs)
}

// ExactCircle is the unit circle as a degree-2 NURBS with 9 rational control points.
func ExactCircle() (*ExactCurve, error) {
	return buildQuadrants(2, func(C, S, D Poly) []Poly {
		return []Poly{C, S, D}
	})
}

// ExactViviani is the Viviani curve on the sphere x²+y²+z² = R² cut by the
// cylinder (x−a)²+y² = a², a = R/2, as a degree-4 NURBS with 17 control points.
// It follows x = R cos²θ, y = R sinθ cosθ, z = R sinθ for θ ∈ [0, 2π].
func ExactViviani(R *big.Rat) (*ExactCurve, error) {
	if R == nil || R.Sign() <= 0 {
		return nil, fmt.Errorf("radius must be > 0")
	}
	return buildQuadrants(4, func(C, S, D Poly) []Poly {
		return []Poly{
			C.Mul(C).Scale(R),
			S.Mul(C).Scale(R),
			S.Mul(D).Scale(R),
			D.Mul(D),
		}
	})
}

// exactRadius converts a float radius to an exact rational (the float value itself).
func exactRadius(r Real) (*big.Rat, error) {
	if !isFinite(r) || r <= 0 {
		return nil, fmt.Errorf("radius must be finite and > 0, got %v", r)
	}
	x := new(big.Rat).SetFloat64(r)
	if x == nil {
		return nil, fmt.Errorf("radius %v has no exact rational form", r)
	}
	return x, nil
}
