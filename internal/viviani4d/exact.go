package viviani4d

import (
	"errors"
	"fmt"
	"math/big"
)

// BezierSegment is one rational Bézier piece with exact Cartesian control points.
type BezierSegment struct {
	Ctrl    [][]*big.Rat
	Weights []*big.Rat
}

func (s *BezierSegment) Degree() int { return len(s.Ctrl) - 1 }

// SegmentFromHomogeneous converts homogeneous polynomials (X_1·W, ..., X_d·W, W) over
// t ∈ [0, 1] into a rational Bézier segment of the given degree. All weights must be positive.
func SegmentFromHomogeneous(hom []Poly, degree int) (*BezierSegment, error) {
	if len(hom) < 2 {
		return nil, errors.New("need at least one coordinate and a weight polynomial")
	}
	dim := len(hom) - 1
	W, err := PowerToBernstein(hom[dim], degree)
	if err != nil {
		return nil, fmt.Errorf("weight: %w", err)
	}
	for j, w := range W {
		if w.Sign() <= 0 {
			return nil, fmt.Errorf("weight %d is not positive: %s", j, w.RatString())
		}
	}
	seg := &BezierSegment{Ctrl: make([][]*big.Rat, degree+1), Weights: W}
	for j := range seg.Ctrl {
		seg.Ctrl[j] = make([]*big.Rat, dim)
	}
	for d := 0; d < dim; d++ {
		B, err := PowerToBernstein(hom[d], degree)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", d, err)
		}
		for j := range B {
			seg.Ctrl[j][d] = new(big.Rat).Quo(B[j], W[j])
		}
	}
	return seg, nil
}

// Reverse flips the parameter direction of the segment.
func (s *BezierSegment) Reverse() {
	for i, j := 0, len(s.Ctrl)-1; i < j; i, j = i+1, j-1 {
		s.Ctrl[i], s.Ctrl[j] = s.Ctrl[j], s.Ctrl[i]
		s.Weights[i], s.Weights[j] = s.Weights[j], s.Weights[i]
	}
}

// ExactCurve is a piecewise rational Bézier curve with rational data.
// Segments are joined with interior knots of multiplicity Degree.
type ExactCurve struct {
	Degree   int
	Segments int
	Ctrl     [][]*big.Rat
	Weights  []*big.Rat
}

func ratsEqual(a, b []*big.Rat) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}

// AssembleSegments joins segments end to end. Consecutive segments must share
// the joint control point and its weight.
func AssembleSegments(segs []*BezierSegment) (*ExactCurve, error) {
	if len(segs) == 0 {
		return nil, errors.New("no segments")
	}
	p := segs[0].Degree()
	if p < 1 {
		return nil, errors.New("segment degree must be >= 1")
	}
	c := &ExactCurve{Degree: p, Segments: len(segs)}
	for k, s := range segs {
		if s.Degree() != p {
			return nil, fmt.Errorf("segment %d has degree %d, expected %d", k, s.Degree(), p)
		}
		start := 0
		if k > 0 {
			last := len(c.Ctrl) - 1
			if !ratsEqual(c.Ctrl[last], s.Ctrl[0]) {
				return nil, fmt.Errorf("segment %d does not start where segment %d ends", k, k-1)
			}
			if c.Weights[last].Cmp(s.Weights[0]) != 0 {
				return nil, fmt.Errorf("segment %d starts with weight %s, segment %d ends with %s",
					k, s.Weights[0].RatString(), k-1, c.Weights[last].RatString())
			}
			start = 1
		}
		c.Ctrl = append(c.Ctrl, s.Ctrl[start:]...)
		c.Weights = append(c.Weights, s.Weights[start:]...)
	}
	return c, nil
}

func (c *ExactCurve) Dim() int { return len(c.Ctrl[0]) }

// Knots returns the (integer valued) knot vector of the assembled curve.
func (c *ExactCurve) Knots() KnotVector { return BezierJoinKnots(c.Segments, c.Degree) }

// Float converts the exact data to a floating point NURBS curve.
func (c *ExactCurve) Float() (*NURBSCurve, error) {
	ctrl := make([][]Real, len(c.Ctrl))
	w := make([]Real, len(c.Weights))
	for i, p := range c.Ctrl {
		ctrl[i] = ratsToFloats(p)
		w[i], _ = c.Weights[i].Float64()
	}
	return NewNURBSCurve(ctrl, w, c.Knots(), c.Degree)
}

func ratsToFloats(p []*big.Rat) []Real {
	out := make([]Real, len(p))
	for d, x := range p {
		out[d], _ = x.Float64()
	}
	return out
}

// segmentRange returns the control point indices of segment k.
func (c *ExactCurve) segmentRange(k int) (lo, hi int) {
	return k * c.Degree, k*c.Degree + c.Degree
}

// SegmentPolys reconstructs the homogeneous power-basis polynomials (X_1·W, ..., W)
// of segment k from its control data.
func (c *ExactCurve) SegmentPolys(k int) ([]Poly, error) {
	if k < 0 || k >= c.Segments {
		return nil, fmt.Errorf("segment %d out of range [0, %d)", k, c.Segments)
	}
	lo, hi := c.segmentRange(k)
	dim := c.Dim()
	out := make([]Poly, dim+1)
	b := make([]*big.Rat, hi-lo+1)
	for d := 0; d <= dim; d++ {
		for j := lo; j <= hi; j++ {
			if d == dim {
				b[j-lo] = c.Weights[j]
			} else {
				b[j-lo] = new(big.Rat).Mul(c.Ctrl[j][d], c.Weights[j])
			}
		}
		out[d] = BernsteinToPower(b)
	}
	return out, nil
}

// ExactSurface is a tensor product of two exact curves with combined control points.
type ExactSurface struct {
	DegreeU, DegreeV     int
	SegmentsU, SegmentsV int
	Ctrl                 [][][]*big.Rat
	Weights              [][]*big.Rat
}

// ExactTensor builds P_ij = combine(a.P_i, b.P_j), w_ij = a.w_i * b.w_j.
func ExactTensor(a, b *ExactCurve, combine func(pa, pb []*big.Rat) []*big.Rat) *ExactSurface {
	s := &ExactSurface{
		DegreeU: a.Degree, DegreeV: b.Degree,
		SegmentsU: a.Segments, SegmentsV: b.Segments,
		Ctrl:    make([][][]*big.Rat, len(a.Ctrl)),
		Weights: make([][]*big.Rat, len(a.Ctrl)),
	}
	for i := range a.Ctrl {
		s.Ctrl[i] = make([][]*big.Rat, len(b.Ctrl))
		s.Weights[i] = make([]*big.Rat, len(b.Ctrl))
		for j := range b.Ctrl {
			s.Ctrl[i][j] = combine(a.Ctrl[i], b.Ctrl[j])
			s.Weights[i][j] = new(big.Rat).Mul(a.Weights[i], b.Weights[j])
		}
	}
	return s
}

func (s *ExactSurface) Dim() int { return len(s.Ctrl[0][0]) }

// Float converts the exact net to a floating point NURBS surface.
func (s *ExactSurface) Float() (*NURBSSurface, error) {
	ctrl := make([][][]Real, len(s.Ctrl))
	w := make([][]Real, len(s.Ctrl))
	for i := range s.Ctrl {
		ctrl[i] = make([][]Real, len(s.Ctrl[i]))
		w[i] = make([]Real, len(s.Ctrl[i]))
		for j := range s.Ctrl[i] {
			ctrl[i][j] = ratsToFloats(s.Ctrl[i][j])
			w[i][j], _ = s.Weights[i][j].Float64()
		}
	}
	return NewNURBSSurface(ctrl, w,
		BezierJoinKnots(s.SegmentsU, s.DegreeU), BezierJoinKnots(s.SegmentsV, s.DegreeV),
		s.DegreeU, s.DegreeV)
}

// PatchPolys returns the homogeneous bivariate polynomials (X_1·W, ..., X_d·W, W)
// of Bézier patch (k, l), reconstructed from the tensor control net.
func (s *ExactSurface) PatchPolys(k, l int) ([]BiPoly, error) {
	if k < 0 || k >= s.SegmentsU || l < 0 || l >= s.SegmentsV {
		return nil, fmt.Errorf("patch (%d,%d) out of range %dx%d", k, l, s.SegmentsU, s.SegmentsV)
	}
	pu, pv := s.DegreeU, s.DegreeV
	dim := s.Dim()
	out := make([]BiPoly, dim+1)
	net := make([][]*big.Rat, pu+1)
	for a := range net {
		net[a] = make([]*big.Rat, pv+1)
	}
	for d := 0; d <= dim; d++ {
		for a := 0; a <= pu; a++ {
			for b := 0; b <= pv; b++ {
				i, j := k*pu+a, l*pv+b
				if d == dim {
					net[a][b] = s.Weights[i][j]
				} else {
					net[a][b] = new(big.Rat).Mul(s.Ctrl[i][j][d], s.Weights[i][j])
				}
			}
		}
		out[d] = TensorBernsteinToPower(net)
	}
	return out, nil
}
