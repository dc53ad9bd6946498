package viviani4d

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

const (
	KindViviani  = "viviani"
	KindClifford = "clifford"
)

var errNotBuilt = errors.New("surface not built")

// Hypersurface4 is a rational surface in R^4 with its exact NURBS data and
// the quadrics it lies on.
type Hypersurface4 struct {
	Name   string
	Kind   string
	Radius Real // viviani: sphere radius R
	A      Real // viviani: cylinder radius R/2
	R1, R2 Real // clifford: circle radii

	Exact       *ExactSurface
	Surface     *NURBSSurface
	Constraints []Quadric4

	build func() error
}

// NewViviani4D prepares the 4D Viviani surface: the Viviani curve of the sphere of
// radius R revolved so that its y coordinate sweeps the (y, z) plane:
// S(u, v) = (x(u), y(u)·cos v, y(u)·sin v, z(u)).
// It lies on the 3-sphere X²+Y²+Z²+W² = R² and the 3-cylinder (X−a)²+Y²+Z² = a².
// A zero radius selects the default.
func NewViviani4D(radius Real) (*Hypersurface4, error) {
	if radius == 0 {
		radius = Radius
	}
	R, err := exactRadius(radius)
	if err != nil {
		return nil, err
	}
	h := &Hypersurface4{
		Name:   fmt.Sprintf("viviani(R=%g)", radius),
		Kind:   KindViviani,
		Radius: radius,
		A:      radius / 2,
	}
	h.build = func() error {
		viv, err := ExactViviani(R)
		if err != nil {
			return err
		}
		circ, err := ExactCircle()
		if err != nil {
			return err
		}
		h.Exact = ExactTensor(viv, circ, func(p, c []*big.Rat) []*big.Rat {
			return []*big.Rat{
				new(big.Rat).Set(p[0]),
				new(big.Rat).Mul(p[1], c[0]),
				new(big.Rat).Mul(p[1], c[1]),
				new(big.Rat).Set(p[2]),
			}
		})
		return nil
	}
	a := new(big.Rat).Quo(R, rat(2))
	h.Constraints = []Quadric4{
		Sphere4("3-sphere", [4]*big.Rat{}, new(big.Rat).Mul(R, R)),
		Cylinder4("3-cylinder", [4]bool{true, true, true, false}, [4]*big.Rat{a}, new(big.Rat).Mul(a, a)),
	}
	return h, nil
}

// NewCliffordTorus prepares the torus (r1 cos u, r1 sin u, r2 cos v, r2 sin v).
// It lies on the 3-sphere of radius² r1²+r2² and on both circular cylinders.
func NewCliffordTorus(r1, r2 Real) (*Hypersurface4, error) {
	R1, err := exactRadius(r1)
	if err != nil {
		return nil, fmt.Errorf("r1: %w", err)
	}
	R2, err := exactRadius(r2)
	if err != nil {
		return nil, fmt.Errorf("r2: %w", err)
	}
	h := &Hypersurface4{
		Name: fmt.Sprintf("clifford(r1=%g,r2=%g)", r1, r2),
		Kind: KindClifford,
		R1:   r1,
		R2:   r2,
	}
	h.build = func() error {
		circ, err := ExactCircle()
		if err != nil {
			return err
		}
		h.Exact = ExactTensor(circ, circ, func(p, q []*big.Rat) []*big.Rat {
			return []*big.Rat{
				new(big.Rat).Mul(R1, p[0]),
				new(big.Rat).Mul(R1, p[1]),
				new(big.Rat).Mul(R2, q[0]),
				new(big.Rat).Mul(R2, q[1]),
			}
		})
		return nil
	}
	s1 := new(big.Rat).Mul(R1, R1)
	s2 := new(big.Rat).Mul(R2, R2)
	h.Constraints = []Quadric4{
		Sphere4("3-sphere", [4]*big.Rat{}, new(big.Rat).Add(s1, s2)),
		Cylinder4("xy-cylinder", [4]bool{true, true, false, false}, [4]*big.Rat{}, s1),
		Cylinder4("zw-cylinder", [4]bool{false, false, true, true}, [4]*big.Rat{}, s2),
	}
	return h, nil
}

// NewHypersurface dispatches on kind; radius is used by viviani, r1 and r2 by clifford.
func NewHypersurface(kind string, radius, r1, r2 Real) (*Hypersurface4, error) {
	switch kind {
	case "", KindViviani:
		return NewViviani4D(radius)
	case KindClifford:
		return NewCliffordTorus(r1, r2)
	}
	return nil, fmt.Errorf("unknown surface kind %q", kind)
}

// Build constructs the exact NURBS representation and its float form.
func (h *Hypersurface4) Build() (*Hypersurface4, error) {
	if h.build == nil {
		return nil, errors.New("surface has no construction")
	}
	if err := h.build(); err != nil {
		return nil, fmt.Errorf("%s: %w", h.Name, err)
	}
	s, err := h.Exact.Float()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.Name, err)
	}
	h.Surface = s
	nu, nv, dim := s.ControlNetShape()
	DebugLog("Built %s: control net %dx%dx%d, knots u=%d v=%d", h.Name, nu, nv, dim, len(s.KnotsU), len(s.KnotsV))
	return h, nil
}

func (h *Hypersurface4) Built() bool { return h.Surface != nil }

// ControlPoints returns the 4D control net.
func (h *Hypersurface4) ControlPoints() ([][]Point4, error) {
	if !h.Built() {
		return nil, errNotBuilt
	}
	out := make([][]Point4, len(h.Surface.Ctrl))
	for i, row := range h.Surface.Ctrl {
		out[i] = make([]Point4, len(row))
		for j, p := range row {
			out[i][j] = point4Of(p)
		}
	}
	return out, nil
}

// WeightsGrid returns the control weights.
func (h *Hypersurface4) WeightsGrid() ([][]Real, error) {
	if !h.Built() {
		return nil, errNotBuilt
	}
	out := make([][]Real, len(h.Surface.Weights))
	for i, row := range h.Surface.Weights {
		out[i] = append([]Real(nil), row...)
	}
	return out, nil
}

// KnotVectors returns the u and v knot vectors.
func (h *Hypersurface4) KnotVectors() (KnotVector, KnotVector, error) {
	if !h.Built() {
		return nil, nil, errNotBuilt
	}
	return append(KnotVector(nil), h.Surface.KnotsU...), append(KnotVector(nil), h.Surface.KnotsV...), nil
}

// Point evaluates the surface at (u, v).
func (h *Hypersurface4) Point(u, v Real) (Point4, error) {
	if !h.Built() {
		return Point4{}, errNotBuilt
	}
	p, err := h.Surface.Evaluate(u, v)
	if err != nil {
		return Point4{}, err
	}
	return point4Of(p), nil
}

// SphereRadius is the radius of the 3-sphere the surface lies on.
func (h *Hypersurface4) SphereRadius() Real {
	if h.Kind == KindClifford {
		return math.Hypot(h.R1, h.R2)
	}
	return h.Radius
}
