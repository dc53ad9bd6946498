package viviani4d

import (
	"errors"
	"fmt"
)

// Projector maps 4D points to 3D. ok is false where the map is undefined.
type Projector interface {
	Project(p Point4) (q Point3, ok bool)
	Name() string
}

// Orthogonal rotates in 4D and then projects onto the rows of Basis.
type Orthogonal struct {
	Basis Mat34
	Rot   Rot4
	rot   Mat4
}

// NewOrthogonal orthonormalizes basis (nil drops W) and caches the rotation.
func NewOrthogonal(basis *Mat34, rot Rot4) (*Orthogonal, error) {
	b := DropW()
	if basis != nil {
		var err error
		if b, err = basis.Orthonormalize(); err != nil {
			return nil, err
		}
	}
	return &Orthogonal{Basis: b, Rot: rot, rot: rotFromAngles(rot)}, nil
}

func (o *Orthogonal) Name() string { return "orthogonal" }

func (o *Orthogonal) Project(p Point4) (Point3, bool) {
	return o.Basis.MulPoint(o.rot.MulPoint(p)), true
}

// Perspective looks at the origin from (0, 0, 0, Eye) and divides by the distance along W.
type Perspective struct {
	Eye Real
	Rot Rot4
	rot Mat4
}

func NewPerspective(eye Real, rot Rot4) (*Perspective, error) {
	if !isFinite(eye) || eye <= 0 {
		return nil, fmt.Errorf("perspective eye distance must be > 0, got %v", eye)
	}
	return &Perspective{Eye: eye, Rot: rot, rot: rotFromAngles(rot)}, nil
}

func (o *Perspective) Name() string { return "perspective" }

func (o *Perspective) Project(p Point4) (Point3, bool) {
	q := o.rot.MulPoint(p)
	den := o.Eye - q.W
	if den <= epsDenom*o.Eye {
		return Point3{}, false
	}
	s := o.Eye / den
	return Point3{q.X * s, q.Y * s, q.Z * s}, true
}

// Stereographic projects the 3-sphere of the given radius from its north pole (0, 0, 0, R).
// Points off the sphere are projected along the same rays.
type Stereographic struct {
	Radius Real
	Rot    Rot4
	rot    Mat4
}

func NewStereographic(radius Real, rot Rot4) (*Stereographic, error) {
	if !isFinite(radius) || radius <= 0 {
		return nil, fmt.Errorf("stereographic radius must be > 0, got %v", radius)
	}
	return &Stereographic{Radius: radius, Rot: rot, rot: rotFromAngles(rot)}, nil
}

func (o *Stereographic) Name() string { return "stereographic" }

func (o *Stereographic) Project(p Point4) (Point3, bool) {
	q := o.rot.MulPoint(p)
	den := o.Radius - q.W
	if den <= epsDenom*o.Radius {
		return Point3{}, false
	}
	s := o.Radius / den
	return Point3{q.X * s, q.Y * s, q.Z * s}, true
}

// ProjectControlNet projects every control point of h, in the net's shape.
func ProjectControlNet(h *Hypersurface4, proj Projector) ([][]Point3, error) {
	net, err := h.ControlPoints()
	if err != nil {
		return nil, err
	}
	out := make([][]Point3, len(net))
	for i, row := range net {
		out[i] = make([]Point3, len(row))
		for j, p := range row {
			q, ok := proj.Project(p)
			if !ok {
				return nil, fmt.Errorf("control point (%d,%d) %+v has no %s projection", i, j, p, proj.Name())
			}
			out[i][j] = q
		}
	}
	return out, nil
}

// ProjectNURBS returns the projected surface as an exact 3D NURBS. Orthogonal maps
// keep the weights; the perspective map scales weight i by (Eye − W_i)/Eye.
// Stereographic projection is not projective and has no such form.
func ProjectNURBS(h *Hypersurface4, proj Projector) (*NURBSSurface, error) {
	if !h.Built() {
		return nil, errNotBuilt
	}
	s := h.Surface
	ctrl := make([][][]Real, len(s.Ctrl))
	weights := make([][]Real, len(s.Ctrl))
	for i := range s.Ctrl {
		ctrl[i] = make([][]Real, len(s.Ctrl[i]))
		weights[i] = make([]Real, len(s.Ctrl[i]))
		for j, c := range s.Ctrl[i] {
			p := point4Of(c)
			w := s.Weights[i][j]
			switch pr := proj.(type) {
			case *Orthogonal:
				q, _ := pr.Project(p)
				ctrl[i][j] = q.Slice()
				weights[i][j] = w
			case *Perspective:
				r := pr.rot.MulPoint(p)
				den := pr.Eye - r.W
				if den <= 0 {
					return nil, fmt.Errorf("control point (%d,%d) is behind the perspective eye", i, j)
				}
				f := pr.Eye / den
				ctrl[i][j] = []Real{r.X * f, r.Y * f, r.Z * f}
				weights[i][j] = w * den / pr.Eye
			default:
				return nil, errors.New(proj.Name() + " projection has no exact NURBS form")
			}
		}
	}
	return NewNURBSSurface(ctrl, weights, s.KnotsU, s.KnotsV, s.DegreeU, s.DegreeV)
}
