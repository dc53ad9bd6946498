package viviani4d

import "math"

// Key is a viewer command, independent of the windowing library.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyTab   // next rotation plane
	KeyP     // next projection
	KeySpace // toggle auto-spin
)

// ProjectionKinds are the projections the viewer cycles through.
var ProjectionKinds = []string{"orthogonal", "perspective", "stereographic"}

const (
	orbitStep = math.Pi / 36 // 5 degrees per key press
	spinStep  = math.Pi / 180
	elevStep  = 5
)

// Orbit is the interactive viewer state.
type Orbit struct {
	Rot        Rot4
	Azim, Elev Real // camera, degrees
	Plane      int  // index into Planes
	Projection int  // index into ProjectionKinds
	Spin       bool
}

func NewOrbit() *Orbit {
	return &Orbit{Azim: AzimDeg, Elev: ElevDeg, Plane: 2, Spin: true}
}

// PlaneName is the active rotation plane.
func (o *Orbit) PlaneName() string { return Planes[o.Plane] }

// ProjectionName is the active projection kind.
func (o *Orbit) ProjectionName() string { return ProjectionKinds[o.Projection] }

func (o *Orbit) turn(a Real) {
	o.Rot, _ = o.Rot.WithPlane(o.PlaneName(), a)
	o.Rot = normalizeRot(o.Rot)
}

// Apply handles one key press and reports whether the view changed.
func (o *Orbit) Apply(k Key) bool {
	switch k {
	case KeyLeft:
		o.turn(-orbitStep)
	case KeyRight:
		o.turn(orbitStep)
	case KeyUp:
		o.Elev = clamp(o.Elev+elevStep, -90, 90)
	case KeyDown:
		o.Elev = clamp(o.Elev-elevStep, -90, 90)
	case KeyTab:
		o.Plane = (o.Plane + 1) % len(Planes)
	case KeyP:
		o.Projection = (o.Projection + 1) % len(ProjectionKinds)
	case KeySpace:
		o.Spin = !o.Spin
	default:
		return false
	}
	return true
}

// Tick advances auto-spin by one step and reports whether the view changed.
func (o *Orbit) Tick() bool {
	if !o.Spin {
		return false
	}
	o.turn(spinStep)
	return true
}

// Projector builds the active projector for h.
func (o *Orbit) Projector(h *Hypersurface4) (Projector, error) {
	f, err := ProjectionCfg{Kind: o.ProjectionName()}.Factory(h)
	if err != nil {
		return nil, err
	}
	return f(o.Rot)
}

// Options applies the camera angles to base.
func (o *Orbit) Options(base RenderOptions) RenderOptions {
	base.AzimDeg, base.ElevDeg = o.Azim, o.Elev
	return base
}

func wrapAngle(a Real) Real {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func normalizeRot(r Rot4) Rot4 {
	return Rot4{
		XY: wrapAngle(r.XY), XZ: wrapAngle(r.XZ), XW: wrapAngle(r.XW),
		YZ: wrapAngle(r.YZ), YW: wrapAngle(r.YW), ZW: wrapAngle(r.ZW),
	}
}
