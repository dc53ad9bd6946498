package viviani4d

import (
	"image"
	"math"
)

// Camera is an orthographic 3D view given by azimuth and elevation (degrees),
// fitted into a pixel rectangle.
type Camera struct {
	AzimDeg, ElevDeg Real

	ex, ey, ez Vector3 // screen right, screen up, towards the viewer
	center     Point3
	scale      Real
	cx, cy     Real
}

// NewCamera fits the bounding box [min, max] into rect for any view direction.
func NewCamera(azimDeg, elevDeg Real, min, max Point3, rect image.Rectangle) *Camera {
	az := azimDeg * math.Pi / 180
	el := elevDeg * math.Pi / 180
	c := &Camera{
		AzimDeg: azimDeg,
		ElevDeg: elevDeg,
		ex:      Vector3{-math.Sin(az), math.Cos(az), 0},
		ey:      Vector3{-math.Sin(el) * math.Cos(az), -math.Sin(el) * math.Sin(az), math.Cos(el)},
		ez:      Vector3{math.Cos(el) * math.Cos(az), math.Cos(el) * math.Sin(az), math.Sin(el)},
		center:  Point3{(min.X + max.X) / 2, (min.Y + max.Y) / 2, (min.Z + max.Z) / 2},
		cx:      Real(rect.Min.X+rect.Max.X) / 2,
		cy:      Real(rect.Min.Y+rect.Max.Y) / 2,
	}
	diag := max.Sub(min).Len()
	if diag == 0 || !isFinite(diag) {
		diag = 1
	}
	side := math.Min(Real(rect.Dx()), Real(rect.Dy()))
	c.scale = 0.95 * side / diag
	return c
}

// ToScreen returns pixel coordinates (y down) and the depth towards the viewer.
func (c *Camera) ToScreen(p Point3) (x, y, depth Real) {
	d := p.Sub(c.center)
	return c.cx + d.Dot(c.ex)*c.scale, c.cy - d.Dot(c.ey)*c.scale, d.Dot(c.ez)
}

// ViewDir is the unit vector pointing from the scene to the viewer.
func (c *Camera) ViewDir() Vector3 { return c.ez }
