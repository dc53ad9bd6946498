package viviani4d

import "math"

// Angles in radians for rotations in coordinate planes.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

func rotXY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][1] = c, -s
	M.M[1][0], M.M[1][1] = s, c
	return M
}
func rotXZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][2] = c, -s
	M.M[2][0], M.M[2][2] = s, c
	return M
}
func rotXW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[0][0], M.M[0][3] = c, -s
	M.M[3][0], M.M[3][3] = s, c
	return M
}
func rotYZ(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}
func rotYW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][3] = c, -s
	M.M[3][1], M.M[3][3] = s, c
	return M
}
func rotZW(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[2][2], M.M[2][3] = c, -s
	M.M[3][2], M.M[3][3] = s, c
	return M
}

// Compose rotation from angles.
func rotFromAngles(r Rot4) Mat4 {
	R := I4()
	R = rotZW(r.ZW).Mul(R)
	R = rotYW(r.YW).Mul(R)
	R = rotYZ(r.YZ).Mul(R)
	R = rotXW(r.XW).Mul(R)
	R = rotXZ(r.XZ).Mul(R)
	R = rotXY(r.XY).Mul(R)
	return R
}

// RotFromAngles is the exported form of rotFromAngles.
func RotFromAngles(r Rot4) Mat4 { return rotFromAngles(r) }

// IsZero reports whether no plane is rotated.
func (r Rot4) IsZero() bool {
	return r.XY == 0 && r.XZ == 0 && r.XW == 0 && r.YZ == 0 && r.YW == 0 && r.ZW == 0
}

// planeAngle returns a pointer to the angle of the named plane ("xy", "xw", ...).
func (r *Rot4) planeAngle(plane string) (*Real, bool) {
	switch plane {
	case "xy", "yx":
		return &r.XY, true
	case "xz", "zx":
		return &r.XZ, true
	case "xw", "wx":
		return &r.XW, true
	case "yz", "zy":
		return &r.YZ, true
	case "yw", "wy":
		return &r.YW, true
	case "zw", "wz":
		return &r.ZW, true
	}
	return nil, false
}

// Planes lists the six coordinate planes.
var Planes = []string{"xy", "xz", "xw", "yz", "yw", "zw"}

// WithPlane returns a copy of r with angle added to the named plane.
func (r Rot4) WithPlane(plane string, angle Real) (Rot4, bool) {
	p, ok := r.planeAngle(plane)
	if !ok {
		return r, false
	}
	*p += angle
	return r, true
}
