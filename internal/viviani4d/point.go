package viviani4d

// Point4 represents a point in 4-dimensional space.
type Point4 struct {
	X, Y, Z, W Real
}

// Add lets you translate a Point4 by a Vector4.
func (p Point4) Add(v Vector4) Point4 {
	return Point4{p.X + v.X, p.Y + v.Y, p.Z + v.Z, p.W + v.W}
}

// Sub returns the vector from q to p.
func (p Point4) Sub(q Point4) Vector4 {
	return Vector4{p.X - q.X, p.Y - q.Y, p.Z - q.Z, p.W - q.W}
}

func (p Point4) Vec() Vector4 { return Vector4{p.X, p.Y, p.Z, p.W} }

func (p Point4) Slice() []Real { return []Real{p.X, p.Y, p.Z, p.W} }

// point4Of packs the first four coordinates of c; missing ones are zero.
func point4Of(c []Real) Point4 {
	var a [4]Real
	copy(a[:], c)
	return Point4{a[0], a[1], a[2], a[3]}
}

// Point3 is a point of the projected (3D) space.
type Point3 struct {
	X, Y, Z Real
}

func (p Point3) Add(v Vector3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }
func (p Point3) Sub(q Point3) Vector3 { return Vector3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }
func (p Point3) Slice() []Real        { return []Real{p.X, p.Y, p.Z} }
