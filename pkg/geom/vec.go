// pkg/geom/vec.go
package geom

import "math"

// Vec3 is a right-handed 3D vector with Y pointing up.
type Vec3 struct {
	X, Y, Z float64
}

// Up is the world up axis.
var Up = Vec3{0, 1, 0}

// V is a shorthand constructor.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v multiplied by the scalar s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared length of v.
func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalized returns v scaled to unit length. The zero vector is
// returned unchanged.
func (v Vec3) Normalized() Vec3 {
	l := v.LengthSq()
	if l == 0 {
		return v
	}
	return v.Scale(1 / math.Sqrt(l))
}

// DistSq returns the squared distance between v and o.
func (v Vec3) DistSq(o Vec3) float64 {
	return v.Sub(o).LengthSq()
}

// Dist returns the distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return math.Sqrt(v.DistSq(o))
}

// Flat returns v projected onto the ground plane (Y = 0).
func (v Vec3) Flat() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// Lerp interpolates between a and b by t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}
