// Package geom provides the 3D math primitives shared by the simulation
// and the sight: vectors, the gun view basis, and axis-aligned boxes.
// World convention: X = right, Y = up, Z = forward, all units in meters.
package geom

import "math"

// Vec3 is a 3D vector (meters or meters per second, depending on use).
type Vec3 struct{ X, Y, Z float64 }

// V3 creates a new vector from components.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies the vector by a scalar.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length of the vector.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns a unit vector in the same direction. The zero
// vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	n := v.Len()
	if n < 1e-12 {
		return v
	}
	return v.Scale(1 / n)
}
