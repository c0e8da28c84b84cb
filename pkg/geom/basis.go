package geom

import "math"

// Basis holds the orthonormal forward/right/up frame of the gun for a
// given elevation and traverse. It is used both to launch shells and to
// project world points into the sight, so the two always agree.
type Basis struct {
	Forward Vec3
	Right   Vec3
	Up      Vec3
}

// ViewBasis builds the gun frame. Traverse is yaw from +Z (positive =
// left), elevation is pitch up from horizontal, both in radians.
func ViewBasis(elevation, traverse float64) Basis {
	ce := math.Cos(elevation)
	se := math.Sin(elevation)
	ct := math.Cos(traverse)
	st := math.Sin(traverse)

	forward := Vec3{X: st * ce, Y: se, Z: ct * ce}
	// Right = forward x worldUp, чтобы экранный X рос вправо
	worldUp := Vec3{Y: 1}
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward) // уже единичной длины
	return Basis{Forward: forward, Right: right, Up: up}
}
