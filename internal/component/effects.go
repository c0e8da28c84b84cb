// internal/component/effects.go
package component

import "go-tank-gunner/pkg/geom"

// Explosion — визуальная отметка разрыва (пыль у земли или попадание).
type Explosion struct {
	Pos     geom.Vec3
	IsHit   bool
	Timer   float64
	MaxTime float64
}

// SpotterCallout — подсказка корректировщика после разрыва.
type SpotterCallout struct {
	Lines   []string
	IsHit   bool
	Timer   float64
	MaxTime float64
}
