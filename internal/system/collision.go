// internal/system/collision.go
package system

import (
	"go-tank-gunner/internal/component"
	"go-tank-gunner/pkg/geom"
)

// TargetHit — результат проверки отрезка пути снаряда по целям.
type TargetHit struct {
	Target *component.Target
	Point  geom.Vec3
	T      float64 // параметр входа вдоль отрезка, [0,1]
}

// FirstTargetHit проверяет отрезок p0->p1 по всем пригодным целям и
// возвращает ближайшее по пути попадание (минимальный параметр входа).
// Мертвые и не выставленные цели пропускаются. Попадание поглощает
// остаток шага: за первую цель снаряд не пролетает.
func FirstTargetHit(p0, p1 geom.Vec3, targets []*component.Target) (TargetHit, bool) {
	best := TargetHit{T: 2} // за пределами [0,1]
	found := false
	for _, tgt := range targets {
		if !tgt.Eligible() {
			continue
		}
		t, ok := tgt.AABB().SegmentIntersect(p0, p1)
		if !ok {
			continue
		}
		if !found || t < best.T {
			best = TargetHit{
				Target: tgt,
				Point:  p0.Add(p1.Sub(p0).Scale(t)),
				T:      t,
			}
			found = true
		}
	}
	return best, found
}

// GroundHit проверяет, пересёк ли снаряд плоскость земли (Y=0) между
// шагами, и возвращает точку пересечения.
func GroundHit(prev, curr geom.Vec3) (geom.Vec3, bool) {
	if curr.Y > 0 || prev.Y <= 0 {
		return geom.Vec3{}, false
	}
	t := prev.Y / (prev.Y - curr.Y)
	hit := prev.Add(curr.Sub(prev).Scale(t))
	hit.Y = 0
	return hit, true
}
