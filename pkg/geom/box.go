package geom

import "math"

// AABB is an axis-aligned box given by its corner extremes.
type AABB struct {
	Min Vec3
	Max Vec3
}

// BoxAround builds an AABB centered at center with the given
// half-extents.
func BoxAround(center, half Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Contains reports whether the point lies inside the box (inclusive).
func (b AABB) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// SegmentIntersect tests the segment p0->p1 against the box using the
// slab method and returns the entry parameter t in [0,1]. Ось, по
// которой отрезок почти не движется, вырождается в проверку слоя по
// стартовой точке. Если старт уже внутри коробки, попадание в t = 0.
func (b AABB) SegmentIntersect(p0, p1 Vec3) (float64, bool) {
	d := p1.Sub(p0)
	tMin, tMax := 0.0, 1.0

	starts := [3]float64{p0.X, p0.Y, p0.Z}
	dirs := [3]float64{d.X, d.Y, d.Z}
	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dirs[i]) < 1e-12 {
			// Отрезок параллелен слою
			if starts[i] < mins[i] || starts[i] > maxs[i] {
				return 0, false
			}
			continue
		}
		invD := 1.0 / dirs[i]
		t1 := (mins[i] - starts[i]) * invD
		t2 := (maxs[i] - starts[i]) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
