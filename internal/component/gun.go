// internal/component/gun.go
package component

import "go-tank-gunner/pkg/geom"

// Gun — состояние орудия наводчика. Мутируется GunSystem по вводу,
// ядро симуляции читает его как ориентацию камеры и точку вылета.
type Gun struct {
	Eye       geom.Vec3 // мировая позиция казённика/глаза
	Elevation float64   // радианы, вверх от горизонта
	Traverse  float64   // радианы, рысканье от +Z

	Ready        bool
	ReloadTimer  float64 // 0 = заряжено
	TraverseRamp float64 // таймер разгона быстрого поворота
}

// Basis возвращает текущий базис орудия (forward/right/up).
func (g *Gun) Basis() geom.Basis {
	return geom.ViewBasis(g.Elevation, g.Traverse)
}
