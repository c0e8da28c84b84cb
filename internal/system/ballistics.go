// internal/system/ballistics.go
package system

import (
	"fmt"

	"go-tank-gunner/pkg/geom"
)

// Ballistics — чистая функция перехода состояния снаряда: гравитация
// плюс квадратичное сопротивление воздуха. Никаких побочных эффектов и
// никакого знания об условиях завершения полёта — это забота вызывающего.
type Ballistics struct {
	Gravity float64 // м/с², положительное значение, действует вниз
	DragK   float64 // замедление = DragK * v²
}

// Step продвигает пару (позиция, скорость) на dt секунд.
// Интегрирование — полунеявный Эйлер: сначала скорость по текущему
// ускорению, затем позиция по уже новой скорости. Ускорение:
// a = g - DragK * |v| * v.
func (b Ballistics) Step(pos, vel geom.Vec3, dt float64) (geom.Vec3, geom.Vec3, error) {
	if dt <= 0 {
		return pos, vel, fmt.Errorf("ballistics: non-positive dt %g", dt)
	}

	speed := vel.Len()
	if speed > 0 && b.DragK > 0 {
		dragDecel := b.DragK * speed * speed
		vel = vel.Sub(vel.Normalize().Scale(dragDecel * dt))
	}
	vel.Y -= b.Gravity * dt

	pos = pos.Add(vel.Scale(dt))
	return pos, vel, nil
}
