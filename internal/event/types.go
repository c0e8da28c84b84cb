// internal/event/types.go
package event

import (
	"go-tank-gunner/internal/component"
	"go-tank-gunner/pkg/geom"
)

const (
	ShellFired      EventType = "ShellFired"      // Выстрел произведён
	TargetDestroyed EventType = "TargetDestroyed" // Снаряд попал в цель
	GroundImpact    EventType = "GroundImpact"    // Снаряд разорвался о землю
	ShellExpired    EventType = "ShellExpired"    // Снаряд вышел за предел дальности/времени
)

// TargetImpact — данные события TargetDestroyed.
type TargetImpact struct {
	Target *component.Target
	Shell  *component.Projectile
	Point  geom.Vec3 // точка входа снаряда в бокс
}

// GroundHit — данные события GroundImpact.
type GroundHit struct {
	Shell *component.Projectile
	Point geom.Vec3 // точка пересечения с плоскостью земли
}

// Expiry — данные события ShellExpired.
type Expiry struct {
	Shell *component.Projectile
}
