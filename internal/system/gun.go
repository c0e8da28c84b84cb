// internal/system/gun.go
package system

import (
	"math"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/utils"
)

// GunInput — снимок органов управления орудием за кадр. Состояние
// клавиатуры переводит в него слой ввода, чтобы система не зависела от
// ebiten и тестировалась без окна.
type GunInput struct {
	TraverseLeft  bool
	TraverseRight bool
	FastTraverse  bool
	ElevateUp     bool
	ElevateDown   bool
}

// GunSystem обрабатывает поворот/возвышение орудия и перезарядку.
type GunSystem struct {
	gun *component.Gun
}

func NewGunSystem(gun *component.Gun) *GunSystem {
	return &GunSystem{gun: gun}
}

// Update продвигает состояние орудия на dt по текущему вводу.
func (s *GunSystem) Update(dt float64, input GunInput) {
	gun := s.gun

	// Быстрый поворот разгоняется плавно, пока зажат Shift
	traversing := input.TraverseLeft || input.TraverseRight
	if input.FastTraverse && traversing {
		gun.TraverseRamp = math.Min(gun.TraverseRamp+dt, config.TraverseRampTime)
	} else {
		gun.TraverseRamp = 0
	}

	t := 1.0
	if config.TraverseRampTime > 0 {
		t = gun.TraverseRamp / config.TraverseRampTime
	}
	traverseSpeed := utils.Lerp(config.TraverseSpeedDeg, config.TraverseSpeedFastDeg, t) * math.Pi / 180

	if input.TraverseLeft {
		gun.Traverse += traverseSpeed * dt
	}
	if input.TraverseRight {
		gun.Traverse -= traverseSpeed * dt
	}
	// Полный оборот башни заворачиваем, чтобы угол не накапливался
	gun.Traverse = utils.NormalizeAngle(gun.Traverse)

	elevationSpeed := config.ElevationSpeedDeg * math.Pi / 180
	if input.ElevateUp {
		gun.Elevation += elevationSpeed * dt
	}
	if input.ElevateDown {
		gun.Elevation -= elevationSpeed * dt
	}
	gun.Elevation = utils.Clamp(gun.Elevation,
		config.MinElevationDeg*math.Pi/180,
		config.MaxElevationDeg*math.Pi/180)

	if !gun.Ready {
		gun.ReloadTimer -= dt
		if gun.ReloadTimer <= 0 {
			gun.ReloadTimer = 0
			gun.Ready = true
		}
	}
}

// StartReload переводит орудие в перезарядку после выстрела.
func (s *GunSystem) StartReload() {
	s.gun.Ready = false
	s.gun.ReloadTimer = config.ReloadTime
}
