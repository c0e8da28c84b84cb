// internal/system/dispersion.go
package system

import (
	"fmt"
	"math"

	"go-tank-gunner/internal/utils"
	"go-tank-gunner/pkg/geom"
)

// DispersionSampler возмущает направление выстрела внутри конуса
// точности. Источник случайности внедряется снаружи, чтобы тесты могли
// фиксировать сид.
type DispersionSampler struct {
	rng *utils.PRNGService
}

func NewDispersionSampler(rng *utils.PRNGService) *DispersionSampler {
	return &DispersionSampler{rng: rng}
}

// Sample возвращает единичное направление, отклонённое от aim на
// случайный угол в пределах конуса с полууглом theta. Угол отклонения —
// гауссова выборка с sigma = theta/3, жёстко обрезанная по theta;
// азимут внутри конуса равномерный, так что распределение изотропно и
// с нулевым средним. Ни одна выборка не превышает theta.
func (s *DispersionSampler) Sample(aim geom.Vec3, theta float64) (geom.Vec3, error) {
	if theta < 0 || theta > math.Pi/2 {
		return geom.Vec3{}, fmt.Errorf("dispersion: angle %g outside [0, pi/2]", theta)
	}
	if theta == 0 {
		return aim, nil // без возмущения направление не трогаем
	}
	aim = aim.Normalize()

	// Перпендикулярный базис вокруг направления прицеливания.
	worldUp := geom.V3(0, 1, 0)
	right := aim.Cross(worldUp)
	if right.Len() < 1e-9 {
		// Ствол смотрит почти вертикально — берём запасную ось
		right = aim.Cross(geom.V3(1, 0, 0))
	}
	right = right.Normalize()
	up := right.Cross(aim)

	dev := math.Abs(s.rng.GaussClamped(theta/3.0, theta))
	phi := s.rng.Float64() * 2 * math.Pi

	radial := right.Scale(math.Cos(phi)).Add(up.Scale(math.Sin(phi)))
	out := aim.Scale(math.Cos(dev)).Add(radial.Scale(math.Sin(dev)))
	return out.Normalize(), nil
}
