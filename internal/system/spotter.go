// internal/system/spotter.go
package system

import (
	"fmt"
	"math"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/utils"
	"go-tank-gunner/pkg/geom"
)

// SpotterSystem формирует подсказки корректировщика по точке разрыва:
// поправки по дальности и направлению относительно ближайшей живой цели,
// округлённые до config.SpotterRoundTo метров.
type SpotterSystem struct {
	eye geom.Vec3
}

func NewSpotterSystem(eye geom.Vec3) *SpotterSystem {
	return &SpotterSystem{eye: eye}
}

// HitCallout — подсказка при попадании.
func (s *SpotterSystem) HitCallout() *component.SpotterCallout {
	return &component.SpotterCallout{
		Lines:   []string{"TARGET HIT!"},
		IsHit:   true,
		Timer:   config.SpotterDisplayTime,
		MaxTime: config.SpotterDisplayTime,
	}
}

// MissCallout строит поправку по промаху. Возвращает nil, если живых
// целей нет или цель слишком близко для осмысленной поправки.
func (s *SpotterSystem) MissCallout(impact geom.Vec3, targets []*component.Target) *component.SpotterCallout {
	target := s.nearestLive(targets)
	if target == nil {
		return nil
	}

	// Сравниваем на плоскости земли
	targetGround := target.Center
	targetGround.Y = 0
	impactGround := impact
	impactGround.Y = 0

	toTarget := targetGround.Sub(s.eye)
	toTarget.Y = 0
	targetRange := toTarget.Len()
	if targetRange < 1.0 {
		return nil
	}

	forward := toTarget.Scale(1 / targetRange)
	right := geom.V3(forward.Z, 0, -forward.X)

	delta := impactGround.Sub(targetGround)
	rangeErr := delta.Dot(forward) // + = перелёт
	lateralErr := delta.Dot(right) // + = вправо

	var lines []string
	lines = append(lines, rangeLine(rangeErr))
	lines = append(lines, lateralLine(lateralErr))

	return &component.SpotterCallout{
		Lines:   lines,
		Timer:   config.SpotterDisplayTime,
		MaxTime: config.SpotterDisplayTime,
	}
}

func (s *SpotterSystem) nearestLive(targets []*component.Target) *component.Target {
	var best *component.Target
	bestDist := math.Inf(1)
	for _, t := range targets {
		if !t.Eligible() {
			continue
		}
		d := t.Center.Sub(s.eye).Len()
		if d < bestDist {
			bestDist = d
			best = t
		}
	}
	return best
}

func rangeLine(rangeErr float64) string {
	abs := math.Abs(rangeErr)
	if abs < config.SpotterMinCorrection {
		return "RANGE: ON"
	}
	rounded := int(math.Max(config.SpotterRoundTo, utils.RoundTo(abs, config.SpotterRoundTo)))
	if rangeErr > 0 {
		return fmt.Sprintf("LONG %dm - DROP", rounded)
	}
	return fmt.Sprintf("SHORT %dm - ADD", rounded)
}

func lateralLine(lateralErr float64) string {
	abs := math.Abs(lateralErr)
	if abs < config.SpotterMinCorrection {
		return "LINE: ON"
	}
	rounded := int(math.Max(config.SpotterRoundTo, utils.RoundTo(abs, config.SpotterRoundTo)))
	if lateralErr > 0 {
		return fmt.Sprintf("RIGHT %dm", rounded)
	}
	return fmt.Sprintf("LEFT %dm", rounded)
}
