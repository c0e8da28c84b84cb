// internal/system/effects.go
package system

import (
	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/pkg/geom"
)

// EffectsSystem ведёт таймеры визуальных отметок: разрывов в мире и
// подсказок корректировщика на экране.
type EffectsSystem struct {
	explosions []*component.Explosion
	callouts   []*component.SpotterCallout
}

func NewEffectsSystem() *EffectsSystem {
	return &EffectsSystem{}
}

// SpawnExplosion добавляет отметку разрыва в точке pos.
func (s *EffectsSystem) SpawnExplosion(pos geom.Vec3, isHit bool) {
	s.explosions = append(s.explosions, &component.Explosion{
		Pos:     pos,
		IsHit:   isHit,
		Timer:   config.ExplosionDuration,
		MaxTime: config.ExplosionDuration,
	})
}

// AddCallout добавляет подсказку корректировщика. nil игнорируется.
func (s *EffectsSystem) AddCallout(c *component.SpotterCallout) {
	if c != nil {
		s.callouts = append(s.callouts, c)
	}
}

// Update списывает время жизни эффектов и убирает истёкшие.
func (s *EffectsSystem) Update(dt float64) {
	liveExp := s.explosions[:0]
	for _, e := range s.explosions {
		e.Timer -= dt
		if e.Timer > 0 {
			liveExp = append(liveExp, e)
		}
	}
	s.explosions = liveExp

	liveCall := s.callouts[:0]
	for _, c := range s.callouts {
		c.Timer -= dt
		if c.Timer > 0 {
			liveCall = append(liveCall, c)
		}
	}
	s.callouts = liveCall
}

// Explosions возвращает живые отметки разрывов.
func (s *EffectsSystem) Explosions() []*component.Explosion {
	return s.explosions
}

// LatestCallout возвращает самую свежую подсказку или nil.
func (s *EffectsSystem) LatestCallout() *component.SpotterCallout {
	if len(s.callouts) == 0 {
		return nil
	}
	return s.callouts[len(s.callouts)-1]
}
