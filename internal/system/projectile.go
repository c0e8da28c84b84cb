// internal/system/projectile.go
package system

import (
	"fmt"
	"log"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/defs"
	"go-tank-gunner/internal/event"
	"go-tank-gunner/pkg/geom"
)

// ProjectileSystem владеет снарядами в полёте: каждый кадр дробит dt на
// фиксированные подшаги, интегрирует траекторию и прогоняет свежий
// отрезок пути через детектор столкновений. О результатах сообщает
// событиями TargetDestroyed / GroundImpact / ShellExpired.
type ProjectileSystem struct {
	eventDispatcher *event.Dispatcher
	shells          []*component.Projectile
}

func NewProjectileSystem(eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		eventDispatcher: eventDispatcher,
	}
}

// Launch ставит новый снаряд на учёт. Одновременных снарядов может быть
// сколько угодно: перезарядка — забота орудия, а не этой системы.
func (s *ProjectileSystem) Launch(pos, vel geom.Vec3, ammoID string) *component.Projectile {
	shell := &component.Projectile{
		Pos:    pos,
		Vel:    vel,
		Origin: pos,
		AmmoID: ammoID,
		Trail:  []geom.Vec3{pos},
	}
	s.shells = append(s.shells, shell)
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShellFired, Data: shell})
	return shell
}

// Shells возвращает снаряды, находящиеся в полёте.
func (s *ProjectileSystem) Shells() []*component.Projectile {
	return s.shells
}

// InFlight сообщает, есть ли хотя бы один активный снаряд.
func (s *ProjectileSystem) InFlight() bool {
	return len(s.shells) > 0
}

// Update продвигает все снаряды на dt секунд и убирает отработавшие.
func (s *ProjectileSystem) Update(dt float64, targets []*component.Target) error {
	if dt <= 0 {
		return fmt.Errorf("projectile system: non-positive dt %g", dt)
	}

	for _, shell := range s.shells {
		if !shell.Spent {
			s.advance(shell, dt, targets)
		}
	}

	// Уплотняем список, отбрасывая снятые с учёта снаряды
	alive := s.shells[:0]
	for _, shell := range s.shells {
		if !shell.Spent {
			alive = append(alive, shell)
		}
	}
	s.shells = alive
	return nil
}

func (s *ProjectileSystem) advance(shell *component.Projectile, dt float64, targets []*component.Target) {
	ammo, ok := defs.AmmoLibrary[shell.AmmoID]
	if !ok {
		log.Printf("Error: Ammo definition not found for ID: %s", shell.AmmoID)
		shell.Spent = true
		return
	}
	ballistics := Ballistics{Gravity: config.Gravity, DragK: ammo.DragK}

	remaining := dt
	for remaining > 0 && !shell.Spent {
		stepDT := config.MaxStepDT
		if remaining < stepDT {
			stepDT = remaining
		}
		remaining -= stepDT

		prev := shell.Pos
		pos, vel, err := ballistics.Step(shell.Pos, shell.Vel, stepDT)
		if err != nil {
			log.Printf("Error advancing shell: %v", err)
			shell.Spent = true
			return
		}
		shell.Pos = pos
		shell.Vel = vel
		shell.Age += stepDT
		s.sampleTrail(shell, stepDT)

		// Сначала цели: попадание поглощает остаток шага
		if hit, ok := FirstTargetHit(prev, shell.Pos, targets); ok {
			hit.Target.Alive = false
			hit.Target.Destroyed = true
			shell.Spent = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.TargetDestroyed,
				Data: event.TargetImpact{Target: hit.Target, Shell: shell, Point: hit.Point},
			})
			return
		}

		if pt, ok := GroundHit(prev, shell.Pos); ok {
			shell.Spent = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.GroundImpact,
				Data: event.GroundHit{Shell: shell, Point: pt},
			})
			return
		}

		if shell.Age > ammo.MaxFlightTime || shell.Pos.Sub(shell.Origin).Len() > ammo.MaxRange {
			shell.Spent = true
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ShellExpired,
				Data: event.Expiry{Shell: shell},
			})
			return
		}
	}
}

// sampleTrail пишет след трассера с фиксированным интервалом.
func (s *ProjectileSystem) sampleTrail(shell *component.Projectile, stepDT float64) {
	shell.TrailTimer += stepDT
	if shell.TrailTimer < config.TracerSampleInterval {
		return
	}
	shell.TrailTimer = 0
	shell.Trail = append(shell.Trail, shell.Pos)
	if len(shell.Trail) > config.TracerTrailLength {
		shell.Trail = shell.Trail[1:]
	}
}
