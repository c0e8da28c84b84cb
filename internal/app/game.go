// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/defs"
	"go-tank-gunner/internal/event"
	"go-tank-gunner/internal/mission"
	"go-tank-gunner/internal/sight"
	"go-tank-gunner/internal/system"
	"go-tank-gunner/internal/utils"
	"go-tank-gunner/pkg/geom"
)

// Game holds the main game state and logic: орудие, цели, снаряды,
// эффекты и текущая миссия. Всё обновляется синхронно одним вызовом
// Update в кадр; никакой фоновой работы.
type Game struct {
	Gun              *component.Gun
	GunSystem        *system.GunSystem
	ProjectileSystem *system.ProjectileSystem
	EffectsSystem    *system.EffectsSystem
	SpotterSystem    *system.SpotterSystem
	Sampler          *system.DispersionSampler
	EventDispatcher  *event.Dispatcher
	Projector        *sight.Projector
	Mission          mission.Mission
	rng              *utils.PRNGService

	AmmoID     string
	Score      int
	ShotsFired int

	targets []*component.Target
}

// NewGame initializes a new game instance for the given mission.
// Сид 0 означает недетерминированный рандом.
func NewGame(missionID string, seed int64) (*Game, error) {
	mdef, ok := defs.MissionLibrary[missionID]
	if !ok {
		return nil, fmt.Errorf("mission definition not found for ID: %s", missionID)
	}
	if _, ok := defs.AmmoLibrary[mdef.AmmoID]; !ok {
		return nil, fmt.Errorf("ammo definition not found for ID: %s", mdef.AmmoID)
	}

	projector, err := sight.NewProjector(sight.Config{
		FOVRadius:     config.SightFOVRad,
		PixelRadius:   config.SightRadius,
		Magnification: config.Magnification,
		NearClip:      config.NearClip,
	})
	if err != nil {
		return nil, err
	}

	m, err := mission.New(mdef)
	if err != nil {
		return nil, err
	}

	gun := &component.Gun{
		Eye:       geom.V3(0, config.PlayerEyeHeight, 0),
		Elevation: config.InitialElevationDeg * math.Pi / 180,
		Traverse:  config.InitialTraverseDeg * math.Pi / 180,
		Ready:     true,
	}

	rng := utils.NewPRNGService(seed)
	dispatcher := event.NewDispatcher()
	g := &Game{
		Gun:              gun,
		GunSystem:        system.NewGunSystem(gun),
		ProjectileSystem: system.NewProjectileSystem(dispatcher),
		EffectsSystem:    system.NewEffectsSystem(),
		SpotterSystem:    system.NewSpotterSystem(gun.Eye),
		Sampler:          system.NewDispersionSampler(rng),
		EventDispatcher:  dispatcher,
		Projector:        projector,
		Mission:          m,
		rng:              rng,
		AmmoID:           mdef.AmmoID,
	}

	listener := &gameEventListener{game: g}
	dispatcher.Subscribe(event.TargetDestroyed, listener)
	dispatcher.Subscribe(event.GroundImpact, listener)

	return g, nil
}

// Update advances the whole world by dt seconds.
func (g *Game) Update(dt float64, input system.GunInput) {
	if dt <= 0 {
		return
	}
	g.GunSystem.Update(dt, input)
	g.Mission.Update(dt, g)
	// Ошибка невозможна: dt проверен выше
	_ = g.ProjectileSystem.Update(dt, g.targets)
	g.EffectsSystem.Update(dt)
}

// Fire производит выстрел, если орудие заряжено. Возвращает true, если
// снаряд вылетел.
func (g *Game) Fire() bool {
	if !g.Gun.Ready {
		return false
	}
	ammo := defs.AmmoLibrary[g.AmmoID]

	basis := g.Gun.Basis()
	dir, err := g.Sampler.Sample(basis.Forward, ammo.DispersionRad)
	if err != nil {
		return false
	}

	g.GunSystem.StartReload()
	// Снаряд стартует чуть впереди глаза, чтобы не задеть самого себя
	start := g.Gun.Eye.Add(basis.Forward.Scale(config.MuzzleOffset))
	g.ProjectileSystem.Launch(start, dir.Scale(ammo.MuzzleVelocity), g.AmmoID)
	g.ShotsFired++
	return true
}

// Accuracy возвращает долю попаданий, 0 при отсутствии выстрелов.
func (g *Game) Accuracy() float64 {
	if g.ShotsFired == 0 {
		return 0
	}
	return float64(g.Score) / float64(g.ShotsFired)
}

// NearestTargetRange — дальность до ближайшей живой цели по земле,
// false если живых целей нет. Используется HUD для грубой оценки.
func (g *Game) NearestTargetRange() (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, t := range g.targets {
		if !t.Eligible() {
			continue
		}
		d := t.Center.Sub(g.Gun.Eye)
		d.Y = 0
		if r := d.Len(); r < best {
			best = r
			found = true
		}
	}
	return best, found
}

// --- interfaces.World ---

// Targets возвращает все цели, включая подбитые (их убирает миссия).
func (g *Game) Targets() []*component.Target {
	return g.targets
}

// AddTarget выставляет цель на поле.
func (g *Game) AddTarget(t *component.Target) {
	g.targets = append(g.targets, t)
}

// RemoveTarget убирает цель с поля.
func (g *Game) RemoveTarget(t *component.Target) {
	for i, existing := range g.targets {
		if existing == t {
			g.targets = append(g.targets[:i], g.targets[i+1:]...)
			return
		}
	}
}

// GunEye возвращает позицию наводчика.
func (g *Game) GunEye() geom.Vec3 {
	return g.Gun.Eye
}

// Rng возвращает общий генератор случайности: миссии и рассеивание
// делят один сид, чтобы прогон с фиксированным сидом был воспроизводим.
func (g *Game) Rng() *utils.PRNGService {
	return g.rng
}

// gameEventListener переводит события снарядов в счёт, эффекты и
// подсказки корректировщика.
type gameEventListener struct {
	game *Game
}

func (l *gameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.TargetDestroyed:
		data, ok := e.Data.(event.TargetImpact)
		if !ok {
			return
		}
		g.Score++
		g.EffectsSystem.SpawnExplosion(data.Point, true)
		g.EffectsSystem.AddCallout(g.SpotterSystem.HitCallout())
	case event.GroundImpact:
		data, ok := e.Data.(event.GroundHit)
		if !ok {
			return
		}
		g.EffectsSystem.SpawnExplosion(data.Point, false)
		g.EffectsSystem.AddCallout(g.SpotterSystem.MissCallout(data.Point, g.targets))
	}
}
