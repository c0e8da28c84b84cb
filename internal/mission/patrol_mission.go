// internal/mission/patrol_mission.go
package mission

import (
	"log"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/defs"
	"go-tank-gunner/internal/interfaces"
)

// patrolMission — цели идут поперёк сектора с постоянной скоростью.
// Уничтоженная или ушедшая за край цель возвращается после паузы с
// противоположного фланга. Позиции целей двигает сама миссия: ядро
// только читает их текущую геометрию.
type patrolMission struct {
	def     defs.MissionDefinition
	columns []*patrolColumn
}

// patrolColumn — одна движущаяся цель и её таймер возвращения.
type patrolColumn struct {
	target       *component.Target
	speedX       float64 // м/с вдоль X, знак задаёт направление
	respawnTimer float64
}

func newPatrolMission(def defs.MissionDefinition) *patrolMission {
	return &patrolMission{def: def}
}

func (m *patrolMission) ID() string { return m.def.ID }

func (m *patrolMission) Update(dt float64, w interfaces.World) {
	count := m.def.TargetCount
	if count <= 0 {
		count = 1
	}
	for len(m.columns) < count {
		m.columns = append(m.columns, &patrolColumn{})
	}

	for _, col := range m.columns {
		m.updateColumn(col, dt, w)
	}
}

func (m *patrolMission) updateColumn(col *patrolColumn, dt float64, w interfaces.World) {
	t := col.target
	if t != nil && t.Alive && !m.offField(t) {
		t.Center.X += col.speedX * dt
		return
	}

	// Цель выбита или ушла за край — убираем и ждём respawn_delay
	if t != nil {
		w.RemoveTarget(t)
		col.target = nil
		col.respawnTimer = m.def.RespawnDelay
	}
	col.respawnTimer -= dt
	if col.respawnTimer > 0 {
		return
	}

	// Заходим со случайного фланга на случайной дальности
	z := w.Rng().Range(m.def.SpawnRangeMin, m.def.SpawnRangeMax)
	x := m.def.LateralMax
	speed := -m.def.TargetSpeed
	if w.Rng().Float64() < 0.5 {
		x = -x
		speed = -speed
	}
	nt, err := spawnTarget(m.def, x, z)
	if err != nil {
		log.Printf("Error spawning patrol target: %v", err)
		return
	}
	w.AddTarget(nt)
	col.target = nt
	col.speedX = speed
}

func (m *patrolMission) offField(t *component.Target) bool {
	return t.Center.X > m.def.LateralMax+1 || t.Center.X < -m.def.LateralMax-1
}
