// internal/mission/range_mission.go
package mission

import (
	"log"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/defs"
	"go-tank-gunner/internal/interfaces"
)

// rangeMission — бесконечные стрельбы: неподвижные цели на случайной
// дальности; когда все уничтожены, поле чистится и выставляются новые.
type rangeMission struct {
	def defs.MissionDefinition
}

func newRangeMission(def defs.MissionDefinition) *rangeMission {
	return &rangeMission{def: def}
}

func (m *rangeMission) ID() string { return m.def.ID }

func (m *rangeMission) Update(dt float64, w interfaces.World) {
	anyAlive := false
	for _, t := range w.Targets() {
		if t.Alive {
			anyAlive = true
			break
		}
	}
	if anyAlive {
		return
	}

	// Все цели выбиты — убираем обломки и выставляем новые.
	// RemoveTarget двигает тот же срез, поэтому обходим снимок.
	wrecks := append([]*component.Target(nil), w.Targets()...)
	for _, t := range wrecks {
		w.RemoveTarget(t)
	}
	count := m.def.TargetCount
	if count <= 0 {
		count = 1
	}
	for i := 0; i < count; i++ {
		z := w.Rng().Range(m.def.SpawnRangeMin, m.def.SpawnRangeMax)
		x := w.Rng().Range(-m.def.LateralMax, m.def.LateralMax)
		t, err := spawnTarget(m.def, x, z)
		if err != nil {
			log.Printf("Error spawning target: %v", err)
			return
		}
		w.AddTarget(t)
	}
}
