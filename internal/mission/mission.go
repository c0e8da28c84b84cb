// internal/mission/mission.go

// Package mission содержит сценарии стрельб. Каждая миссия — отдельная
// реализация одного интерфейса: никакого общего поведения, кроме
// покадрового обновления над общими примитивами мира.
package mission

import (
	"fmt"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/defs"
	"go-tank-gunner/internal/interfaces"
	"go-tank-gunner/pkg/geom"
)

// Mission — покадровая способность сценария.
type Mission interface {
	ID() string
	Update(dt float64, w interfaces.World)
}

// New создаёт миссию по её определению.
func New(def defs.MissionDefinition) (Mission, error) {
	switch def.Kind {
	case defs.MissionRange:
		return newRangeMission(def), nil
	case defs.MissionPatrol:
		return newPatrolMission(def), nil
	default:
		return nil, fmt.Errorf("mission %q: unknown kind %q", def.ID, def.Kind)
	}
}

// spawnTarget создаёт цель типа def.TargetID, стоящую на земле в (x, z).
func spawnTarget(def defs.MissionDefinition, x, z float64) (*component.Target, error) {
	tdef, ok := defs.TargetLibrary[def.TargetID]
	if !ok {
		return nil, fmt.Errorf("mission %q: target definition %q not found", def.ID, def.TargetID)
	}
	half := geom.V3(tdef.Width/2, tdef.Height/2, tdef.Length/2)
	center := geom.V3(x, tdef.Height/2, z)
	return component.NewTarget(def.TargetID, center, half)
}
