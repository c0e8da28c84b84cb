package interfaces

import (
	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/utils"
	"go-tank-gunner/pkg/geom"
)

// World — то, что миссия видит из игрового мира. Миссии владеют
// целями: создают, двигают и убирают их через этот интерфейс.
type World interface {
	Targets() []*component.Target
	AddTarget(t *component.Target)
	RemoveTarget(t *component.Target)
	GunEye() geom.Vec3
	Rng() *utils.PRNGService
}
