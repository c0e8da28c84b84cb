// internal/component/target.go
package component

import (
	"fmt"

	"go-tank-gunner/pkg/geom"
)

// Target представляет цель на поле: осевой бокс вокруг центра.
// Целями владеет миссия: она их создаёт, двигает и убирает. Ядро
// только читает геометрию и флаги, а при подтверждённом попадании
// сбрасывает Alive.
type Target struct {
	DefID     string
	Center    geom.Vec3 // метры; может меняться со временем (миссия двигает)
	Half      geom.Vec3 // полуразмеры бокса
	Alive     bool
	Spawned   bool // false — цель ещё/уже не выставлена, коллизии её не видят
	Destroyed bool
}

// NewTarget создаёт цель с проверкой полуразмеров.
func NewTarget(defID string, center, half geom.Vec3) (*Target, error) {
	if half.X <= 0 || half.Y <= 0 || half.Z <= 0 {
		return nil, fmt.Errorf("target %q: non-positive hitbox half-extents %+v", defID, half)
	}
	return &Target{
		DefID:   defID,
		Center:  center,
		Half:    half,
		Alive:   true,
		Spawned: true,
	}, nil
}

// AABB возвращает мировой бокс цели на текущий момент.
func (t *Target) AABB() geom.AABB {
	return geom.BoxAround(t.Center, t.Half)
}

// Eligible сообщает, участвует ли цель в проверке столкновений.
func (t *Target) Eligible() bool {
	return t.Alive && t.Spawned
}
