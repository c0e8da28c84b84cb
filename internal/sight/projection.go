// internal/sight/projection.go

// Package sight отображает мировые точки в пиксельные смещения внутри
// круглого прицела. Через эту проекцию идёт и отрисовка, и любые
// запросы миссий «видна ли цель в прицеле», поэтому картинка и логика
// геометрически согласованы по построению.
package sight

import (
	"fmt"
	"math"

	"go-tank-gunner/pkg/geom"
)

// Config — статические параметры прицела.
type Config struct {
	FOVRadius     float64 // угловая полуширина прицела, радианы
	PixelRadius   float64 // радиус круга прицела в пикселях
	Magnification float64 // увеличение; сужает эффективное поле зрения
	NearClip      float64 // метры; ближе точка считается невидимой
}

// Offset — пиксельное смещение от центра прицела. Y растёт вниз
// (экранная конвенция).
type Offset struct {
	X, Y float64
}

// Projector переводит мировые позиции в смещения прицела для заданной
// ориентации орудия.
type Projector struct {
	cfg Config
}

// NewProjector валидирует конфигурацию и создаёт проектор.
func NewProjector(cfg Config) (*Projector, error) {
	if cfg.FOVRadius <= 0 {
		return nil, fmt.Errorf("sight: non-positive field of view %g", cfg.FOVRadius)
	}
	if cfg.PixelRadius <= 0 {
		return nil, fmt.Errorf("sight: non-positive pixel radius %g", cfg.PixelRadius)
	}
	if cfg.Magnification <= 0 {
		return nil, fmt.Errorf("sight: non-positive magnification %g", cfg.Magnification)
	}
	return &Projector{cfg: cfg}, nil
}

// EffectiveFOV — угловая полуширина с учётом увеличения.
func (p *Projector) EffectiveFOV() float64 {
	return p.cfg.FOVRadius / p.cfg.Magnification
}

// PixelsPerRadian — линейный масштаб проекции.
func (p *Projector) PixelsPerRadian() float64 {
	return p.cfg.PixelRadius / p.EffectiveFOV()
}

// Project отображает мировую точку в смещение от центра прицела.
// Точка позади орудия, ближе NearClip или за угловой границей круга
// невидима: ok == false, смещение не возвращается (без клампа).
func (p *Projector) Project(world, eye geom.Vec3, basis geom.Basis) (Offset, bool) {
	delta := world.Sub(eye)
	z := delta.Dot(basis.Forward)
	if z < p.cfg.NearClip {
		return Offset{}, false
	}
	x := delta.Dot(basis.Right)
	y := delta.Dot(basis.Up)

	// Угловые смещения от линии прицеливания по осям прицела
	ax := math.Atan2(x, z)
	ay := math.Atan2(y, z)

	if math.Hypot(ax, ay) > p.EffectiveFOV() {
		return Offset{}, false
	}

	scale := p.PixelsPerRadian()
	return Offset{X: ax * scale, Y: -ay * scale}, true
}

// ProjectRaw — то же отображение без проверки круговой границы, только
// с отсечением по ближней плоскости. Нужен отрисовке: углы граней цели
// могут лежать за кругом, а видимую часть обрезает маска прицела.
// Для запросов видимости использовать Project.
func (p *Projector) ProjectRaw(world, eye geom.Vec3, basis geom.Basis) (Offset, bool) {
	delta := world.Sub(eye)
	z := delta.Dot(basis.Forward)
	if z < p.cfg.NearClip {
		return Offset{}, false
	}
	scale := p.PixelsPerRadian()
	ax := math.Atan2(delta.Dot(basis.Right), z)
	ay := math.Atan2(delta.Dot(basis.Up), z)
	return Offset{X: ax * scale, Y: -ay * scale}, true
}

// InSight сообщает, попадает ли мировая точка в круг прицела.
func (p *Projector) InSight(world, eye geom.Vec3, basis geom.Basis) bool {
	_, ok := p.Project(world, eye, basis)
	return ok
}
