// internal/ui/gauges.go
package ui

import (
	"fmt"
	"math"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	azimuthTickEvery = 30.0 // градусов между большими рисками
	gaugeLabelGap    = 18
)

// AzimuthGauge — круглый указатель горизонтальной наводки: стрелка
// показывает текущий угол башни от нулевого направления.
type AzimuthGauge struct {
	X, Y     float32
	Radius   float32
	fontFace font.Face
}

func NewAzimuthGauge(x, y, radius float32) *AzimuthGauge {
	return &AzimuthGauge{X: x, Y: y, Radius: radius, fontFace: basicfont.Face7x13}
}

func (g *AzimuthGauge) Draw(screen *ebiten.Image, gun *component.Gun) {
	vector.DrawFilledCircle(screen, g.X, g.Y, g.Radius, config.ColGaugeBG, true)
	vector.StrokeCircle(screen, g.X, g.Y, g.Radius, 2, config.ColGaugeRing, true)

	// Риски каждые 30 градусов, нулевая — вверх
	for deg := 0.0; deg < 360; deg += azimuthTickEvery {
		a := deg*math.Pi/180 - math.Pi/2
		outer := g.Radius - 2
		inner := g.Radius - 8
		if deg == 0 {
			inner = g.Radius - 12
		}
		vector.StrokeLine(screen,
			g.X+inner*float32(math.Cos(a)), g.Y+inner*float32(math.Sin(a)),
			g.X+outer*float32(math.Cos(a)), g.Y+outer*float32(math.Sin(a)),
			1.5, config.ColGaugeMark, true)
	}

	// Стрелка: наводка влево (положительный угол) вращает её против
	// часовой, как башню при взгляде сверху
	needle := -gun.Traverse - math.Pi/2
	tip := g.Radius - 10
	vector.StrokeLine(screen, g.X, g.Y,
		g.X+tip*float32(math.Cos(needle)), g.Y+tip*float32(math.Sin(needle)),
		2, config.ColGaugeNeedle, true)
	vector.DrawFilledCircle(screen, g.X, g.Y, 3, config.ColGaugeNeedle, true)

	label := fmt.Sprintf("%+.1f", gun.Traverse*180/math.Pi)
	text.Draw(screen, label, g.fontFace, int(g.X)-14, int(g.Y+g.Radius)+gaugeLabelGap, config.ColHUDText)
}

// ElevationGauge — вертикальная шкала угла возвышения с бегунком.
type ElevationGauge struct {
	X, Y     float32 // верхний край шкалы
	Height   float32
	fontFace font.Face
}

func NewElevationGauge(x, y, height float32) *ElevationGauge {
	return &ElevationGauge{X: x, Y: y, Height: height, fontFace: basicfont.Face7x13}
}

func (g *ElevationGauge) Draw(screen *ebiten.Image, gun *component.Gun) {
	vector.DrawFilledRect(screen, g.X-4, g.Y, 8, g.Height, config.ColGaugeBG, false)
	vector.StrokeLine(screen, g.X, g.Y, g.X, g.Y+g.Height, 1.5, config.ColGaugeRing, true)

	// Риска нулевого возвышения
	zeroFrac := config.MaxElevationDeg / (config.MaxElevationDeg - config.MinElevationDeg)
	zeroY := g.Y + g.Height*float32(zeroFrac)
	vector.StrokeLine(screen, g.X-7, zeroY, g.X+7, zeroY, 1.5, config.ColGaugeMark, true)

	// Бегунок: верх шкалы — максимальное возвышение
	deg := gun.Elevation * 180 / math.Pi
	frac := (config.MaxElevationDeg - deg) / (config.MaxElevationDeg - config.MinElevationDeg)
	markY := g.Y + g.Height*float32(frac)
	vector.DrawFilledCircle(screen, g.X, markY, 4, config.ColGaugeNeedle, true)

	label := fmt.Sprintf("%+.1f", deg)
	text.Draw(screen, label, g.fontFace, int(g.X)-14, int(g.Y+g.Height)+gaugeLabelGap, config.ColHUDText)
}
