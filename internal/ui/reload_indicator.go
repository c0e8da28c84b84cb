// internal/ui/reload_indicator.go
package ui

import (
	"math"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ReloadIndicator — кружок готовности орудия: зелёный, когда можно
// стрелять, красный с дугой прогресса во время перезарядки.
type ReloadIndicator struct {
	X, Y    float32
	Radius  float32
	fillImg *ebiten.Image
}

func NewReloadIndicator(x, y, radius float32) *ReloadIndicator {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(config.ColReady)
	return &ReloadIndicator{X: x, Y: y, Radius: radius, fillImg: fillImg}
}

// Draw отрисовывает индикатор по текущему состоянию орудия.
func (i *ReloadIndicator) Draw(screen *ebiten.Image, gun *component.Gun) {
	vector.DrawFilledCircle(screen, i.X, i.Y, i.Radius+3, config.ColGaugeBG, true)

	if gun.Ready {
		vector.DrawFilledCircle(screen, i.X, i.Y, i.Radius, config.ColReady, true)
		vector.StrokeCircle(screen, i.X, i.Y, i.Radius, 2, config.ColGaugeRing, true)
		return
	}

	vector.DrawFilledCircle(screen, i.X, i.Y, i.Radius, config.ColReloading, true)

	// Дуга прогресса: растёт по часовой от 12 часов
	progress := 1 - gun.ReloadTimer/config.ReloadTime
	if progress < 0 {
		progress = 0
	}
	path := vector.Path{}
	path.MoveTo(i.X, i.Y)
	const arcSteps = 32
	for j := 0; j <= arcSteps; j++ {
		a := -math.Pi/2 + 2*math.Pi*progress*float64(j)/arcSteps
		px := i.X + i.Radius*float32(math.Cos(a))
		py := i.Y + i.Radius*float32(math.Sin(a))
		path.LineTo(px, py)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for k := range vs {
		vs[k].ColorA = 0.85
	}
	screen.DrawTriangles(vs, is, i.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.StrokeCircle(screen, i.X, i.Y, i.Radius, 2, config.ColGaugeRing, true)
}
