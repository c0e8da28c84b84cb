// internal/ui/spotter_panel.go
package ui

import (
	"image/color"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	spotterLineHeight = 18
	spotterPadding    = 10
	spotterWidth      = 190
)

// SpotterPanel показывает доклад корректировщика под прицелом.
// В конце жизни подсказка плавно гаснет.
type SpotterPanel struct {
	X, Y     float32
	fontFace font.Face
}

func NewSpotterPanel(x, y float32) *SpotterPanel {
	return &SpotterPanel{X: x, Y: y, fontFace: basicfont.Face7x13}
}

func (p *SpotterPanel) Draw(screen *ebiten.Image, callout *component.SpotterCallout) {
	if callout == nil || len(callout.Lines) == 0 {
		return
	}

	alpha := 1.0
	if callout.Timer < config.SpotterFadeTime {
		alpha = callout.Timer / config.SpotterFadeTime
	}

	height := float32(len(callout.Lines)*spotterLineHeight + 2*spotterPadding)
	bg := color.RGBA{15, 15, 15, uint8(200 * alpha)}
	vector.DrawFilledRect(screen, p.X, p.Y, spotterWidth, height, bg, false)

	textCol := config.ColSpotter
	if callout.IsHit {
		textCol = config.ColReady
	}
	textCol.A = uint8(float64(textCol.A) * alpha)

	for i, line := range callout.Lines {
		y := int(p.Y) + spotterPadding + (i+1)*spotterLineHeight - 4
		text.Draw(screen, line, p.fontFace, int(p.X)+spotterPadding, y, textCol)
	}
}
