// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-tank-gunner/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 16

// HUD — текстовая сводка в углу экрана: счёт, точность и ориентир по
// дальности до ближайшей цели.
type HUD struct {
	X, Y     int
	fontFace font.Face
}

func NewHUD(x, y int) *HUD {
	return &HUD{X: x, Y: y, fontFace: basicfont.Face7x13}
}

// Stats — значения, которые HUD печатает в этом кадре.
type Stats struct {
	MissionName string
	AmmoName    string
	Score       int
	ShotsFired  int
	Accuracy    float64
	Range       float64
	HasRange    bool
}

func (h *HUD) Draw(screen *ebiten.Image, s Stats) {
	lines := []string{
		s.MissionName,
		fmt.Sprintf("AMMO: %s", s.AmmoName),
		fmt.Sprintf("KILLS: %d / %d", s.Score, s.ShotsFired),
		fmt.Sprintf("ACC: %.0f%%", s.Accuracy*100),
	}
	if s.HasRange {
		lines = append(lines, fmt.Sprintf("TGT: %dm", int(s.Range)))
	} else {
		lines = append(lines, "TGT: ---")
	}

	for i, line := range lines {
		text.Draw(screen, line, h.fontFace, h.X, h.Y+i*hudLineHeight, config.ColHUDText)
	}
}
