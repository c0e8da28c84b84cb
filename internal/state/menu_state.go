// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"
	"sort"

	"go-tank-gunner/internal/audio"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"
)

// MenuState — выбор миссии перед стрельбами.
type MenuState struct {
	sm       *StateMachine
	sound    *audio.Manager
	missions []defs.MissionDefinition
	selected int
}

func NewMenuState(sm *StateMachine, sound *audio.Manager) *MenuState {
	var missions []defs.MissionDefinition
	for _, m := range defs.MissionLibrary {
		missions = append(missions, m)
	}
	// Порядок обхода map случаен, меню должно быть стабильным
	sort.Slice(missions, func(i, j int) bool { return missions[i].ID < missions[j].ID })
	return &MenuState{sm: sm, sound: sound, missions: missions}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if len(m.missions) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		m.selected = (m.selected + len(m.missions) - 1) % len(m.missions)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		m.selected = (m.selected + 1) % len(m.missions)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		gs, err := NewGameState(m.sm, m.missions[m.selected].ID, 0, m.sound)
		if err != nil {
			log.Printf("Error starting mission: %v", err)
			return
		}
		m.sm.SetState(gs)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColBlack)
	face := basicfont.Face7x13

	cx := config.ScreenWidth / 2
	text.Draw(screen, config.WindowTitle, face, cx-40, 180, config.ColHUDText)
	text.Draw(screen, "W/S - select, SPACE - start", face, cx-90, 210, config.ColGaugeMark)

	for i, mission := range m.missions {
		y := 280 + i*34
		col := config.ColHUDText
		if i == m.selected {
			col = config.ColGaugeNeedle
			vector.StrokeRect(screen, float32(cx-160), float32(y-20), 320, 28, 1, config.ColGaugeRing, false)
		}
		label := fmt.Sprintf("%s  (%s)", mission.Name, mission.Kind)
		text.Draw(screen, label, face, cx-150, y, col)
	}
}

func (m *MenuState) Exit() {}
