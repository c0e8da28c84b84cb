// internal/state/game_state.go
package state

import (
	game "go-tank-gunner/internal/app"
	"go-tank-gunner/internal/audio"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/defs"
	"go-tank-gunner/internal/event"
	"go-tank-gunner/internal/system"
	"go-tank-gunner/internal/ui"
	"go-tank-gunner/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние стрельб: игровая логика, прицел и приборы.
type GameState struct {
	sm    *StateMachine
	game  *game.Game
	sound *audio.Manager

	renderer        *render.SightRenderer
	reloadIndicator *ui.ReloadIndicator
	azimuthGauge    *ui.AzimuthGauge
	elevationGauge  *ui.ElevationGauge
	spotterPanel    *ui.SpotterPanel
	hud             *ui.HUD

	wasReady bool
}

func NewGameState(sm *StateMachine, missionID string, seed int64, sound *audio.Manager) (*GameState, error) {
	gameLogic, err := game.NewGame(missionID, seed)
	if err != nil {
		return nil, err
	}

	gs := &GameState{
		sm:              sm,
		game:            gameLogic,
		sound:           sound,
		renderer:        render.NewSightRenderer(gameLogic.Projector, config.ScreenWidth, config.ScreenHeight),
		reloadIndicator: ui.NewReloadIndicator(config.ScreenWidth-70, 70, 22),
		azimuthGauge:    ui.NewAzimuthGauge(90, config.ScreenHeight-110, 55),
		elevationGauge:  ui.NewElevationGauge(200, config.ScreenHeight-170, 120),
		spotterPanel:    ui.NewSpotterPanel(config.ScreenWidth-230, config.ScreenHeight-170),
		hud:             ui.NewHUD(20, 30),
		wasReady:        true,
	}

	if sound != nil {
		gameLogic.EventDispatcher.Subscribe(event.TargetDestroyed, gs)
		gameLogic.EventDispatcher.Subscribe(event.GroundImpact, gs)
	}
	return gs, nil
}

func (g *GameState) Enter() {}

// OnEvent озвучивает разрывы по событиям мира.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.TargetDestroyed:
		if data, ok := e.Data.(event.TargetImpact); ok {
			g.sound.PlayExplosion(true, data.Point.Sub(g.game.GunEye()).Len())
		}
	case event.GroundImpact:
		if data, ok := e.Data.(event.GroundHit); ok {
			g.sound.PlayExplosion(false, data.Point.Sub(g.game.GunEye()).Len())
		}
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewMenuState(g.sm, g.sound))
		return
	}

	input := readGunInput()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.game.Fire() && g.sound != nil {
			g.sound.PlayShot()
		}
	}

	g.game.Update(deltaTime, input)

	if g.sound != nil {
		// Лязг затвора в момент, когда орудие снова готово
		if g.game.Gun.Ready && !g.wasReady {
			g.sound.PlayReload()
		}
		g.sound.SetTraverse(input.TraverseLeft || input.TraverseRight, input.FastTraverse)
		g.sound.Update(deltaTime)
	}
	g.wasReady = g.game.Gun.Ready
}

// readGunInput переводит клавиатуру в команды орудию. A ведёт ствол
// влево, что соответствует положительному углу поворота.
func readGunInput() system.GunInput {
	return system.GunInput{
		TraverseLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		TraverseRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		FastTraverse:  ebiten.IsKeyPressed(ebiten.KeyShift),
		ElevateUp:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		ElevateDown:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColBlack)

	g.renderer.Draw(screen, render.Scene{
		Eye:        g.game.Gun.Eye,
		Basis:      g.game.Gun.Basis(),
		Targets:    g.game.Targets(),
		Shells:     g.game.ProjectileSystem.Shells(),
		Explosions: g.game.EffectsSystem.Explosions(),
	})

	g.reloadIndicator.Draw(screen, g.game.Gun)
	g.azimuthGauge.Draw(screen, g.game.Gun)
	g.elevationGauge.Draw(screen, g.game.Gun)
	g.spotterPanel.Draw(screen, g.game.EffectsSystem.LatestCallout())

	stats := ui.Stats{
		Score:      g.game.Score,
		ShotsFired: g.game.ShotsFired,
		Accuracy:   g.game.Accuracy(),
	}
	if mdef, ok := defs.MissionLibrary[g.game.Mission.ID()]; ok {
		stats.MissionName = mdef.Name
	}
	if adef, ok := defs.AmmoLibrary[g.game.AmmoID]; ok {
		stats.AmmoName = adef.Name
	}
	stats.Range, stats.HasRange = g.game.NearestTargetRange()
	g.hud.Draw(screen, stats)
}

func (g *GameState) Exit() {
	if g.sound != nil {
		g.sound.SetTraverse(false, false)
		g.game.EventDispatcher.Unsubscribe(event.TargetDestroyed, g)
		g.game.EventDispatcher.Unsubscribe(event.GroundImpact, g)
	}
}
