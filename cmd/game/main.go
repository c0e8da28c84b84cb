// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-tank-gunner/internal/audio"
	"go-tank-gunner/internal/config"
	"go-tank-gunner/internal/defs"
	"go-tank-gunner/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	if err := defs.LoadAmmoDefinitions("assets/defs/ammo.json"); err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadTargetDefinitions("assets/defs/targets.json"); err != nil {
		log.Fatal(err)
	}
	if err := defs.LoadMissionDefinitions("assets/defs/missions.json"); err != nil {
		log.Fatal(err)
	}

	sound, err := audio.NewManager()
	if err != nil {
		log.Printf("Audio disabled: %v", err)
		sound = nil
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, sound))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
