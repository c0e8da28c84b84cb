package system

import (
	"math"
	"testing"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/internal/config"
)

func TestElevationClamped(t *testing.T) {
	gun := &component.Gun{Ready: true}
	gs := NewGunSystem(gun)

	for i := 0; i < 1000; i++ {
		gs.Update(0.1, GunInput{ElevateUp: true})
	}
	max := config.MaxElevationDeg * math.Pi / 180
	if math.Abs(gun.Elevation-max) > 1e-9 {
		t.Errorf("elevation = %f, want clamped at %f", gun.Elevation, max)
	}

	for i := 0; i < 1000; i++ {
		gs.Update(0.1, GunInput{ElevateDown: true})
	}
	min := config.MinElevationDeg * math.Pi / 180
	if math.Abs(gun.Elevation-min) > 1e-9 {
		t.Errorf("elevation = %f, want clamped at %f", gun.Elevation, min)
	}
}

func TestTraverseRampAccelerates(t *testing.T) {
	gun := &component.Gun{Ready: true}
	gs := NewGunSystem(gun)

	// Медленный поворот без Shift
	gs.Update(1.0, GunInput{TraverseLeft: true})
	slow := gun.Traverse
	wantSlow := config.TraverseSpeedDeg * math.Pi / 180
	if math.Abs(slow-wantSlow) > 1e-9 {
		t.Errorf("slow traverse = %f rad, want %f", slow, wantSlow)
	}

	// С Shift после разгона скорость должна дорасти до быстрой
	gun.Traverse = 0
	for i := 0; i < 100; i++ {
		gs.Update(0.05, GunInput{TraverseLeft: true, FastTraverse: true})
	}
	before := gun.Traverse
	gs.Update(1.0, GunInput{TraverseLeft: true, FastTraverse: true})
	fast := gun.Traverse - before
	wantFast := config.TraverseSpeedFastDeg * math.Pi / 180
	if math.Abs(fast-wantFast) > 1e-6 {
		t.Errorf("ramped traverse speed = %f rad/s, want %f", fast, wantFast)
	}

	// Отпустили Shift — разгон сбрасывается
	gs.Update(0.01, GunInput{TraverseLeft: true})
	if gun.TraverseRamp != 0 {
		t.Errorf("ramp = %f, want reset to 0 without shift", gun.TraverseRamp)
	}
}

func TestReloadGating(t *testing.T) {
	gun := &component.Gun{Ready: true}
	gs := NewGunSystem(gun)

	gs.StartReload()
	if gun.Ready {
		t.Fatal("gun must not be ready right after firing")
	}

	gs.Update(config.ReloadTime/2, GunInput{})
	if gun.Ready {
		t.Error("gun must still be reloading halfway through")
	}

	gs.Update(config.ReloadTime, GunInput{})
	if !gun.Ready {
		t.Error("gun must be ready after the reload time")
	}
	if gun.ReloadTimer != 0 {
		t.Errorf("reload timer = %f, want 0", gun.ReloadTimer)
	}
}
