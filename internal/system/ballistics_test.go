package system

import (
	"math"
	"testing"

	"go-tank-gunner/pkg/geom"
)

func TestStepRejectsBadDT(t *testing.T) {
	b := Ballistics{Gravity: 9.81}
	if _, _, err := b.Step(geom.Vec3{}, geom.Vec3{}, 0); err == nil {
		t.Error("dt = 0 must be rejected")
	}
	if _, _, err := b.Step(geom.Vec3{}, geom.Vec3{}, -0.01); err == nil {
		t.Error("negative dt must be rejected")
	}
}

// Без сопротивления интегратор должен совпадать с аналитической
// параболой на многосекундном полёте.
func TestStepMatchesParabola(t *testing.T) {
	const g = 9.81
	const dt = 0.002
	b := Ballistics{Gravity: g, DragK: 0}

	pos := geom.V3(0, 10, 0)
	vel := geom.V3(0, 50, 300)
	v0 := vel
	p0 := pos

	elapsed := 0.0
	for elapsed < 3.0 {
		var err error
		pos, vel, err = b.Step(pos, vel, dt)
		if err != nil {
			t.Fatal(err)
		}
		elapsed += dt
	}

	wantZ := p0.Z + v0.Z*elapsed
	wantY := p0.Y + v0.Y*elapsed - 0.5*g*elapsed*elapsed
	if math.Abs(pos.Z-wantZ) > 1e-6 {
		t.Errorf("Z = %f, want %f", pos.Z, wantZ)
	}
	// Полунеявный Эйлер отстаёт от аналитики на ~g*dt*t/2
	if math.Abs(pos.Y-wantY) > 0.05 {
		t.Errorf("Y = %f, want %f within 0.05", pos.Y, wantY)
	}
}

// Одно только сопротивление может лишь замедлять снаряд.
func TestDragOnlySpeedDecreases(t *testing.T) {
	b := Ballistics{Gravity: 0, DragK: 0.0002}
	pos := geom.Vec3{}
	vel := geom.V3(100, 50, 700)

	prevSpeed := vel.Len()
	for i := 0; i < 2000; i++ {
		var err error
		pos, vel, err = b.Step(pos, vel, 0.002)
		if err != nil {
			t.Fatal(err)
		}
		speed := vel.Len()
		if speed >= prevSpeed {
			t.Fatalf("speed did not decrease at step %d: %f -> %f", i, prevSpeed, speed)
		}
		prevSpeed = speed
	}
}

// Долгое вертикальное падение сходится к терминальной скорости sqrt(g/k).
func TestTerminalVelocity(t *testing.T) {
	const g = 9.81
	const k = 0.001
	b := Ballistics{Gravity: g, DragK: k}

	pos := geom.V3(0, 1e6, 0)
	vel := geom.Vec3{}
	for i := 0; i < 40000; i++ {
		var err error
		pos, vel, err = b.Step(pos, vel, 0.002)
		if err != nil {
			t.Fatal(err)
		}
	}

	want := math.Sqrt(g / k)
	got := vel.Len()
	if math.Abs(got-want) > 0.5 {
		t.Errorf("terminal speed = %f, want %f within 0.5", got, want)
	}
	if vel.Y >= 0 {
		t.Errorf("terminal velocity must point down, got Y = %f", vel.Y)
	}
}
