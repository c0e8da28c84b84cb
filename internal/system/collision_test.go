package system

import (
	"math"
	"testing"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/pkg/geom"
)

func mustTarget(t *testing.T, center geom.Vec3) *component.Target {
	t.Helper()
	tgt, err := component.NewTarget("TEST", center, geom.V3(2, 2, 2))
	if err != nil {
		t.Fatal(err)
	}
	return tgt
}

func TestNewTargetRejectsBadHitbox(t *testing.T) {
	if _, err := component.NewTarget("BAD", geom.Vec3{}, geom.V3(0, 1, 1)); err == nil {
		t.Error("zero half-extent must be rejected")
	}
	if _, err := component.NewTarget("BAD", geom.Vec3{}, geom.V3(1, -1, 1)); err == nil {
		t.Error("negative half-extent must be rejected")
	}
}

func TestFirstTargetHitReportsNearest(t *testing.T) {
	near := mustTarget(t, geom.V3(0, 0, 300))
	far := mustTarget(t, geom.V3(0, 0, 700))
	targets := []*component.Target{far, near}

	hit, ok := FirstTargetHit(geom.V3(0, 0, 0), geom.V3(0, 0, 1000), targets)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Target != near {
		t.Errorf("hit target at Z=%f, want the nearer one at Z=300", hit.Target.Center.Z)
	}
	if math.Abs(hit.Point.Z-298) > 1e-9 {
		t.Errorf("impact Z = %f, want 298 (box entry face)", hit.Point.Z)
	}
}

func TestFirstTargetHitSkipsIneligible(t *testing.T) {
	dead := mustTarget(t, geom.V3(0, 0, 300))
	dead.Alive = false
	unspawned := mustTarget(t, geom.V3(0, 0, 400))
	unspawned.Spawned = false
	live := mustTarget(t, geom.V3(0, 0, 700))
	targets := []*component.Target{dead, unspawned, live}

	hit, ok := FirstTargetHit(geom.V3(0, 0, 0), geom.V3(0, 0, 1000), targets)
	if !ok {
		t.Fatal("expected a hit on the live target")
	}
	if hit.Target != live {
		t.Errorf("hit target at Z=%f, want the live one at Z=700", hit.Target.Center.Z)
	}
}

func TestFirstTargetHitNoTargets(t *testing.T) {
	if _, ok := FirstTargetHit(geom.V3(0, 0, 0), geom.V3(0, 0, 1000), nil); ok {
		t.Error("no targets must mean no hit")
	}
}

func TestGroundHitLerp(t *testing.T) {
	pt, ok := GroundHit(geom.V3(0, 10, 100), geom.V3(0, -10, 120))
	if !ok {
		t.Fatal("crossing Y=0 must be detected")
	}
	if pt.Y != 0 {
		t.Errorf("ground point Y = %f, want 0", pt.Y)
	}
	if math.Abs(pt.Z-110) > 1e-9 {
		t.Errorf("ground point Z = %f, want 110", pt.Z)
	}
}

func TestGroundHitIgnoresAirborne(t *testing.T) {
	if _, ok := GroundHit(geom.V3(0, 10, 0), geom.V3(0, 5, 10)); ok {
		t.Error("shell above ground must not report ground hit")
	}
	// Уже под землёй на прошлом шаге — пересечение было отработано раньше
	if _, ok := GroundHit(geom.V3(0, -1, 0), geom.V3(0, -2, 10)); ok {
		t.Error("shell already below ground must not report again")
	}
}
