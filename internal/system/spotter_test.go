package system

import (
	"strings"
	"testing"

	"go-tank-gunner/internal/component"
	"go-tank-gunner/pkg/geom"
)

func spotterTargets(t *testing.T) []*component.Target {
	t.Helper()
	tgt, err := component.NewTarget("TEST", geom.V3(0, 1.2, 1000), geom.V3(1.6, 1.2, 3.25))
	if err != nil {
		t.Fatal(err)
	}
	return []*component.Target{tgt}
}

func TestMissCalloutLongAndRight(t *testing.T) {
	s := NewSpotterSystem(geom.V3(0, 2.2, 0))
	c := s.MissCallout(geom.V3(120, 0, 1200), spotterTargets(t))
	if c == nil {
		t.Fatal("expected a callout")
	}
	if len(c.Lines) != 2 {
		t.Fatalf("callout lines = %v, want range and line corrections", c.Lines)
	}
	if !strings.HasPrefix(c.Lines[0], "LONG 200m") {
		t.Errorf("range line = %q, want LONG 200m correction", c.Lines[0])
	}
	if !strings.HasPrefix(c.Lines[1], "RIGHT 100m") {
		t.Errorf("lateral line = %q, want RIGHT 100m correction", c.Lines[1])
	}
}

func TestMissCalloutShort(t *testing.T) {
	s := NewSpotterSystem(geom.V3(0, 2.2, 0))
	c := s.MissCallout(geom.V3(0, 0, 700), spotterTargets(t))
	if c == nil {
		t.Fatal("expected a callout")
	}
	if !strings.HasPrefix(c.Lines[0], "SHORT 300m") {
		t.Errorf("range line = %q, want SHORT 300m correction", c.Lines[0])
	}
	if c.Lines[1] != "LINE: ON" {
		t.Errorf("lateral line = %q, want LINE: ON", c.Lines[1])
	}
}

func TestMissCalloutOnTarget(t *testing.T) {
	s := NewSpotterSystem(geom.V3(0, 2.2, 0))
	c := s.MissCallout(geom.V3(2, 0, 1005), spotterTargets(t))
	if c == nil {
		t.Fatal("expected a callout")
	}
	if c.Lines[0] != "RANGE: ON" || c.Lines[1] != "LINE: ON" {
		t.Errorf("lines = %v, want both ON for a near miss", c.Lines)
	}
}

func TestMissCalloutNoLiveTargets(t *testing.T) {
	s := NewSpotterSystem(geom.V3(0, 2.2, 0))
	targets := spotterTargets(t)
	targets[0].Alive = false
	if c := s.MissCallout(geom.V3(0, 0, 700), targets); c != nil {
		t.Errorf("callout = %v, want nil without live targets", c.Lines)
	}
}

func TestHitCallout(t *testing.T) {
	s := NewSpotterSystem(geom.V3(0, 2.2, 0))
	c := s.HitCallout()
	if !c.IsHit {
		t.Error("hit callout must be flagged as hit")
	}
	if len(c.Lines) != 1 || c.Lines[0] != "TARGET HIT!" {
		t.Errorf("lines = %v", c.Lines)
	}
}
