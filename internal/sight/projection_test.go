package sight

import (
	"math"
	"testing"

	"go-tank-gunner/pkg/geom"
)

func testProjector(t *testing.T, magnification float64) *Projector {
	t.Helper()
	p, err := NewProjector(Config{
		FOVRadius:     0.1,
		PixelRadius:   250,
		Magnification: magnification,
		NearClip:      0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNewProjectorValidation(t *testing.T) {
	bad := []Config{
		{FOVRadius: 0, PixelRadius: 250, Magnification: 1},
		{FOVRadius: 0.1, PixelRadius: 0, Magnification: 1},
		{FOVRadius: 0.1, PixelRadius: 250, Magnification: 0},
		{FOVRadius: -0.1, PixelRadius: 250, Magnification: 1},
	}
	for i, cfg := range bad {
		if _, err := NewProjector(cfg); err == nil {
			t.Errorf("config %d must be rejected: %+v", i, cfg)
		}
	}
}

func TestBoresightProjectsToCenter(t *testing.T) {
	p := testProjector(t, 1)
	eye := geom.V3(0, 2.2, 0)
	basis := geom.ViewBasis(0.05, -0.3)

	world := eye.Add(basis.Forward.Scale(800))
	off, ok := p.Project(world, eye, basis)
	if !ok {
		t.Fatal("point on the boresight must be visible")
	}
	if math.Hypot(off.X, off.Y) > 1e-9 {
		t.Errorf("boresight offset = %+v, want (0,0)", off)
	}
}

func TestFOVBoundaryProjectsToRimRadius(t *testing.T) {
	p := testProjector(t, 1)
	eye := geom.Vec3{}
	basis := geom.ViewBasis(0, 0)

	// Точка ровно на граничном угле поля зрения, чисто по горизонтали
	fov := p.EffectiveFOV()
	dist := 500.0
	world := basis.Forward.Scale(dist).Add(basis.Right.Scale(dist * math.Tan(fov)))

	off, ok := p.Project(world, eye, basis)
	if !ok {
		t.Fatal("point at the exact FOV boundary must still project")
	}
	if math.Abs(math.Hypot(off.X, off.Y)-250) > 1e-6 {
		t.Errorf("boundary offset magnitude = %f, want 250", math.Hypot(off.X, off.Y))
	}
}

func TestOutsideFOVNotVisible(t *testing.T) {
	p := testProjector(t, 1)
	basis := geom.ViewBasis(0, 0)

	world := basis.Forward.Scale(500).Add(basis.Right.Scale(500 * math.Tan(0.12)))
	if _, ok := p.Project(world, geom.Vec3{}, basis); ok {
		t.Error("point beyond the FOV circle must not be visible")
	}
}

func TestBehindGunNotVisible(t *testing.T) {
	p := testProjector(t, 1)
	basis := geom.ViewBasis(0, 0)
	if _, ok := p.Project(geom.V3(0, 0, -100), geom.Vec3{}, basis); ok {
		t.Error("point behind the gun must not be visible")
	}
	if _, ok := p.ProjectRaw(geom.V3(0, 0, -100), geom.Vec3{}, basis); ok {
		t.Error("raw projection must also clip behind the gun")
	}
}

func TestMagnificationNarrowsField(t *testing.T) {
	wide := testProjector(t, 1)
	zoomed := testProjector(t, 4)
	basis := geom.ViewBasis(0, 0)

	// Угол в поле при x1, но вне поля при x4
	world := basis.Forward.Scale(500).Add(basis.Right.Scale(500 * math.Tan(0.05)))
	if _, ok := wide.Project(world, geom.Vec3{}, basis); !ok {
		t.Error("point must be visible without magnification")
	}
	if _, ok := zoomed.Project(world, geom.Vec3{}, basis); ok {
		t.Error("point must fall outside the magnified field")
	}

	// Одинаковый угол даёт больший пиксельный сдвиг при увеличении
	inner := basis.Forward.Scale(500).Add(basis.Right.Scale(500 * math.Tan(0.01)))
	offWide, _ := wide.Project(inner, geom.Vec3{}, basis)
	offZoom, ok := zoomed.Project(inner, geom.Vec3{}, basis)
	if !ok {
		t.Fatal("inner point must be visible at x4")
	}
	if offZoom.X <= offWide.X {
		t.Errorf("zoomed offset %f must exceed wide offset %f", offZoom.X, offWide.X)
	}
}

func TestScreenYPointsDown(t *testing.T) {
	p := testProjector(t, 1)
	basis := geom.ViewBasis(0, 0)

	above := basis.Forward.Scale(500).Add(basis.Up.Scale(10))
	off, ok := p.Project(above, geom.Vec3{}, basis)
	if !ok {
		t.Fatal("point above the boresight must be visible")
	}
	if off.Y >= 0 {
		t.Errorf("point above boresight projects to Y = %f, want negative (screen up)", off.Y)
	}
}
