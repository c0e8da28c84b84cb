package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestViewBasisLevel(t *testing.T) {
	b := ViewBasis(0, 0)
	if !almostEqual(b.Forward.Z, 1) || !almostEqual(b.Forward.X, 0) || !almostEqual(b.Forward.Y, 0) {
		t.Errorf("level boresight forward = %+v, want +Z", b.Forward)
	}
	// forward x worldUp при взгляде вдоль +Z даёт (-1,0,0)
	if !almostEqual(b.Right.X, -1) {
		t.Errorf("right = %+v, want (-1,0,0)", b.Right)
	}
	if !almostEqual(b.Up.Y, 1) {
		t.Errorf("up = %+v, want +Y", b.Up)
	}
}

func TestViewBasisOrthonormal(t *testing.T) {
	for _, tc := range []struct{ elev, trav float64 }{
		{0.1, 0.0}, {0.0, 0.5}, {-0.05, -1.2}, {0.3, 2.0},
	} {
		b := ViewBasis(tc.elev, tc.trav)
		if !almostEqual(b.Forward.Len(), 1) || !almostEqual(b.Right.Len(), 1) || !almostEqual(b.Up.Len(), 1) {
			t.Errorf("basis (%f,%f) not unit length", tc.elev, tc.trav)
		}
		if !almostEqual(b.Forward.Dot(b.Right), 0) || !almostEqual(b.Forward.Dot(b.Up), 0) || !almostEqual(b.Right.Dot(b.Up), 0) {
			t.Errorf("basis (%f,%f) not orthogonal", tc.elev, tc.trav)
		}
	}
}

func TestViewBasisElevation(t *testing.T) {
	elev := 0.25
	b := ViewBasis(elev, 0)
	if !almostEqual(b.Forward.Y, math.Sin(elev)) {
		t.Errorf("forward.Y = %f, want sin(elev) = %f", b.Forward.Y, math.Sin(elev))
	}
}

func TestNormalizeZero(t *testing.T) {
	z := Vec3{}
	if got := z.Normalize(); got != z {
		t.Errorf("normalize of zero vector = %+v, want zero", got)
	}
}
