package system

import (
	"math"
	"testing"

	"go-tank-gunner/internal/utils"
	"go-tank-gunner/pkg/geom"
)

func TestSampleRejectsBadTheta(t *testing.T) {
	s := NewDispersionSampler(utils.NewPRNGService(1))
	if _, err := s.Sample(geom.V3(0, 0, 1), -0.1); err == nil {
		t.Error("negative dispersion angle must be rejected")
	}
	if _, err := s.Sample(geom.V3(0, 0, 1), math.Pi); err == nil {
		t.Error("dispersion angle above pi/2 must be rejected")
	}
}

func TestSampleZeroTheta(t *testing.T) {
	s := NewDispersionSampler(utils.NewPRNGService(1))
	aim := geom.V3(0.1, 0.2, 0.97).Normalize()
	got, err := s.Sample(aim, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != aim {
		t.Errorf("zero dispersion must return aim unchanged, got %+v", got)
	}
}

// Ни одна выборка не должна выйти за конус, а среднее отклонение
// обязано сходиться к нулю.
func TestSampleBoundedAndCentered(t *testing.T) {
	const theta = 0.01
	const n = 10000
	s := NewDispersionSampler(utils.NewPRNGService(42))
	aim := geom.V3(0, 0, 1)

	var mean geom.Vec3
	for i := 0; i < n; i++ {
		dir, err := s.Sample(aim, theta)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(dir.Len()-1) > 1e-9 {
			t.Fatalf("sample %d is not unit length: %f", i, dir.Len())
		}
		dev := math.Acos(utils.Clamp(dir.Dot(aim), -1, 1))
		if dev > theta+1e-9 {
			t.Fatalf("sample %d deviates %f, above theta %f", i, dev, theta)
		}
		mean = mean.Add(dir.Sub(aim))
	}

	mean = mean.Scale(1.0 / n)
	if mean.Len() > theta/10 {
		t.Errorf("mean deviation = %f, want below %f", mean.Len(), theta/10)
	}
}

func TestSampleVerticalAim(t *testing.T) {
	// Ствол в зенит: запасная перпендикулярная ось не должна дать NaN
	s := NewDispersionSampler(utils.NewPRNGService(7))
	got, err := s.Sample(geom.V3(0, 1, 0), 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
		t.Errorf("vertical aim produced NaN: %+v", got)
	}
	if math.Abs(got.Len()-1) > 1e-9 {
		t.Errorf("vertical aim sample not unit length: %f", got.Len())
	}
}

// Геометрическая проверка конуса против цели: при theta = 0.01 рад и
// узкой цели (±1 м на 500 м, т.е. ±0.002 рад) доля попаданий должна
// лежать в пределах, выводимых из геометрии конуса.
func TestSampleHitRateAgainstNarrowTarget(t *testing.T) {
	const theta = 0.01
	const n = 5000
	s := NewDispersionSampler(utils.NewPRNGService(99))
	aim := geom.V3(0, 0, 1)
	// Высокий бокс изолирует горизонтальную составляющую рассеивания
	box := geom.BoxAround(geom.V3(0, 0, 500), geom.V3(1, 1000, 1))

	hits := 0
	for i := 0; i < n; i++ {
		dir, err := s.Sample(aim, theta)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := box.SegmentIntersect(geom.Vec3{}, dir.Scale(600)); ok {
			hits++
		}
	}

	rate := float64(hits) / n
	// Нижняя граница: попадание гарантировано уже при отклонении ниже
	// углового полуразмера цели, P(|N(0,theta/3)| < 0.6*sigma) ~= 0.45.
	if rate < 0.40 || rate > 0.90 {
		t.Errorf("hit rate = %f, want within [0.40, 0.90]", rate)
	}
}
