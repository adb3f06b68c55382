package tube

import (
	gomath "math"
	"testing"

	"github.com/andrepology/pond/pkg/math"
)

func TestCurveInterpolatesControlPoints(t *testing.T) {
	// An interpolating spline passes exactly through the head and every
	// stored point; those land on segment-boundary sample indices.
	cfg := DefaultConfig()
	tb := New(cfg)
	head := math.Vec3{X: 0.3, Y: 1.2, Z: -0.4}
	dir := math.Vec3{X: 1, Z: 0.5}.Normalize()
	pts := []math.Vec3{
		{X: -0.5, Y: 1.0, Z: -0.9},
		{X: -1.2, Y: 0.6, Z: -1.1},
		{X: -1.8, Y: 0.9, Z: -0.7},
	}
	tb.Update(pts, head, dir)

	sps := cfg.SamplesPerSegment
	if d := tb.centers[0].Distance(head); d > 1e-5 {
		t.Errorf("curve misses the head by %v", d)
	}
	for i, p := range pts {
		got := tb.centers[(i+1)*sps]
		if d := got.Distance(p); d > 1e-5 {
			t.Errorf("curve misses control point %d by %v", i, d)
		}
	}
}

func TestCurveIrregularSpacingNoCusp(t *testing.T) {
	// Strongly irregular spacing must not produce loops: consecutive
	// sample steps should never reverse against the previous step.
	tb := New(DefaultConfig())
	head := math.Vec3{}
	pts := []math.Vec3{
		{Z: -0.05}, // nearly coincident with the head
		{Z: -2.0},  // then a long gap
		{X: 0.3, Z: -2.3},
		{X: 0.5, Z: -4.5}, // another long gap
	}
	tb.Update(pts, head, math.Vec3{Z: 1})

	for i := 2; i < tb.SampleCount(); i++ {
		a := tb.centers[i-1].Sub(tb.centers[i-2])
		b := tb.centers[i].Sub(tb.centers[i-1])
		if a.LengthSq() < degenerateSq || b.LengthSq() < degenerateSq {
			continue
		}
		if a.Normalize().Dot(b.Normalize()) < -0.5 {
			t.Fatalf("curve doubles back at sample %d", i)
		}
	}
}

func TestGhostPointsCoincidentInput(t *testing.T) {
	// Head and single control point at the same position: the epsilon
	// ghosts must keep the curve finite.
	tb := New(DefaultConfig())
	head := math.Vec3{X: 1, Y: 1, Z: 1}
	tb.Update([]math.Vec3{head}, head, math.Vec3{Y: 1})

	for i, c := range tb.centers {
		for _, v := range []float32{c.X, c.Y, c.Z} {
			if gomath.IsNaN(float64(v)) || gomath.IsInf(float64(v), 0) {
				t.Fatalf("sample %d is %v with coincident input", i, c)
			}
		}
	}
}

func TestKnotIntervalFloor(t *testing.T) {
	p := math.Vec3{X: 5}
	if got := knotInterval(p, p); got != knotFloor {
		t.Errorf("knotInterval(p, p) = %v, want floor %v", got, knotFloor)
	}
}
