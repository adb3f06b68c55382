package tube

import (
	gomath "math"
	"testing"
)

func TestProfileEndpoints(t *testing.T) {
	p := Profile{MaxRadius: 1, HeadRoundness: 0.6, TailSharpness: 2.2}

	r0, _ := p.Eval(0)
	r1, _ := p.Eval(1)
	if r0 > 0.01 {
		t.Errorf("radius at head = %v, want near zero", r0)
	}
	if r1 > 0.01 {
		t.Errorf("radius at tail = %v, want near zero", r1)
	}
	if r0 < RadiusFloor || r1 < RadiusFloor {
		t.Errorf("radii %v, %v below floor %v", r0, r1, RadiusFloor)
	}
}

func TestProfileFloor(t *testing.T) {
	p := Profile{MaxRadius: 0.5, HeadRoundness: 1, TailSharpness: 1}
	for s := float32(0); s <= 1.0001; s += 0.01 {
		r, _ := p.Eval(s)
		if r < RadiusFloor {
			t.Fatalf("radius %v at s=%v below floor", r, s)
		}
	}
}

func TestProfilePeak(t *testing.T) {
	// Without belly modulation the maximum must sit at s = p/(p+q).
	p := Profile{MaxRadius: 1, HeadRoundness: 0.6, TailSharpness: 2.2}
	want := p.PeakArc()

	best := float32(0)
	bestS := float32(0)
	for s := float32(0); s <= 1.0001; s += 0.001 {
		r, _ := p.Eval(s)
		if r > best {
			best = r
			bestS = s
		}
	}
	if gomath.Abs(float64(bestS-want)) > 0.01 {
		t.Errorf("peak at s=%v, want %v", bestS, want)
	}
}

func TestProfileDerivativeMatchesFiniteDifference(t *testing.T) {
	p := Profile{MaxRadius: 0.8, HeadRoundness: 0.6, TailSharpness: 2.2, BellyAmount: 0.2, BellyFrequency: 2}

	const h = 1e-3
	for s := float32(0.05); s < 0.95; s += 0.05 {
		_, dr := p.Eval(s)
		ra, _ := p.Eval(s - h)
		rb, _ := p.Eval(s + h)
		fd := (rb - ra) / (2 * h)
		if gomath.Abs(float64(dr-fd)) > 0.01 {
			t.Errorf("dr/ds at s=%v: analytic %v, finite difference %v", s, dr, fd)
		}
	}
}

func TestProfileDerivativeStableNearEnds(t *testing.T) {
	// headRoundness < 1 makes s^(p-1) blow up at s=0 without the clamp.
	p := Profile{MaxRadius: 1, HeadRoundness: 0.4, TailSharpness: 0.5}
	for _, s := range []float32{0, 1e-6, 1, 1 - 1e-6} {
		r, dr := p.Eval(s)
		if gomath.IsNaN(float64(r)) || gomath.IsInf(float64(r), 0) {
			t.Errorf("radius at s=%v is %v", s, r)
		}
		if gomath.IsNaN(float64(dr)) || gomath.IsInf(float64(dr), 0) {
			t.Errorf("derivative at s=%v is %v", s, dr)
		}
	}
}

func TestProfileBellyModulates(t *testing.T) {
	flat := Profile{MaxRadius: 1, HeadRoundness: 1, TailSharpness: 1}
	belly := Profile{MaxRadius: 1, HeadRoundness: 1, TailSharpness: 1, BellyAmount: 0.3, BellyFrequency: 1}

	rf, _ := flat.Eval(0.5)
	rb, _ := belly.Eval(0.5)
	if rb <= rf {
		t.Errorf("belly at s=0.5: %v, want > %v", rb, rf)
	}
}
