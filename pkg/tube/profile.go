package tube

import gomath "math"

// RadiusFloor is the minimum cross-section radius. Rings never collapse
// to zero, which keeps the mesh non-degenerate at both tips.
const RadiusFloor = 1e-4

// sClamp bounds the arc parameter away from exactly 0 and 1 inside the
// power terms. s^(p-1) diverges at 0 for p < 1; the clamp keeps the
// derivative finite there.
const sClamp = 1e-4

// Profile maps normalized arc position s in [0,1] (0 = head, 1 = tail)
// to a cross-section radius. The base shape is a teardrop
// maxR * s^p * (1-s)^q, modulated by a periodic belly swell.
type Profile struct {
	MaxRadius      float32
	HeadRoundness  float32 // p: lower = rounder head
	TailSharpness  float32 // q: higher = sharper tail
	BellyAmount    float32
	BellyFrequency float32
}

// Eval returns the radius and its analytic derivative dr/ds at s.
// The derivative feeds the surface normal correction in the mesh
// builder, so it must stay numerically stable over the whole range.
func (p Profile) Eval(s float32) (r, dr float32) {
	cs := float64(s)
	if cs < sClamp {
		cs = sClamp
	}
	if cs > 1-sClamp {
		cs = 1 - sClamp
	}

	hp := float64(p.HeadRoundness)
	tq := float64(p.TailSharpness)
	headTerm := gomath.Pow(cs, hp)
	tailTerm := gomath.Pow(1-cs, tq)

	bellyArg := gomath.Pi * cs * float64(p.BellyFrequency)
	belly := 1 + float64(p.BellyAmount)*gomath.Sin(bellyArg)

	maxR := float64(p.MaxRadius)
	r = float32(maxR * headTerm * tailTerm * belly)

	// Product rule across the three factors.
	dHead := hp * gomath.Pow(cs, hp-1)
	dTail := -tq * gomath.Pow(1-cs, tq-1)
	dBelly := float64(p.BellyAmount) * gomath.Pi * float64(p.BellyFrequency) * gomath.Cos(bellyArg)
	dr = float32(maxR * (dHead*tailTerm*belly + headTerm*dTail*belly + headTerm*tailTerm*dBelly))

	if r < RadiusFloor {
		r = RadiusFloor
	}
	return r, dr
}

// PeakArc returns the arc position of the base profile's maximum radius,
// p/(p+q), ignoring the belly modulation.
func (p Profile) PeakArc() float32 {
	sum := p.HeadRoundness + p.TailSharpness
	if sum == 0 {
		return 0.5
	}
	return p.HeadRoundness / sum
}
