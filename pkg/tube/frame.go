package tube

import (
	gomath "math"

	"github.com/andrepology/pond/pkg/math"
)

var (
	worldUp      = math.Vec3{Y: 1}
	worldForward = math.Vec3{Z: 1}
)

// Tangent alignment band over which the reference up vector is blended
// from world-up to world-forward. Below the start the curve is far from
// vertical and plain world-up is safe; above the end it is effectively
// vertical and world-up would be parallel to the tangent.
const (
	upBlendStart = 0.85
	upBlendEnd   = 0.98
)

// degenerateSq is the squared-length threshold below which a projected
// vector is considered collapsed.
const degenerateSq = 1e-10

// propagateFrames computes an orthonormal (tangent, normal, binormal)
// basis at every dense sample. Every frame carries the previous normal
// forward by projecting it onto the plane perpendicular to the current
// tangent; the first frame of a tick carries the previous tick's first
// frame the same way. Carrying state, both sample-to-sample and
// tick-to-tick, is what keeps the ring orientation from twisting or
// popping: any fixed spatial reference eventually ends up parallel to
// some tangent, but a transported frame never does. Only the very first
// tick, with no frame to carry, seeds from the blended reference up.
func (t *Tube) propagateFrames() {
	s := t.samples
	t.computeTangents()

	tan := t.tangents[0]
	var n math.Vec3
	if t.seeded {
		n = carryNormal(t.seedNormal, t.seedBinormal, tan)
	} else {
		n = initialNormal(tan)
	}
	b := tan.Cross(n).Normalize()
	t.normals[0] = n
	t.binormals[0] = b
	t.seedNormal = n
	t.seedBinormal = b
	t.seeded = true

	for i := 1; i < s; i++ {
		tan = t.tangents[i]
		n = carryNormal(n, b, tan)
		b = tan.Cross(n).Normalize()
		t.normals[i] = n
		t.binormals[i] = b
	}
}

// carryNormal transports a normal onto the plane perpendicular to a new
// tangent. A normal already perpendicular within the degenerate
// threshold is returned untouched, so repeated transport against an
// unchanged tangent is a bit-exact fixed point. A normal parallel to
// the new tangent is rebuilt from the accompanying binormal, which
// cannot also be parallel.
func carryNormal(n, b, tan math.Vec3) math.Vec3 {
	d := n.Dot(tan)
	if d*d < degenerateSq {
		return n
	}
	proj := n.Sub(tan.Scale(d))
	if proj.LengthSq() < degenerateSq {
		proj = b.Cross(tan)
	}
	return proj.Normalize()
}

// initialNormal builds a first-ever normal from the blended reference
// up. Used once per tube lifetime; afterwards frames are carried tick
// to tick.
func initialNormal(tan math.Vec3) math.Vec3 {
	up := referenceUp(tan)
	n := up.Sub(tan.Scale(up.Dot(tan)))
	if n.LengthSq() < degenerateSq {
		n = tan.Cross(worldForward)
		if n.LengthSq() < degenerateSq {
			n = tan.Cross(worldUp)
		}
	}
	return n.Normalize()
}

// computeTangents estimates unit tangents by centered finite differences,
// clamped to one-sided differences at the two ends. A degenerate
// difference (coincident samples) reuses the previous tangent.
func (t *Tube) computeTangents() {
	s := t.samples
	last := math.Vec3{Z: 1}
	for i := 0; i < s; i++ {
		var d math.Vec3
		switch {
		case i == 0:
			d = t.centers[1].Sub(t.centers[0])
		case i == s-1:
			d = t.centers[s-1].Sub(t.centers[s-2])
		default:
			d = t.centers[i+1].Sub(t.centers[i-1])
		}
		if d.LengthSq() < degenerateSq {
			t.tangents[i] = last
			continue
		}
		last = d.Normalize()
		t.tangents[i] = last
	}
}

// referenceUp returns the up vector used to seed the first frame. As the
// tangent approaches vertical the reference blends smoothly toward
// world-forward, so the seed never flips discontinuously when the
// tangent crosses the up axis.
func referenceUp(tan math.Vec3) math.Vec3 {
	align := float32(gomath.Abs(float64(tan.Dot(worldUp))))
	w := smoothstep(upBlendStart, upBlendEnd, align)
	return worldUp.Lerp(worldForward, w).Normalize()
}

// smoothstep is the standard cubic Hermite ramp from 0 at edge0 to 1 at
// edge1, clamped outside.
func smoothstep(edge0, edge1, x float32) float32 {
	u := (x - edge0) / (edge1 - edge0)
	if u < 0 {
		u = 0
	}
	if u > 1 {
		u = 1
	}
	return u * u * (3 - 2*u)
}
