package tube

import (
	gomath "math"

	"github.com/andrepology/pond/pkg/math"
)

// ghostOffset is the minimal synthetic point offset used when real
// neighbor distances degenerate to zero.
const ghostOffset = 1e-3

// knotFloor keeps centripetal knot intervals strictly positive so the
// Barry-Goldman weights never divide by zero.
const knotFloor = 1e-5

// buildChain assembles the interpolation chain:
// [ghostHead, head, points..., ghostTail, ghostTail2].
// Ghost points are reflections of the neighboring real points; when a
// reflection degenerates (coincident points, missing neighbors) the head
// direction supplies a minimal-epsilon stand-in.
func (t *Tube) buildChain(points []math.Vec3, head, headDir math.Vec3) {
	n := len(points)
	dir := headDir.Normalize()
	if dir == (math.Vec3{}) {
		dir = math.Vec3{Z: 1}
	}

	t.chain[1] = head
	for i, p := range points {
		t.chain[2+i] = p
	}

	// Leading ghost: reflect the first stored point through the head.
	var first math.Vec3
	if n > 0 {
		first = points[0]
	} else {
		first = head.Sub(dir.Scale(ghostOffset))
	}
	gh := head.Add(head.Sub(first))
	if gh.Distance(head) < ghostOffset {
		gh = head.Add(dir.Scale(ghostOffset))
	}
	t.chain[0] = gh

	// Trailing ghost: reflect the second-to-last point through the last.
	last := head
	prev := head.Add(dir.Scale(ghostOffset))
	switch {
	case n >= 2:
		last = points[n-1]
		prev = points[n-2]
	case n == 1:
		last = points[0]
		prev = head
	}
	gt := last.Add(last.Sub(prev))
	if gt.Distance(last) < ghostOffset {
		gt = last.Sub(dir.Scale(ghostOffset))
	}
	t.chain[n+2] = gt
	t.chain[n+3] = gt.Add(gt.Sub(last))
}

// sampleCurve evaluates the centripetal Catmull-Rom interpolant through
// the chain, writing S evenly indexed sample positions into t.centers.
// Segment k draws the span chain[k+1]..chain[k+2]; the chain's ghost
// points only ever serve as stencil neighbors except for the final
// tail segment, which extends to the trailing ghost.
func (t *Tube) sampleCurve() {
	sps := t.cfg.SamplesPerSegment
	segs := t.numPoints + 1
	out := 0
	for k := 0; k < segs; k++ {
		p0 := t.chain[k]
		p1 := t.chain[k+1]
		p2 := t.chain[k+2]
		p3 := t.chain[k+3]

		// Centripetal knots: intervals grow with sqrt of chord length,
		// which resists cusps and loops on irregular spacing.
		t0 := float32(0)
		t1 := t0 + knotInterval(p0, p1)
		t2 := t1 + knotInterval(p1, p2)
		t3 := t2 + knotInterval(p2, p3)

		for j := 0; j < sps; j++ {
			u := t1 + (t2-t1)*float32(j)/float32(sps)
			t.centers[out] = catmullRomPoint(p0, p1, p2, p3, t0, t1, t2, t3, u)
			out++
		}
	}
	t.centers[out] = t.chain[segs+1]
}

// knotInterval returns the centripetal parameter interval between two
// chain points, floored away from zero.
func knotInterval(a, b math.Vec3) float32 {
	d := float32(gomath.Sqrt(gomath.Sqrt(float64(a.Sub(b).LengthSq()))))
	if d < knotFloor {
		return knotFloor
	}
	return d
}

// catmullRomPoint evaluates the non-uniform Catmull-Rom segment
// p1..p2 at parameter u in [t1, t2] using the Barry-Goldman pyramid.
func catmullRomPoint(p0, p1, p2, p3 math.Vec3, t0, t1, t2, t3, u float32) math.Vec3 {
	a1 := p0.Scale((t1 - u) / (t1 - t0)).Add(p1.Scale((u - t0) / (t1 - t0)))
	a2 := p1.Scale((t2 - u) / (t2 - t1)).Add(p2.Scale((u - t1) / (t2 - t1)))
	a3 := p2.Scale((t3 - u) / (t3 - t2)).Add(p3.Scale((u - t2) / (t3 - t2)))

	b1 := a1.Scale((t2 - u) / (t2 - t0)).Add(a2.Scale((u - t0) / (t2 - t0)))
	b2 := a2.Scale((t3 - u) / (t3 - t1)).Add(a3.Scale((u - t1) / (t3 - t1)))

	return b1.Scale((t2 - u) / (t2 - t1)).Add(b2.Scale((u - t1) / (t2 - t1)))
}
