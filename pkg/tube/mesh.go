package tube

import gomath "math"

// buildRingTables fills the per-angle cos/sin lookup, with the seam
// vertex copied exactly from angle zero so the ring closes bit-for-bit.
func (t *Tube) buildRingTables() {
	r := t.cfg.RingSegments
	t.ringCos = make([]float32, r+1)
	t.ringSin = make([]float32, r+1)
	for j := 0; j < r; j++ {
		ang := 2 * gomath.Pi * float64(j) / float64(r)
		t.ringCos[j] = float32(gomath.Cos(ang))
		t.ringSin[j] = float32(gomath.Sin(ang))
	}
	t.ringCos[r] = t.ringCos[0]
	t.ringSin[r] = t.ringSin[0]
}

// buildIndices emits the static ring-to-ring quad topology: two CCW
// triangles per quad, no caps. 2*R*(S-1) triangles total, reused
// unchanged every tick.
func (t *Tube) buildIndices() {
	r := t.cfg.RingSegments
	s := t.samples
	t.indices = make([]uint32, 0, 6*r*(s-1))
	for i := 0; i < s-1; i++ {
		ring := uint32(i * (r + 1))
		next := uint32((i + 1) * (r + 1))
		for j := 0; j < r; j++ {
			a := ring + uint32(j)
			b := a + 1
			c := next + uint32(j)
			d := c + 1
			t.indices = append(t.indices, a, b, c, b, d, c)
		}
	}
}

// writeVertices rewrites the position, normal and UV buffers from the
// current samples, frames and radius profile. Each dense sample emits
// one ring of R+1 vertices offset along (normal, binormal).
//
// The surface normal is not the plain radial direction: a radius that
// changes along the spine tilts the surface toward or away from the
// tangent, so the radial vector has the tangential leakage dr/ds
// subtracted before normalizing. Skipping that term shades the steep
// tail taper visibly wrong.
func (t *Tube) writeVertices() {
	r := t.cfg.RingSegments
	s := t.samples
	last := float32(s - 1)

	vi := 0 // position/normal float cursor
	ti := 0 // uv float cursor
	for i := 0; i < s; i++ {
		c := t.centers[i]
		tan := t.tangents[i]
		n := t.normals[i]
		b := t.binormals[i]
		radius := t.radii[i]
		drv := t.radiiDrv[i]
		arc := float32(i) / last

		for j := 0; j <= r; j++ {
			cosA := t.ringCos[j]
			sinA := t.ringSin[j]

			radial := n.Scale(cosA).Add(b.Scale(sinA))
			pos := c.Add(radial.Scale(radius))
			sn := radial.Sub(tan.Scale(drv)).Normalize()

			t.positions[vi] = pos.X
			t.positions[vi+1] = pos.Y
			t.positions[vi+2] = pos.Z
			t.vertNormals[vi] = sn.X
			t.vertNormals[vi+1] = sn.Y
			t.vertNormals[vi+2] = sn.Z
			vi += 3

			t.uvs[ti] = float32(j) / float32(r)
			t.uvs[ti+1] = arc
			ti += 2
		}
	}
}
