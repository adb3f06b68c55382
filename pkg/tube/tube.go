// Package tube generates a smooth tubular mesh around a moving sequence
// of control points. Every tick it interpolates a dense curve through the
// points, propagates twist-free frames along it, applies a teardrop
// radius profile, and rewrites flat vertex attribute buffers in place.
// Topology is fixed per configuration, so the per-tick path allocates
// nothing.
package tube

import (
	"github.com/andrepology/pond/pkg/math"
)

// Config holds the shape parameters for a tube.
// Sample and ring counts fix the buffer topology; the remaining fields
// feed the radius profile.
type Config struct {
	// SamplesPerSegment is the number of dense samples generated for each
	// curve segment between consecutive control points.
	SamplesPerSegment int

	// RingSegments is the number of segments around each cross-section
	// ring. One extra vertex per ring duplicates the seam.
	RingSegments int

	// MaxRadius scales the whole radius profile.
	MaxRadius float32

	// HeadRoundness is the power applied near the head end.
	// Lower values give a rounder head.
	HeadRoundness float32

	// TailSharpness is the power applied near the tail end.
	// Higher values give a sharper taper.
	TailSharpness float32

	// BellyAmount and BellyFrequency add a periodic swell along the body.
	BellyAmount    float32
	BellyFrequency float32

	// AttachmentStep exports every n-th sample's frame for consumers that
	// attach secondary geometry. Zero disables the export.
	AttachmentStep int
}

// DefaultConfig returns the parameters used by the pond creature.
func DefaultConfig() Config {
	return Config{
		SamplesPerSegment: 8,
		RingSegments:      16,
		MaxRadius:         0.5,
		HeadRoundness:     0.6,
		TailSharpness:     2.2,
		BellyAmount:       0.15,
		BellyFrequency:    1.0,
		AttachmentStep:    4,
	}
}

// Tube owns all buffers for one tubular body. All slices are sized once
// per (control point count, config) and rewritten in place by Update.
type Tube struct {
	cfg     Config
	profile Profile

	numPoints int // control point count the buffers are sized for
	samples   int // dense sample count S

	// curve scratch
	chain []math.Vec3 // ghostHead, head, points..., ghostTail, ghostTail2

	// per-sample state
	centers   []math.Vec3
	tangents  []math.Vec3
	normals   []math.Vec3
	binormals []math.Vec3
	radii     []float32
	radiiDrv  []float32

	// ring trig tables, seam vertex duplicated
	ringCos []float32
	ringSin []float32

	// vertex attribute buffers (flat) and static topology
	positions   []float32
	vertNormals []float32
	uvs         []float32
	indices     []uint32

	// first frame of the previous tick, carried as the next tick's seed
	seedNormal   math.Vec3
	seedBinormal math.Vec3
	seeded       bool

	// attachment export double buffer
	attach      [2][]Frame
	published   int
	attachCount int
}

// New creates a tube for the given configuration. Buffers are allocated
// lazily on the first Update, once the control point count is known.
func New(cfg Config) *Tube {
	if cfg.SamplesPerSegment < 1 {
		cfg.SamplesPerSegment = 1
	}
	if cfg.RingSegments < 3 {
		cfg.RingSegments = 3
	}
	t := &Tube{cfg: cfg}
	t.profile = Profile{
		MaxRadius:      cfg.MaxRadius,
		HeadRoundness:  cfg.HeadRoundness,
		TailSharpness:  cfg.TailSharpness,
		BellyAmount:    cfg.BellyAmount,
		BellyFrequency: cfg.BellyFrequency,
	}
	t.buildRingTables()
	return t
}

// Config returns the tube's configuration.
func (t *Tube) Config() Config {
	return t.cfg
}

// Update regenerates the full mesh from the current control points, head
// anchor position and head direction. The attribute buffers returned by
// Positions, Normals and UVs are valid until the next Update call.
// Buffers are reallocated only when the control point count changes.
func (t *Tube) Update(points []math.Vec3, head, headDir math.Vec3) {
	t.ensureSized(len(points))
	t.buildChain(points, head, headDir)
	t.sampleCurve()
	t.propagateFrames()
	t.evalProfile()
	t.writeVertices()
	t.exportAttachments()
}

// SampleCount returns the dense sample count S for the current sizing.
// Zero before the first Update.
func (t *Tube) SampleCount() int {
	return t.samples
}

// VertexCount returns the number of mesh vertices.
func (t *Tube) VertexCount() int {
	return t.samples * (t.cfg.RingSegments + 1)
}

// Positions returns the flat vertex position buffer (3 floats per vertex).
func (t *Tube) Positions() []float32 {
	return t.positions
}

// Normals returns the flat vertex normal buffer (3 floats per vertex).
func (t *Tube) Normals() []float32 {
	return t.vertNormals
}

// UVs returns the flat texture coordinate buffer (2 floats per vertex).
// U is the ring angle fraction, V the arc-length fraction.
func (t *Tube) UVs() []float32 {
	return t.uvs
}

// Indices returns the static triangle index buffer. It is built once per
// sizing and identical across ticks.
func (t *Tube) Indices() []uint32 {
	return t.indices
}

// ensureSized allocates all buffers for the given control point count.
// This is the only allocation site outside of construction; steady-state
// updates with an unchanged point count reuse everything.
func (t *Tube) ensureSized(numPoints int) {
	if t.positions != nil && numPoints == t.numPoints {
		return
	}
	t.numPoints = numPoints
	t.samples = t.cfg.SamplesPerSegment*(numPoints+1) + 1
	s := t.samples

	t.chain = make([]math.Vec3, numPoints+4)
	t.centers = make([]math.Vec3, s)
	t.tangents = make([]math.Vec3, s)
	t.normals = make([]math.Vec3, s)
	t.binormals = make([]math.Vec3, s)
	t.radii = make([]float32, s)
	t.radiiDrv = make([]float32, s)

	nVerts := s * (t.cfg.RingSegments + 1)
	t.positions = make([]float32, nVerts*3)
	t.vertNormals = make([]float32, nVerts*3)
	t.uvs = make([]float32, nVerts*2)
	t.buildIndices()

	t.attachCount = 0
	if t.cfg.AttachmentStep > 0 {
		t.attachCount = (s-1)/t.cfg.AttachmentStep + 1
	}
	t.attach[0] = make([]Frame, t.attachCount)
	t.attach[1] = make([]Frame, t.attachCount)
	t.published = 0
}

// evalProfile fills the per-sample radius and derivative arrays.
func (t *Tube) evalProfile() {
	last := float32(t.samples - 1)
	for i := 0; i < t.samples; i++ {
		s := float32(i) / last
		t.radii[i], t.radiiDrv[i] = t.profile.Eval(s)
	}
}
