package tube

import "github.com/andrepology/pond/pkg/math"

// Frame is a sparse snapshot of one dense sample, exported for consumers
// that attach secondary geometry (fins, markers) to the tube surface.
type Frame struct {
	Position    math.Vec3
	Tangent     math.Vec3
	Normal      math.Vec3
	Binormal    math.Vec3
	Radius      float32
	ArcFraction float32
}

// exportAttachments copies every AttachmentStep-th sample into the
// buffer that is not currently published, then flips. A consumer still
// holding the previously returned slice never observes a partial write,
// even if its read cadence differs from the update cadence.
func (t *Tube) exportAttachments() {
	if t.attachCount == 0 {
		return
	}
	next := 1 - t.published
	buf := t.attach[next]
	step := t.cfg.AttachmentStep
	last := float32(t.samples - 1)

	k := 0
	for i := 0; i < t.samples; i += step {
		buf[k] = Frame{
			Position:    t.centers[i],
			Tangent:     t.tangents[i],
			Normal:      t.normals[i],
			Binormal:    t.binormals[i],
			Radius:      t.radii[i],
			ArcFraction: float32(i) / last,
		}
		k++
	}
	t.published = next
}

// Attachments returns the most recently published frame snapshot, or nil
// when the export is disabled. The slice stays coherent until the Update
// after next.
func (t *Tube) Attachments() []Frame {
	if t.attachCount == 0 {
		return nil
	}
	return t.attach[t.published]
}
