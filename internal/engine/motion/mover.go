// Package motion animates the creature's centerline: a wandering head
// and a chain of control points that trail behind it at a fixed spacing.
package motion

import (
	gomath "math"

	"github.com/andrepology/pond/pkg/math"
)

// Config holds the centerline animation settings.
type Config struct {
	PointCount     int     // stored control points behind the head
	Spacing        float32 // target distance between consecutive points
	Speed          float32 // head speed, world units per second
	TurnRate       float32 // steering responsiveness, radians per second
	WanderStrength float32 // amplitude of the idle wander, radians per second
	Bounds         float32 // distance from origin where the head turns back
}

// Mover owns the head anchor and the trailing control points. Stepping
// is deterministic: the wander comes from fixed-frequency oscillators,
// not a random source, so identical step sequences produce identical
// chains.
type Mover struct {
	cfg     Config
	heading math.Quat
	head    math.Vec3
	points  []math.Vec3
	phase   math.Vec2 // wander oscillator phases (yaw, pitch)
}

// New creates a mover with the head at the origin facing +Z and the
// chain laid out straight behind it.
func New(cfg Config) *Mover {
	if cfg.PointCount < 1 {
		cfg.PointCount = 1
	}
	if cfg.Spacing <= 0 {
		cfg.Spacing = 0.5
	}
	m := &Mover{
		cfg:     cfg,
		heading: math.QuatIdentity(),
		points:  make([]math.Vec3, cfg.PointCount),
	}
	for i := range m.points {
		m.points[i] = math.Vec3{Z: -cfg.Spacing * float32(i+1)}
	}
	return m
}

// Step advances the head and drags the chain along. dt is in seconds.
func (m *Mover) Step(dt float32) {
	forward := m.heading.Rotate(math.Vec3{Z: 1})

	var target math.Quat
	if m.head.Length() > m.cfg.Bounds && m.cfg.Bounds > 0 {
		// Out of bounds: steer back toward the origin.
		toCenter := m.head.Negate().Normalize()
		target = rotationBetween(forward, toCenter).Mul(m.heading)
	} else {
		// Idle wander: two incommensurate oscillators so the path never
		// settles into a closed loop.
		m.phase = m.phase.Add(math.Vec2{X: dt * 0.61, Y: dt * 1.37})
		yaw := float32(gomath.Sin(float64(m.phase.X))) * m.cfg.WanderStrength
		pitch := float32(gomath.Sin(float64(m.phase.Y))) * m.cfg.WanderStrength * 0.35

		right := m.heading.Rotate(math.Vec3{X: 1})
		yawQ := math.QuatFromAxisAngle(math.Vec3{Y: 1}, yaw*dt)
		pitchQ := math.QuatFromAxisAngle(right, pitch*dt)
		target = yawQ.Mul(pitchQ).Mul(m.heading)
	}

	t := m.cfg.TurnRate * dt
	if t > 1 {
		t = 1
	}
	m.heading = m.heading.Slerp(target.Normalize(), t).Normalize()

	dir := m.heading.Rotate(math.Vec3{Z: 1})
	m.head = m.head.Add(dir.Scale(m.cfg.Speed * dt))

	m.follow(dir)
}

// follow drags each control point toward its predecessor, clamping the
// link length to the configured spacing. Slack links are left alone so
// the body compresses naturally in tight turns.
func (m *Mover) follow(dir math.Vec3) {
	prev := m.head
	for i := range m.points {
		d := m.points[i].Sub(prev)
		dist := d.Length()
		switch {
		case dist > m.cfg.Spacing:
			m.points[i] = prev.Add(d.Scale(m.cfg.Spacing / dist))
		case dist < 1e-6:
			m.points[i] = prev.Sub(dir.Scale(m.cfg.Spacing))
		}
		prev = m.points[i]
	}
}

// Head returns the head anchor position.
func (m *Mover) Head() math.Vec3 {
	return m.head
}

// HeadDirection returns the unit direction the head is facing.
func (m *Mover) HeadDirection() math.Vec3 {
	return m.heading.Rotate(math.Vec3{Z: 1})
}

// Points returns the trailing control points, ordered head to tail.
// The slice is owned by the mover and rewritten by Step.
func (m *Mover) Points() []math.Vec3 {
	return m.points
}

// rotationBetween returns the quaternion rotating unit vector a onto
// unit vector b.
func rotationBetween(a, b math.Vec3) math.Quat {
	d := a.Dot(b)
	if d > 0.9999 {
		return math.QuatIdentity()
	}
	if d < -0.9999 {
		// Opposite directions: rotate half a turn around any
		// perpendicular axis.
		axis := a.Cross(math.Vec3{Y: 1})
		if axis.LengthSq() < 1e-8 {
			axis = a.Cross(math.Vec3{X: 1})
		}
		return math.QuatFromAxisAngle(axis.Normalize(), gomath.Pi)
	}
	axis := a.Cross(b).Normalize()
	angle := float32(gomath.Acos(float64(d)))
	return math.QuatFromAxisAngle(axis, angle)
}
