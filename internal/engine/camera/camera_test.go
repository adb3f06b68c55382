package camera

import (
	gomath "math"
	"testing"

	"github.com/andrepology/pond/pkg/math"
)

func TestPositionAtDistance(t *testing.T) {
	c := New()
	c.Center = math.Vec3{}
	got := c.Position().Length()
	if gomath.Abs(float64(got-c.Distance)) > 1e-4 {
		t.Errorf("camera at distance %v, want %v", got, c.Distance)
	}
}

func TestDragClampsPitch(t *testing.T) {
	c := New()
	c.HandleDrag(math.Vec2{Y: 1e6})
	if c.RotationX != c.MaxPitch {
		t.Errorf("pitch %v, want clamped to %v", c.RotationX, c.MaxPitch)
	}
	c.HandleDrag(math.Vec2{Y: -1e6})
	if c.RotationX != c.MinPitch {
		t.Errorf("pitch %v, want clamped to %v", c.RotationX, c.MinPitch)
	}
}

func TestZoomClampsDistance(t *testing.T) {
	c := New()
	for i := 0; i < 200; i++ {
		c.HandleZoom(5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("distance %v, want clamped to %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(-5)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("distance %v, want clamped to %v", c.Distance, c.MaxDistance)
	}
}

func TestFollowEases(t *testing.T) {
	c := New()
	target := math.Vec3{X: 10}
	c.Follow(target, 1.0/60)
	if c.Center.X <= 0 || c.Center.X >= 10 {
		t.Errorf("center.X = %v, want strictly between 0 and 10", c.Center.X)
	}
}
