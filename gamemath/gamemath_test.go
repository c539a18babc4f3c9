package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, -math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// The interpolated step must always move along the shortest arc: its sign
// matches the shortest-path delta and its magnitude never exceeds pi.
func TestLerpAngleShortestPath(t *testing.T) {
	angles := []float64{-math.Pi, -2.5, -1, -0.1, 0, 0.3, 1.2, 2.9, math.Pi}
	for _, current := range angles {
		for _, target := range angles {
			got := LerpAngle(current, target, 0.25)
			step := WrapAngle(got - current)
			shortest := WrapAngle(target - current)
			if shortest == 0 {
				if step != 0 {
					t.Errorf("LerpAngle(%v, %v) moved %v, want no movement", current, target, step)
				}
				continue
			}
			if step*shortest < 0 {
				t.Errorf("LerpAngle(%v, %v) stepped %v against shortest delta %v", current, target, step, shortest)
			}
			if math.Abs(step) > math.Abs(shortest)+1e-9 {
				t.Errorf("LerpAngle(%v, %v) overshot: step %v, shortest %v", current, target, step, shortest)
			}
		}
	}
}

func TestLerpAngleReversal(t *testing.T) {
	// A near-180 reversal must not snap: one blend step covers only a
	// fraction of the arc.
	current := 0.0
	target := math.Pi - 0.01
	got := LerpAngle(current, target, 0.2)
	want := (math.Pi - 0.01) * 0.2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("LerpAngle reversal = %v, want %v", got, want)
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"already flat", mgl64.Vec3{3, 0, 4}, mgl64.Vec3{0.6, 0, 0.8}},
		{"vertical removed", mgl64.Vec3{0, 7, 1}, mgl64.Vec3{0, 0, 1}},
		{"pure vertical", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{}},
		{"zero", mgl64.Vec3{}, mgl64.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.in)
			if got.Sub(tt.want).Len() > 1e-9 {
				t.Errorf("Flatten(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestYawForwardMatchesAtan2(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, math.Pi / 2, -2.2, math.Pi} {
		f := YawForward(yaw)
		back := math.Atan2(f.X(), f.Z())
		if math.Abs(WrapAngle(back-yaw)) > 1e-9 {
			t.Errorf("YawForward(%v) round-trips to %v", yaw, back)
		}
		if math.Abs(f.Len()-1) > 1e-9 {
			t.Errorf("YawForward(%v) not unit length: %v", yaw, f.Len())
		}
	}
}

func TestYawRightPerpendicular(t *testing.T) {
	for _, yaw := range []float64{0, 1, -1.3, 3} {
		if d := YawForward(yaw).Dot(YawRight(yaw)); math.Abs(d) > 1e-9 {
			t.Errorf("forward and right not perpendicular at yaw %v: dot %v", yaw, d)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %v", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %v", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v", got)
	}
}
