// Package gamemath holds the small pile of vector and angle helpers the
// movement and animation systems share.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp blends a toward b by factor t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec blends each component of a toward b by factor t.
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// WrapAngle wraps an angle into [-pi, pi].
func WrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// LerpAngle blends current toward target by factor t along the shortest arc,
// so a 180-degree reversal never spins the long way around.
func LerpAngle(current, target, t float64) float64 {
	delta := WrapAngle(target - current)
	return WrapAngle(current + delta*t)
}

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Horizontal zeroes the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalLen returns the length of v projected onto the ground plane.
func HorizontalLen(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// Flatten zeroes the vertical component of v and normalizes the result.
// A vector with no horizontal part flattens to zero.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	h := Horizontal(v)
	l := h.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return h.Mul(1 / l)
}

// YawForward returns the unit forward vector on the ground plane for a yaw
// angle, following the atan2(x, z) facing convention.
func YawForward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// YawRight returns the unit right vector on the ground plane for a yaw angle.
func YawRight(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
}

// EulerMat builds a rotation matrix from XYZ Euler angles applied in
// X, then Y, then Z order.
func EulerMat(e mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DZ(e.Z()).Mul3(mgl64.Rotate3DY(e.Y())).Mul3(mgl64.Rotate3DX(e.X()))
}
