package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MotionData carries the character's physical state. Momentum is the
// smoothed horizontal drive vector; Velocity's vertical component is the
// authoritative gravity/jump channel.
//
// Invariant: Grounded implies Velocity.Y() == 0 and Position.Y() == GroundLevel.
type MotionData struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3 // Vertical component only; horizontal motion lives in Momentum
	Momentum mgl64.Vec3 // Horizontal, units per second

	Yaw         float64 // Facing, radians
	Grounded    bool
	GroundLevel float64
}

var Motion = donburi.NewComponentType[MotionData]()
