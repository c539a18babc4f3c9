package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Socket names a weapon attachment point on the rig.
type Socket int

const (
	SocketHand Socket = iota
	SocketBack
)

func (s Socket) String() string {
	if s == SocketBack {
		return "back"
	}
	return "hand"
}

// SegmentPose holds the local XYZ Euler rotation of every articulated
// segment, in radians.
type SegmentPose struct {
	LeftArm    mgl64.Vec3
	RightArm   mgl64.Vec3
	LeftThigh  mgl64.Vec3
	RightThigh mgl64.Vec3
	LeftShin   mgl64.Vec3
	RightShin  mgl64.Vec3
	Torso      mgl64.Vec3
	Head       mgl64.Vec3
}

// PoseData is the renderable output of the animator: the per-segment
// rotations plus the weapon attachment state. The weapon always has exactly
// one parent socket.
type PoseData struct {
	Segments SegmentPose

	Weapon    Socket
	WeaponRot mgl64.Vec3 // Extra rotation on top of the socket's base preset

	// Weapon swing toward an attack target, cubic ease-out; nil when idle.
	WeaponTween  *gween.Tween
	WeaponTarget mgl64.Vec3

	// Attack arm overlay: while attacking the weapon arm holds ArmTarget,
	// then ArmRecover decays it linearly back to the locomotion pose.
	ArmTarget  mgl64.Vec3
	ArmHold    bool
	ArmRecover *gween.Tween
}

var Pose = donburi.NewComponentType[PoseData]()
