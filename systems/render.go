package systems

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view is the per-frame camera transform used to project world points onto
// the screen.
type view struct {
	eye     mgl64.Vec3
	forward mgl64.Vec3
	right   mgl64.Vec3
}

const nearClip = 0.1

func makeView(e *ecs.ECS) (view, bool) {
	cam := getCamera(e)
	entry := playerEntry(e)
	if cam == nil || entry == nil {
		return view{}, false
	}
	motion := components.Motion.Get(entry)
	eye := motion.Position.
		Sub(cam.Forward.Mul(cfg.Camera.Distance)).
		Add(mgl64.Vec3{0, cfg.Camera.Height, 0})
	return view{eye: eye, forward: cam.Forward, right: cam.Right}, true
}

// project maps a world point to screen coordinates. ok is false for points
// at or behind the near plane.
func (v view) project(p mgl64.Vec3) (float32, float32, bool) {
	rel := p.Sub(v.eye)
	depth := rel.Dot(v.forward)
	if depth < nearClip {
		return 0, 0, false
	}
	sx := float64(cfg.C.Width)/2 + rel.Dot(v.right)*cfg.Camera.FocalLen/depth
	// The vertical offset aims the view back down at the character instead
	// of straight out from the raised eye.
	sy := float64(cfg.C.Height)/2 - (rel[1]+cfg.Camera.Height)*cfg.Camera.FocalLen/depth
	return float32(sx), float32(sy), true
}

func (v view) strokeLine(screen *ebiten.Image, a, b mgl64.Vec3, width float32, clr color.Color) {
	ax, ay, ok := v.project(a)
	if !ok {
		return
	}
	bx, by, ok := v.project(b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, ax, ay, bx, by, width, clr, true)
}

// DrawArena clears the frame and draws the ground grid.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 18, B: 26, A: 255})

	v, ok := makeView(e)
	if !ok {
		return
	}

	const extent = 20.0
	const step = 2.0
	y := cfg.Player.GroundLevel
	for x := -extent; x <= extent; x += step {
		v.strokeLine(screen, mgl64.Vec3{x, y, -extent}, mgl64.Vec3{x, y, extent}, 1, cfg.DarkGrey)
	}
	for z := -extent; z <= extent; z += step {
		v.strokeLine(screen, mgl64.Vec3{-extent, y, z}, mgl64.Vec3{extent, y, z}, 1, cfg.DarkGrey)
	}
}

// rig holds the world-space joints resolved for one frame.
type rig struct {
	root, neck, headTop                mgl64.Vec3
	shoulderL, shoulderR, handL, handR mgl64.Vec3
	hipL, hipR, kneeL, kneeR           mgl64.Vec3
	footL, footR                       mgl64.Vec3
	weaponBase, weaponTip              mgl64.Vec3
}

// solveRig runs forward kinematics from the motion root through every
// segment's local rotation, weapon socket included.
func solveRig(motion *components.MotionData, pose *components.PoseData) rig {
	r := cfg.Rig
	seg := pose.Segments

	yawM := mgl64.Rotate3DY(motion.Yaw)
	root := motion.Position.Add(mgl64.Vec3{0, r.HipHeight, 0})

	torsoM := yawM.Mul3(gamemath.EulerMat(seg.Torso))
	neck := root.Add(torsoM.Mul3x1(mgl64.Vec3{0, r.TorsoLen, 0}))
	headM := torsoM.Mul3(gamemath.EulerMat(seg.Head))
	headTop := neck.Add(headM.Mul3x1(mgl64.Vec3{0, r.HeadSize, 0}))

	shoulderL := neck.Add(torsoM.Mul3x1(mgl64.Vec3{-r.ShoulderWidth / 2, 0, 0}))
	shoulderR := neck.Add(torsoM.Mul3x1(mgl64.Vec3{r.ShoulderWidth / 2, 0, 0}))
	armLM := torsoM.Mul3(gamemath.EulerMat(seg.LeftArm))
	armRM := torsoM.Mul3(gamemath.EulerMat(seg.RightArm))
	handL := shoulderL.Add(armLM.Mul3x1(mgl64.Vec3{0, -r.ArmLen, 0}))
	handR := shoulderR.Add(armRM.Mul3x1(mgl64.Vec3{0, -r.ArmLen, 0}))

	hipL := root.Add(yawM.Mul3x1(mgl64.Vec3{-r.HipWidth / 2, 0, 0}))
	hipR := root.Add(yawM.Mul3x1(mgl64.Vec3{r.HipWidth / 2, 0, 0}))
	thighLM := yawM.Mul3(gamemath.EulerMat(seg.LeftThigh))
	thighRM := yawM.Mul3(gamemath.EulerMat(seg.RightThigh))
	kneeL := hipL.Add(thighLM.Mul3x1(mgl64.Vec3{0, -r.ThighLen, 0}))
	kneeR := hipR.Add(thighRM.Mul3x1(mgl64.Vec3{0, -r.ThighLen, 0}))
	shinLM := thighLM.Mul3(gamemath.EulerMat(seg.LeftShin))
	shinRM := thighRM.Mul3(gamemath.EulerMat(seg.RightShin))
	footL := kneeL.Add(shinLM.Mul3x1(mgl64.Vec3{0, -r.ShinLen, 0}))
	footR := kneeR.Add(shinRM.Mul3x1(mgl64.Vec3{0, -r.ShinLen, 0}))

	var base mgl64.Vec3
	var socketM mgl64.Mat3
	switch pose.Weapon {
	case components.SocketBack:
		base = neck.Add(torsoM.Mul3x1(vec3(r.BackSocketOffset)))
		socketM = torsoM.Mul3(gamemath.EulerMat(vec3(r.BackSocketRot).Add(pose.WeaponRot)))
	default:
		base = handR.Add(armRM.Mul3x1(vec3(r.HandSocketOffset)))
		socketM = armRM.Mul3(gamemath.EulerMat(vec3(r.HandSocketRot).Add(pose.WeaponRot)))
	}
	tip := base.Add(socketM.Mul3x1(mgl64.Vec3{0, r.WeaponLen, 0}))

	return rig{
		root: root, neck: neck, headTop: headTop,
		shoulderL: shoulderL, shoulderR: shoulderR, handL: handL, handR: handR,
		hipL: hipL, hipR: hipR, kneeL: kneeL, kneeR: kneeR,
		footL: footL, footR: footR,
		weaponBase: base, weaponTip: tip,
	}
}

// DrawCharacter renders every posed entity as a stick figure with its
// weapon line.
func DrawCharacter(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := makeView(e)
	if !ok {
		return
	}

	components.Pose.Each(e.World, func(entry *donburi.Entry) {
		motion := components.Motion.Get(entry)
		pose := components.Pose.Get(entry)
		k := solveRig(motion, pose)

		// Shadow marker under the character
		ground := mgl64.Vec3{motion.Position[0], cfg.Player.GroundLevel, motion.Position[2]}
		v.strokeLine(screen, ground.Add(mgl64.Vec3{-0.25, 0, 0}), ground.Add(mgl64.Vec3{0.25, 0, 0}), 2, cfg.Grey)

		v.strokeLine(screen, k.hipL, k.hipR, 3, cfg.White)
		v.strokeLine(screen, k.root, k.neck, 3, cfg.White)
		v.strokeLine(screen, k.neck, k.headTop, 3, cfg.LightBlue)
		v.strokeLine(screen, k.shoulderL, k.handL, 2, cfg.White)
		v.strokeLine(screen, k.shoulderR, k.handR, 2, cfg.White)
		v.strokeLine(screen, k.hipL, k.kneeL, 2, cfg.White)
		v.strokeLine(screen, k.hipR, k.kneeR, 2, cfg.White)
		v.strokeLine(screen, k.kneeL, k.footL, 2, cfg.White)
		v.strokeLine(screen, k.kneeR, k.footR, 2, cfg.White)
		v.strokeLine(screen, k.weaponBase, k.weaponTip, 2, cfg.Orange)
	})
}
