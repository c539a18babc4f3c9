package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimator turns the classified state into per-segment rotations.
// The whole pose is recomputed from the state and its phase each frame, then
// the attack arm overlay and the weapon swing are layered on top.
func UpdateAnimator(e *ecs.ECS) {
	t := GetTime(e)
	if t == nil {
		return
	}

	components.Pose.Each(e.World, func(entry *donburi.Entry) {
		pose := components.Pose.Get(entry)
		state := components.State.Get(entry)
		actions := components.Actions.Get(entry)

		base := basePose(state.Current, state.Phase, actions)
		applyArmOverlay(pose, &base, t.Delta)
		pose.Segments = base

		updateWeaponSwing(pose, t.Delta)
	})
}

// onStateEnter runs once per classified-state transition. The weapon rides
// on the character's back while sprinting and in the hand otherwise.
func onStateEnter(entry *donburi.Entry, prev, next cfg.StateID) {
	if !entry.HasComponent(components.Pose) {
		return
	}
	pose := components.Pose.Get(entry)

	switch {
	case next == cfg.Sprinting && pose.Weapon != components.SocketBack:
		pose.Weapon = components.SocketBack
	case prev == cfg.Sprinting && next != cfg.Sprinting && pose.Weapon != components.SocketHand:
		pose.Weapon = components.SocketHand
	}
}

func basePose(state cfg.StateID, phase float64, actions *components.ActionsData) components.SegmentPose {
	a := cfg.Anim
	var p components.SegmentPose

	switch state {
	case cfg.Walking:
		gaitPose(&p, phase, a.WalkFrequency, a.WalkSwing, 0)
	case cfg.Sprinting:
		gaitPose(&p, phase, a.SprintFrequency, a.SprintSwing, a.SprintLean)
	case cfg.Jumping:
		p.LeftThigh[0] = -a.JumpTuck
		p.RightThigh[0] = -a.JumpTuck
		p.LeftShin[0] = a.JumpTuck * 1.5
		p.RightShin[0] = a.JumpTuck * 1.5
		p.LeftArm[0] = -a.JumpArmLift
		p.RightArm[0] = -a.JumpArmLift
	case cfg.Rolling:
		// Sine envelope over the roll: curl in, then unfold.
		env := 0.0
		if cfg.Player.RollDuration > 0 {
			env = math.Sin(math.Pi * gamemath.Clamp(actions.RollTime/cfg.Player.RollDuration, 0, 1))
		}
		curl := a.RollCurl * env
		p.Torso[0] = curl
		p.Head[0] = curl * 0.5
		p.LeftThigh[0] = -curl
		p.RightThigh[0] = -curl
		p.LeftShin[0] = curl
		p.RightShin[0] = curl
		p.LeftArm[0] = -curl * 0.7
		p.RightArm[0] = -curl * 0.7
	case cfg.Sliding:
		// Lean back hard, standing back up over the last fraction of the
		// slide window.
		lean := a.SlideLean
		recoverAt := cfg.Slide.MaxTime * (1 - a.SlideRecoverFrac)
		if actions.SlideTime > recoverAt && cfg.Slide.MaxTime > recoverAt {
			frac := (actions.SlideTime - recoverAt) / (cfg.Slide.MaxTime - recoverAt)
			lean *= 1 - gamemath.Clamp(frac, 0, 1)
		}
		p.Torso[0] = -lean
		p.Head[0] = lean * 0.6
		p.LeftThigh[0] = -lean * 1.2
		p.RightThigh[0] = -lean * 0.4
		p.LeftShin[0] = lean * 0.5
		p.LeftArm[2] = 0.4
		p.RightArm[2] = -0.4
	case cfg.Dashing:
		p.Torso[0] = a.DashLean
		p.Head[0] = -a.DashLean * 0.5
		p.LeftArm[0] = a.DashLean * 1.5
		p.RightArm[0] = a.DashLean * 1.5
	default: // Idle
		breath := a.BreathAmount * math.Sin(phase*a.BreathRate*2*math.Pi)
		p.Torso[0] = breath
		p.LeftArm[2] = 0.12 + breath
		p.RightArm[2] = -0.12 - breath
	}

	return p
}

// gaitPose fills a walk or sprint cycle: thighs swing opposite each other,
// shins trail the thigh but only ever flex backward, arms counter-swing.
func gaitPose(p *components.SegmentPose, phase, freq, swing, lean float64) {
	a := cfg.Anim
	cycle := phase * freq * 2 * math.Pi

	left := swing * math.Sin(cycle)
	right := swing * math.Sin(cycle+math.Pi)
	p.LeftThigh[0] = left
	p.RightThigh[0] = right

	// The shin lags the thigh by a quarter cycle and cannot hyperextend.
	leftShin := swing * a.ShinLag * math.Sin(cycle-math.Pi/2)
	rightShin := swing * a.ShinLag * math.Sin(cycle+math.Pi/2)
	p.LeftShin[0] = math.Max(leftShin, 0)
	p.RightShin[0] = math.Max(rightShin, 0)

	p.LeftArm[0] = right * a.ArmSwingScale
	p.RightArm[0] = left * a.ArmSwingScale

	p.Torso[0] = lean
	p.Head[0] = -lean * 0.5
}

// applyArmOverlay blends the weapon arm toward the attack target while an
// attack holds it, and back out through the recovery tween afterwards.
func applyArmOverlay(pose *components.PoseData, base *components.SegmentPose, dt float64) {
	switch {
	case pose.ArmHold:
		base.RightArm = pose.ArmTarget
	case pose.ArmRecover != nil:
		w, done := pose.ArmRecover.Update(float32(dt))
		base.RightArm = gamemath.LerpVec(base.RightArm, pose.ArmTarget, float64(w))
		if done {
			pose.ArmRecover = nil
		}
	}
}

// updateWeaponSwing eases the weapon toward the attack target rotation and
// snaps it back to the socket preset when the swing finishes.
func updateWeaponSwing(pose *components.PoseData, dt float64) {
	if pose.WeaponTween == nil {
		return
	}
	v, done := pose.WeaponTween.Update(float32(dt))
	pose.WeaponRot = pose.WeaponTarget.Mul(float64(v))
	if done {
		pose.WeaponTween = nil
		pose.WeaponRot = mgl64.Vec3{}
	}
}
