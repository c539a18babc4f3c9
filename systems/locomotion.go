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

// UpdateLocomotion integrates the character's horizontal momentum, facing
// yaw and vertical velocity. Runs after the action/combat trigger systems so
// a slide or dash started this frame already owns momentum.
func UpdateLocomotion(e *ecs.ECS) {
	t := GetTime(e)
	if t == nil {
		return
	}
	input := GetInput(e)
	cam := getCamera(e)

	components.Motion.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Actions) {
			return
		}
		motion := components.Motion.Get(entry)
		actions := components.Actions.Get(entry)

		steering := false
		if !actions.IsSliding && !actions.IsDashing {
			desired := moveVector(input, cam)
			if desired.Len() > 0 {
				steering = true
				speed := cfg.Player.WalkSpeed
				if GetAction(input, cfg.ActionSprint).Pressed {
					speed = cfg.Player.SprintSpeed
				}
				target := desired.Normalize().Mul(speed)
				motion.Momentum = gamemath.LerpVec(motion.Momentum, target, cfg.Player.MomentumLerp)
			} else {
				motion.Momentum = motion.Momentum.Mul(cfg.Player.MomentumDecay)
			}
		}

		// Position integrates momentum every frame, airborne included.
		// A slide applies its decay envelope at integration time.
		step := motion.Momentum
		if actions.IsSliding {
			step = step.Mul(slideEnvelope(actions.SlideTime))
		}
		motion.Position = motion.Position.Add(step.Mul(t.Delta))

		// Facing follows momentum along the shortest arc, faster while
		// actively steering so reversals stay responsive without snapping.
		if gamemath.HorizontalLen(motion.Momentum) > 1e-3 {
			target := math.Atan2(motion.Momentum.X(), motion.Momentum.Z())
			lerp := cfg.Player.TurnLerpCoasting
			if steering || actions.IsSliding || actions.IsDashing {
				lerp = cfg.Player.TurnLerpSteering
			}
			motion.Yaw = gamemath.LerpAngle(motion.Yaw, target, lerp)
		}

		// Vertical integration and landing
		if !motion.Grounded {
			motion.Velocity[1] += cfg.Player.Gravity * t.Delta
			motion.Position[1] += motion.Velocity.Y() * t.Delta
			if motion.Position.Y() <= motion.GroundLevel {
				land(motion, actions)
			}
		}
	})
}

// land clamps the character onto the ground and force-ends an aerial roll.
func land(motion *components.MotionData, actions *components.ActionsData) {
	motion.Position[1] = motion.GroundLevel
	motion.Velocity[1] = 0
	motion.Grounded = true
	actions.IsRolling = false
	actions.RollTime = 0
}

// moveVector sums the held direction keys in the camera's ground-plane
// basis. The result is unnormalized; callers scale it to a speed.
func moveVector(input *components.InputData, cam *components.CameraData) mgl64.Vec3 {
	if cam == nil {
		return mgl64.Vec3{}
	}
	var v mgl64.Vec3
	if GetAction(input, cfg.ActionForward).Pressed {
		v = v.Add(cam.Forward)
	}
	if GetAction(input, cfg.ActionBackward).Pressed {
		v = v.Sub(cam.Forward)
	}
	if GetAction(input, cfg.ActionRight).Pressed {
		v = v.Add(cam.Right)
	}
	if GetAction(input, cfg.ActionLeft).Pressed {
		v = v.Sub(cam.Right)
	}
	return gamemath.Horizontal(v)
}

// slideEnvelope decays linearly from 1 toward 0 across the slide window.
func slideEnvelope(slideTime float64) float64 {
	if cfg.Slide.MaxTime <= 0 {
		return 0
	}
	return gamemath.Clamp(1-slideTime/cfg.Slide.MaxTime, 0, 1)
}

func getCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}
