package systems

import (
	"time"

	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDash triggers the dash and air dash. The dash overwrites momentum
// for a fixed window; its end and cooldown re-arm are scheduler callbacks
// guarded by the dash generation so a superseded dash cannot be resurrected
// by a stale timer.
func UpdateDash(e *ecs.ECS) {
	t := GetTime(e)
	sched := GetScheduler(e)
	if t == nil || sched == nil {
		return
	}
	input := GetInput(e)
	cam := getCamera(e)

	components.Actions.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Motion) {
			return
		}
		actions := components.Actions.Get(entry)
		motion := components.Motion.Get(entry)

		dash := GetAction(input, cfg.ActionDash)
		if !dash.JustPressed || !actions.CanDash || actions.IsDashing {
			return
		}

		actions.CanDash = false
		actions.IsDashing = true
		actions.DashGen++
		gen := actions.DashGen
		airborne := !motion.Grounded

		dir := gamemath.Flatten(moveVector(input, cam))
		if dir.Len() == 0 {
			dir = gamemath.YawForward(motion.Yaw)
		}
		motion.Momentum = dir.Mul(cfg.Dash.Force)

		if airborne {
			motion.Velocity[1] += cfg.Dash.AirLift
		} else if cfg.Dash.GroundLift > 0 {
			motion.Velocity[1] += cfg.Dash.GroundLift
			motion.Grounded = false
		}

		duration := seconds(cfg.Dash.Duration)
		cooldown := seconds(cfg.Dash.GroundCooldown)
		if airborne {
			cooldown = seconds(cfg.Dash.AirCooldown)
		}

		sched.After(t.Now, duration, func() {
			if actions.DashGen != gen || !actions.IsDashing {
				return
			}
			actions.IsDashing = false
			motion.Momentum = motion.Momentum.Mul(cfg.Dash.KeepAfter)
		})
		sched.After(t.Now, duration+cooldown, func() {
			if actions.DashGen != gen {
				return
			}
			actions.CanDash = true
		})
	})
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
