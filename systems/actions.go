package systems

import (
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActions handles jump, double jump and the aerial roll, and ticks
// their timers. Runs before locomotion so a jump started this frame is
// integrated this frame.
func UpdateActions(e *ecs.ECS) {
	t := GetTime(e)
	if t == nil {
		return
	}
	input := GetInput(e)

	components.Actions.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Motion) {
			return
		}
		actions := components.Actions.Get(entry)
		motion := components.Motion.Get(entry)

		jump := GetAction(input, cfg.ActionJump)
		if jump.JustPressed {
			switch {
			case motion.Grounded && actions.CanJump:
				motion.Velocity[1] = cfg.Player.JumpForce
				motion.Grounded = false
				actions.CanJump = false
				actions.JumpCooldown = cfg.Player.JumpCooldown
				actions.HasDoubleJump = true

			case !motion.Grounded && actions.HasDoubleJump && !actions.IsRolling:
				motion.Velocity[1] = cfg.Player.DoubleJumpForce
				actions.HasDoubleJump = false
				actions.IsRolling = true
				actions.RollTime = 0
			}
		}

		// The jump cooldown counts down regardless of grounded state, so
		// landing early never re-arms the jump prematurely.
		if !actions.CanJump {
			actions.JumpCooldown -= t.Delta
			if actions.JumpCooldown <= 0 {
				actions.JumpCooldown = 0
				actions.CanJump = true
			}
		}

		if actions.IsRolling {
			actions.RollTime += t.Delta
			if actions.RollTime >= cfg.Player.RollDuration {
				actions.IsRolling = false
			}
		}
	})
}
