package systems

import (
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSlide runs the slide state machine: start on a fresh press while
// armed, time out after the slide window, or cancel early on release while
// keeping part of the speed.
func UpdateSlide(e *ecs.ECS) {
	t := GetTime(e)
	if t == nil {
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
		slide := GetAction(input, cfg.ActionSlide)

		if actions.IsSliding {
			actions.SlideTime += t.Delta
			switch {
			case actions.SlideTime >= cfg.Slide.MaxTime:
				endSlide(actions, motion, cfg.Slide.EndKeep)
			case !slide.Pressed:
				endSlide(actions, motion, cfg.Slide.CancelKeep)
			}
			return
		}

		// Re-arm after the cooldown runs out.
		if !actions.CanSlide {
			actions.SlideCooldown -= t.Delta
			if actions.SlideCooldown <= 0 {
				actions.SlideCooldown = 0
				actions.CanSlide = true
			}
		}

		if slide.JustPressed && actions.CanSlide && motion.Grounded {
			actions.IsSliding = true
			actions.CanSlide = false
			actions.SlideTime = 0

			// The slide overrides momentum outright with the camera-space
			// input direction, or the facing direction when no key is held.
			dir := gamemath.Flatten(moveVector(input, cam))
			if dir.Len() == 0 {
				dir = gamemath.YawForward(motion.Yaw)
			}
			motion.Momentum = dir.Mul(cfg.Slide.Speed)
		}
	})
}

func endSlide(actions *components.ActionsData, motion *components.MotionData, keep float64) {
	actions.IsSliding = false
	actions.SlideTime = 0
	actions.SlideCooldown = cfg.Slide.Cooldown
	motion.Momentum = motion.Momentum.Mul(keep)
}
