package systems

import (
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Classify derives the animation state from motion and action flags.
// Priority runs from committed actions down to speed bands so that, for
// example, a roll started mid slide still reads as rolling.
func Classify(motion *components.MotionData, actions *components.ActionsData, sprintHeld bool) cfg.StateID {
	switch {
	case actions.IsRolling:
		return cfg.Rolling
	case !motion.Grounded:
		return cfg.Jumping
	case actions.IsSliding:
		return cfg.Sliding
	case actions.IsDashing:
		return cfg.Dashing
	}

	speed := gamemath.HorizontalLen(motion.Momentum)
	switch {
	case sprintHeld && speed > cfg.Player.SprintThreshold:
		return cfg.Sprinting
	case speed > cfg.Player.WalkThreshold:
		return cfg.Walking
	default:
		return cfg.Idle
	}
}

func UpdateStates(e *ecs.ECS) {
	t := GetTime(e)
	if t == nil {
		return
	}
	input := GetInput(e)
	sprintHeld := GetAction(input, cfg.ActionSprint).Pressed

	components.State.Each(e.World, func(entry *donburi.Entry) {
		motion := components.Motion.Get(entry)
		actions := components.Actions.Get(entry)
		state := components.State.Get(entry)

		state.Current = Classify(motion, actions, sprintHeld)
		if state.Current == state.Previous {
			state.Phase += t.Delta
			return
		}
		state.Phase = 0

		removeAllStateTags(entry)
		switch state.Current {
		case cfg.Idle:
			donburi.Add(entry, components.Idle, &components.IdleState{})
		case cfg.Walking:
			donburi.Add(entry, components.Walking, &components.WalkingState{})
		case cfg.Sprinting:
			donburi.Add(entry, components.Sprinting, &components.SprintingState{})
		case cfg.Jumping:
			donburi.Add(entry, components.Jumping, &components.JumpingState{})
		case cfg.Rolling:
			donburi.Add(entry, components.Rolling, &components.RollingState{})
		case cfg.Sliding:
			donburi.Add(entry, components.Sliding, &components.SlidingState{})
		case cfg.Dashing:
			donburi.Add(entry, components.Dashing, &components.DashingState{})
		}

		onStateEnter(entry, state.Previous, state.Current)
		state.Previous = state.Current
	})
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.WalkingState](e, components.Walking)
	donburi.Remove[components.SprintingState](e, components.Sprinting)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.RollingState](e, components.Rolling)
	donburi.Remove[components.SlidingState](e, components.Sliding)
	donburi.Remove[components.DashingState](e, components.Dashing)
}
