package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input singleton.
// Must run before any system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge the left analog stick into the movement actions
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		dz := cfg.Input.AnalogDeadzone
		if x < -dz {
			input.Current[cfg.ActionLeft] = true
		}
		if x > dz {
			input.Current[cfg.ActionRight] = true
		}
		if y < -dz {
			input.Current[cfg.ActionForward] = true
		}
		if y > dz {
			input.Current[cfg.ActionBackward] = true
		}
	}
}

// GetAction returns the full action state for the given action.
func GetAction(input *components.InputData, actionID cfg.ActionID) components.ActionState {
	current := input.Current[actionID]
	previous := input.Previous[actionID]
	return components.ActionState{
		Pressed:      current,
		JustPressed:  current && !previous,
		JustReleased: !current && previous,
	}
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	if entry, ok := components.Input.First(e.World); ok {
		return components.Input.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Input))
	return components.Input.Get(entry)
}

// GetInput returns the Input singleton, creating it when missing.
func GetInput(e *ecs.ECS) *components.InputData {
	return getOrCreateInput(e)
}
