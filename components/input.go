package components

import (
	"github.com/voidwalk/revenant/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the current state of an action for this frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData is the per-frame snapshot of held actions. The input system is
// the only writer; every other system reads it.
type InputData struct {
	// Current frame's action states
	Current [config.ActionCount]bool
	// Previous frame's action states (for JustPressed/JustReleased detection)
	Previous [config.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
