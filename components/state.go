package components

import (
	"github.com/voidwalk/revenant/config"
	"github.com/yohamta/donburi"
)

// StateData holds the classified animation state. Current is derived each
// frame from motion and action flags; it is never a source of truth.
type StateData struct {
	Current  config.StateID
	Previous config.StateID
	Phase    float64 // Seconds spent in the current state
}

var State = donburi.NewComponentType[StateData]()

// Per-state tag components, swapped on classified-state transitions so other
// queries can filter by state cheaply.
type IdleState struct{}
type WalkingState struct{}
type SprintingState struct{}
type JumpingState struct{}
type RollingState struct{}
type SlidingState struct{}
type DashingState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Walking = donburi.NewComponentType[WalkingState]()
var Sprinting = donburi.NewComponentType[SprintingState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Rolling = donburi.NewComponentType[RollingState]()
var Sliding = donburi.NewComponentType[SlidingState]()
var Dashing = donburi.NewComponentType[DashingState]()
