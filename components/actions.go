package components

import "github.com/yohamta/donburi"

// ActionsData tracks the transient movement actions: jump/double-jump,
// aerial roll, slide and dash, with their cooldown timers. Timers count
// down by the frame delta; delayed re-arms go through the scheduler with a
// generation guard so a superseded callback never resurrects a state.
type ActionsData struct {
	// Jump
	CanJump       bool
	JumpCooldown  float64 // Seconds remaining until jump re-arms
	HasDoubleJump bool

	// Aerial roll (triggered by the double jump)
	IsRolling bool
	RollTime  float64

	// Slide
	IsSliding     bool
	SlideTime     float64
	CanSlide      bool
	SlideCooldown float64

	// Dash
	IsDashing bool
	CanDash   bool
	DashGen   uint64 // Generation token for scheduled dash end/re-arm
}

var Actions = donburi.NewComponentType[ActionsData]()
