package config

// StateID identifies a character locomotion/animation state.
type StateID int

const (
	StateNone StateID = -1
)

const (
	Idle StateID = iota
	Walking
	Sprinting
	Jumping
	Rolling
	Sliding
	Dashing

	StateCount // Must be last - used for iteration and array sizing
)

// StateNames maps StateID to a display name used by the HUD and debug overlay.
var StateNames = map[StateID]string{
	Idle:      "idle",
	Walking:   "walking",
	Sprinting: "sprinting",
	Jumping:   "jumping",
	Rolling:   "rolling",
	Sliding:   "sliding",
	Dashing:   "dashing",
}

func (s StateID) String() string {
	if name, ok := StateNames[s]; ok {
		return name
	}
	return "none"
}
