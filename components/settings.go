package components

import "github.com/yohamta/donburi"

// SettingsData holds the user-facing toggles persisted between runs.
type SettingsData struct {
	Debug        bool // Debug overlay visible
	CameraInvert bool // Swap the camera orbit keys
	Dirty        bool // Needs a save to disk
}

var Settings = donburi.NewComponentType[SettingsData]()
