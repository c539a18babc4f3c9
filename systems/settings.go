package systems

import (
	"github.com/voidwalk/revenant/archetypes"
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, spawning it with
// defaults on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	entry := archetypes.Settings.Spawn(e)
	components.Settings.SetValue(entry, components.SettingsData{
		Debug: cfg.Debug.StartWithOverlay,
	})
	return components.Settings.Get(entry)
}

// UpdateSettings handles runtime toggles. Changed settings are marked
// dirty so the persistence system can flush them.
func UpdateSettings(e *ecs.ECS) {
	input := GetInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}
}
