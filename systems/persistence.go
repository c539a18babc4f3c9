package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
	"github.com/voidwalk/revenant/components"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug        bool   `json:"debug"`
	CameraInvert bool   `json:"cameraInvert"`
	TuningPath   string `json:"tuningPath"` // Last override file, reused when no flag is given
}

var gdataManager *gdata.Manager
var gdataInitialized bool
var currentTuningPath string

// SetTuningPath records the active tuning override file so settings flushes
// remember it for the next run.
func SetTuningPath(path string) {
	currentTuningPath = path
}

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "revenant",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings copies loaded settings into the settings singleton.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.Debug = saved.Debug
	settings.CameraInvert = saved.CameraInvert
}

// UpdatePersistence flushes dirty settings to disk.
func UpdatePersistence(e *ecs.ECS) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(entry)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	_ = SaveSettings(&SavedSettings{
		Debug:        settings.Debug,
		CameraInvert: settings.CameraInvert,
		TuningPath:   currentTuningPath,
	})
}
