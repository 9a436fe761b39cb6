package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/tickinterp/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	DrawSnapshot bool `json:"drawSnapshot"`
	LogLifecycle bool `json:"logLifecycle"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tickinterp",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// persistence is unavailable or nothing was saved yet.
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
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the debug toggles that survive a restart.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		DrawSnapshot: cfg.Debug.DrawSnapshot,
		LogLifecycle: cfg.Debug.LogLifecycle,
	}
}

// ApplySavedSettings copies loaded settings into the global config.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.DrawSnapshot = saved.DrawSnapshot
	cfg.Debug.LogLifecycle = saved.LogLifecycle
}
