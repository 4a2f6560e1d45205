package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/flintgame/flint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug           bool    `json:"debug"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	SFXVolume       float64 `json:"sfxVolume"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager

// InitPersistence opens the per-user save location. The game runs without
// persistence when this fails.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "flint",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the stored settings, or nil when nothing usable is
// saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("[persistence] could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("[persistence] could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("[persistence] could not serialize settings: %v", err)
		return err
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("[persistence] could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies settings before any scene exists. New
// worlds pick the values up through GetOrCreateSettings.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	SetSFXVolume(saved.SFXVolume)
	debugDefault = saved.Debug

	ebiten.SetFullscreen(saved.Fullscreen)
	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.Settings.Resolutions) {
		resolutionIndex = saved.ResolutionIndex
		if !saved.Fullscreen {
			res := cfg.Settings.Resolutions[saved.ResolutionIndex]
			ebiten.SetWindowSize(res.Width, res.Height)
		}
	}
}
