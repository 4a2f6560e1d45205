package systems

import (
	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Values carried from one world to the next.
var (
	debugDefault    bool
	resolutionIndex = cfg.Settings.DefaultResolutionIndex
)

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the process-wide values.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:           debugDefault,
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: resolutionIndex,
			SFXVolume:       GetSFXVolume(),
		})
	}
	return components.Settings.Get(entry)
}

// UpdateDebugToggle flips the debug overlay on the debug action.
func UpdateDebugToggle(e *ecs.ECS) {
	if !GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		return
	}
	s := GetOrCreateSettings(e)
	s.Debug = !s.Debug
	persistSettings(s)
}

// ToggleFullscreen switches between windowed and fullscreen and remembers
// the choice.
func ToggleFullscreen(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
	persistSettings(s)
}

func persistSettings(s *components.SettingsData) {
	debugDefault = s.Debug
	resolutionIndex = s.ResolutionIndex
	_ = SaveSettings(&SavedSettings{
		Debug:           s.Debug,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		SFXVolume:       s.SFXVolume,
	})
}
