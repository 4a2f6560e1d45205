package components

import "github.com/yohamta/donburi"

// SettingsData is the user-facing settings state, persisted between runs.
type SettingsData struct {
	Debug           bool
	Fullscreen      bool
	ResolutionIndex int
	SFXVolume       float64
}

var Settings = donburi.NewComponentType[SettingsData]()
