package config

import (
	"image/color"

	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/flintgame/flint/shared/netconfig"
)

// CharacterConfig holds everything needed to spawn a playable character.
type CharacterConfig struct {
	Name      string
	SpriteKey string // directory under images/spritesheets

	Ability ability.Config
	Tuning  charsim.Tuning

	FrameWidth  int
	FrameHeight int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows the character (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin         float64
	PipSize        float64
	PipGap         float64
	CooldownWidth  float64
	CooldownHeight float64

	PipFull    color.RGBA
	PipEmpty   color.RGBA
	CooldownBg color.RGBA
	CooldownFg color.RGBA
	ReadyColor color.RGBA
	TextColor  color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// NetworkConfig holds client-side connection defaults
type NetworkConfig struct {
	DefaultAddress string
	GameVersion    string
	PlayerName     string
	ResendInterval int // milliseconds between unchanged input resends
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool   // Skip menu and go directly to game
	Level    string // Level name to load, empty for the first one
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Flint CharacterConfig
var Camera CameraConfig
var HUD HUDConfig
var Pause PauseConfig
var Network NetworkConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	Brown        = color.RGBA{R: 150, G: 110, B: 70, A: 255}  // Platforms
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

// RemoteColors tints remote characters in join order.
var RemoteColors = []color.RGBA{
	{R: 255, G: 120, B: 120, A: 255},
	{R: 120, G: 200, B: 255, A: 255},
	{R: 255, G: 220, B: 100, A: 255},
	{R: 200, G: 140, B: 255, A: 255},
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Flint = CharacterConfig{
		Name:        "Flint",
		SpriteKey:   "flint",
		Ability:     ability.DefaultConfig(),
		Tuning:      charsim.DefaultTuning(),
		FrameWidth:  32,
		FrameHeight: 32,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      48,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
	}

	HUD = HUDConfig{
		Margin:         10,
		PipSize:        8,
		PipGap:         4,
		CooldownWidth:  60,
		CooldownHeight: 5,
		PipFull:        BrightGreen,
		PipEmpty:       color.RGBA{R: 50, G: 50, B: 50, A: 255},
		CooldownBg:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		CooldownFg:     Orange,
		ReadyColor:     LightBlue,
		TextColor:      White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuItemHeight:    20,
		MenuItemGap:       10,
		MenuOptions:       []string{"RESUME", "FULLSCREEN", "EXIT"},
	}

	Network = NetworkConfig{
		DefaultAddress: "localhost:7373",
		GameVersion:    netconfig.ProtocolVersion,
		PlayerName:     "Player",
		ResendInterval: 50,
	}
}
