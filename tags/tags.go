package tags

import "github.com/yohamta/donburi"

var (
	Character        = donburi.NewTag().SetName("Character")
	LocalPlayer      = donburi.NewTag().SetName("LocalPlayer")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
)

// Resolv tags for character objects. Level tags live in charsim.
const (
	ResolvPlayer = "player"
)
