package components

import (
	"github.com/flintgame/flint/shared/charsim"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Moving *charsim.MovingPlatform // nil for static platforms
}

var Platform = donburi.NewComponentType[PlatformData]()
