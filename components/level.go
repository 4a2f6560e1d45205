package components

import (
	"github.com/flintgame/flint/assets"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Asset     *assets.Level
	Collision *charsim.Level
}

// Size returns the level size in pixels.
func (l *LevelData) Size() (int, int) {
	if l.Asset == nil {
		return 0, 0
	}
	return l.Asset.Data.MapWidth, l.Asset.Data.MapHeight
}

var Level = donburi.NewComponentType[LevelData]()
