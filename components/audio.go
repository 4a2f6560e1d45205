package components

import (
	cfg "github.com/flintgame/flint/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by gameplay systems this tick.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
