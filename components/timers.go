package components

import (
	"github.com/flintgame/flint/shared/timers"
	"github.com/yohamta/donburi"
)

// TimersData holds the world's timer scheduler.
type TimersData struct {
	Scheduler *timers.Scheduler
}

var Timers = donburi.NewComponentType[TimersData]()
