package components

import "github.com/yohamta/donburi"

// NetInterpData smooths a remote character between server snapshots.
type NetInterpData struct {
	PrevX, PrevY     float64
	TargetX, TargetY float64
	T                float64 // 0..1 progress toward the target
	Initialized      bool
}

var NetInterp = donburi.NewComponentType[NetInterpData]()
