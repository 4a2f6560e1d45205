// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

import "github.com/flintgame/flint/shared/ability"

const (
	// ProtocolVersion must match between client and server for a join to
	// be accepted.
	ProtocolVersion = "flint-1"

	DefaultPort     = 7373
	DefaultTickRate = 20
	// SimulationRate is the fixed step rate of charsim bodies.
	SimulationRate = 60
)

// StateID identifies a character animation state.
type StateID int

const (
	StateNone StateID = iota - 1
	Idle
	Running
)

// StateToFileName maps StateID to the sprite sheet name.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "running",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}

// StateFromAnim converts an animation choice to its replicated state.
func StateFromAnim(a ability.AnimState) StateID {
	if a == ability.AnimRunning {
		return Running
	}
	return Idle
}

// ActionID represents a logical game action.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionDebug
	ActionCount // Must be last - used for array sizing
)
