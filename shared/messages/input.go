package messages

import "github.com/flintgame/flint/shared/netconfig"

// PlayerInput is sent from client to server with the player's held actions.
// The server edge-detects presses and releases between consecutive inputs.
type PlayerInput struct {
	Sequence     uint32                      // Incrementing ID, stale inputs are dropped
	Actions      map[netconfig.ActionID]bool // Which actions are currently held
	MoveAxis     float64                     // -1..1 horizontal axis
	TouchStarted bool                        // A touch began since the last input
	TouchStopped bool                        // A touch ended since the last input
	Timestamp    int64                       // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with initialized map
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
		Actions:  make(map[netconfig.ActionID]bool),
	}
}

// Held reports whether action is held in this input.
func (in PlayerInput) Held(action netconfig.ActionID) bool {
	return in.Actions[action]
}

// SameState reports whether two inputs carry the same controls, ignoring
// sequence and timestamp. Touch edges always count as a change.
func (in PlayerInput) SameState(other PlayerInput) bool {
	if in.MoveAxis != other.MoveAxis || in.TouchStarted || in.TouchStopped ||
		other.TouchStarted || other.TouchStopped {
		return false
	}
	for a := netconfig.ActionID(0); a < netconfig.ActionCount; a++ {
		if in.Actions[a] != other.Actions[a] {
			return false
		}
	}
	return true
}
