package netcomponents

import (
	"github.com/flintgame/flint/shared/netconfig"
	"github.com/yohamta/donburi"
)

// NetCharacterData is the replicated ability state of one character.
type NetCharacterData struct {
	StateID        netconfig.StateID
	Facing         int // -1 left, 1 right
	JumpCount      int
	MaxJumpCount   int
	DashOnCooldown bool
	LastSequence   uint32 // Last input sequence the server applied
	IsLocal        bool   // Client-side only, not synced
}

// JumpsLeft returns how many jumps remain before the next landing.
func (c NetCharacterData) JumpsLeft() int {
	if n := c.MaxJumpCount - c.JumpCount; n > 0 {
		return n
	}
	return 0
}

var NetCharacter = donburi.NewComponentType[NetCharacterData]()
