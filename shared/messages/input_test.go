package messages

import (
	"testing"

	"github.com/flintgame/flint/shared/netconfig"
)

func TestSameState(t *testing.T) {
	a := NewPlayerInput(1)
	a.Actions[netconfig.ActionJump] = true
	a.MoveAxis = -1

	b := NewPlayerInput(2)
	b.Actions[netconfig.ActionJump] = true
	b.Actions[netconfig.ActionDash] = false
	b.MoveAxis = -1
	b.Timestamp = 99

	if !a.SameState(b) {
		t.Fatal("inputs with the same controls differ")
	}

	b.Actions[netconfig.ActionDash] = true
	if a.SameState(b) {
		t.Error("dash change not detected")
	}
	delete(b.Actions, netconfig.ActionDash)

	b.MoveAxis = 0.5
	if a.SameState(b) {
		t.Error("axis change not detected")
	}
	b.MoveAxis = -1

	b.TouchStarted = true
	if a.SameState(b) {
		t.Error("touch edge not treated as a change")
	}
}

func TestHeld(t *testing.T) {
	in := NewPlayerInput(0)
	if in.Held(netconfig.ActionJump) {
		t.Error("empty input reports jump held")
	}
	in.Actions[netconfig.ActionJump] = true
	if !in.Held(netconfig.ActionJump) {
		t.Error("jump not held")
	}
	var zero PlayerInput
	if zero.Held(netconfig.ActionDash) {
		t.Error("nil map reports dash held")
	}
}
