package netconfig

import (
	"testing"

	"github.com/flintgame/flint/shared/ability"
)

func TestStateNames(t *testing.T) {
	if Idle.String() != "idle" || Running.String() != "running" || StateNone.String() != "unknown" {
		t.Errorf("names: %s %s %s", Idle, Running, StateNone)
	}
	if StateFromAnim(ability.AnimIdle) != Idle || StateFromAnim(ability.AnimRunning) != Running {
		t.Error("StateFromAnim")
	}
}
