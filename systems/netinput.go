package systems

import (
	"log"
	"time"

	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/shared/messages"
	"github.com/yohamta/donburi/ecs"
)

// sentActions are the controls the server simulates.
var sentActions = []cfg.ActionID{
	cfg.ActionMoveLeft,
	cfg.ActionMoveRight,
	cfg.ActionJump,
	cfg.ActionDash,
}

type netInputState struct {
	seq          uint32
	last         messages.PlayerInput
	lastSendTime time.Time
}

// NewNetworkInputSystem returns an ECS system that turns the polled input
// into PlayerInput messages. It sends when the controls change and
// otherwise every ResendInterval so a lost message can't leave a key stuck.
// While paused it sends released controls. Must run after UpdateInput.
func NewNetworkInputSystem(sendFn func(any) error) func(*ecs.ECS) {
	state := &netInputState{last: messages.NewPlayerInput(0)}
	resend := time.Duration(cfg.Network.ResendInterval) * time.Millisecond

	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		next := messages.NewPlayerInput(state.seq + 1)
		if !GetOrCreatePause(e).IsPaused {
			for _, a := range sentActions {
				next.Actions[a] = input.Current[a]
			}
			next.MoveAxis = input.MoveAxis
			next.TouchStarted = input.TouchStarted
			next.TouchStopped = input.TouchStopped
		}

		now := time.Now()
		if next.SameState(state.last) && now.Sub(state.lastSendTime) < resend {
			return
		}
		next.Timestamp = now.UnixMilli()

		if err := sendFn(next); err != nil {
			log.Printf("[netinput] send error: %v", err)
			return
		}
		state.seq = next.Sequence
		state.last = next
		state.lastSendTime = now
	}
}
