package systems

import (
	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/flintgame/flint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters turns this frame's input into ability requests for every
// locally controlled character. Must run after UpdateInput and before
// UpdatePhysics.
func UpdateCharacters(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.LocalPlayer.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		dispatchInput(ecs, c, input)
	})
}

func dispatchInput(ecs *ecs.ECS, c *components.CharacterData, input *components.InputData) {
	jump := GetAction(input, cfg.ActionJump)

	if jump.JustPressed || input.TouchStarted {
		if c.Ability.RequestJump() {
			c.Body.Jump()
			PlaySFX(ecs, cfg.SoundJump)
		}
	}
	if jump.JustReleased || input.TouchStopped {
		c.Ability.ReleaseJump()
	}
	if GetAction(input, cfg.ActionDash).JustPressed {
		if c.Ability.RequestDash() {
			PlaySFX(ecs, cfg.SoundDash)
		}
	}

	c.Intent.MoveAxis = input.MoveAxis
}
