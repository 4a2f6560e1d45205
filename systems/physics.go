package systems

import (
	"github.com/flintgame/flint/components"
	cfg "github.com/flintgame/flint/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps every character body once and feeds ground contact
// back into the ability rules.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickSeconds()

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Character.Get(e)

		c.Intent.Extending = c.Ability.JumpExtending()
		res := c.Body.Step(c.Intent)
		if res.Landed {
			c.Ability.OnLanded()
			PlaySFX(ecs, cfg.SoundLand)
		}
		c.Ability.Tick(dt)
	})
}

// tickSeconds is the duration of one update at the current TPS.
func tickSeconds() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return 1 / float64(tps)
}
