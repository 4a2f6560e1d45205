package systems

import (
	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/shared/netcomponents"
	"github.com/flintgame/flint/shared/netconfig"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations refreshes facing from velocity, picks Idle or Running and
// advances the flipbook.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Character.Get(e)
		v := c.Body.Velocity()
		c.Ability.UpdateFacing(v)

		anim := components.Animation.Get(e)
		anim.SetAnimation(netconfig.StateFromAnim(ability.SelectAnimation(v)))
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

// UpdateNetAnimations plays the replicated animation state of networked
// characters.
func UpdateNetAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetCharacter) {
			return
		}
		anim := components.Animation.Get(e)
		anim.SetAnimation(netcomponents.NetCharacter.Get(e).StateID)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
