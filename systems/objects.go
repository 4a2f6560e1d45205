package systems

import (
	"github.com/flintgame/flint/components"
	"github.com/flintgame/flint/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves floating platforms along their tween sequences.
func UpdateObjects(ecs *ecs.ECS) {
	dt := tickSeconds()
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		if p := components.Platform.Get(e); p.Moving != nil {
			p.Moving.Update(dt)
		}
	})
}
